package descriptor

import "strings"

// keyPrefix marks an indirect localization reference that must be looked
// up in the document's l10n table or its external text file.
const keyPrefix = "$l10n_"

// maxDepth bounds key-to-key indirection so a malformed self-referential
// table cannot recurse forever.
const maxDepth = 8

// langOrder is the fixed language preference chain.
var langOrder = []string{"en", "de", "fr"}

// AuxLoader reads a named auxiliary file from the same archive the
// descriptor came from. A not-found error is treated as "no match".
type AuxLoader func(name string) ([]byte, error)

// Resolver turns multi-language descriptor nodes into display strings.
// It is bound to one document, whose l10n declarations drive indirect
// key lookup, and optionally to the archive for external text files.
type Resolver struct {
	root    *Node
	loadAux AuxLoader
}

// NewResolver returns a resolver over doc. loadAux may be nil when no
// archive is available; external lookups then always miss.
func NewResolver(doc *Doc, loadAux AuxLoader) *Resolver {
	return &Resolver{root: doc.Root(), loadAux: loadAux}
}

// Resolve picks the best language child of node (en, then de, then fr,
// then the node's own text) and follows $l10n_ indirection. A nil node
// or a node with no text resolves to "".
func (r *Resolver) Resolve(node *Node) string {
	return r.resolve(node, 0)
}

func (r *Resolver) resolve(node *Node, depth int) string {
	if node == nil {
		return ""
	}

	text := node.Text()
	for _, lang := range langOrder {
		if sub := node.First(lang); sub != nil {
			text = sub.Text()
			break
		}
	}

	if strings.HasPrefix(text, keyPrefix) && depth < maxDepth {
		return r.lookup(strings.TrimPrefix(text, keyPrefix), text, depth)
	}
	return text
}

// lookup searches the inline l10n table first, then the external
// "<prefix>_en.xml" file. orig is returned unchanged when the key is not
// found anywhere; an unresolved key is not an error.
func (r *Resolver) lookup(key, orig string, depth int) string {
	for _, entry := range r.root.All("l10n", "text") {
		if name, ok := entry.Attr("name"); ok && name == key {
			return r.resolve(entry, depth+1)
		}
	}

	prefix, ok := r.root.First("l10n").Attr("filenamePrefix")
	if !ok || r.loadAux == nil {
		return orig
	}
	raw, err := r.loadAux(prefix + "_en.xml")
	if err != nil {
		return orig
	}
	aux, err := Parse(string(raw))
	if err != nil {
		return orig
	}
	for _, entry := range aux.Root().All("texts", "text") {
		if name, ok := entry.Attr("name"); ok && name == key {
			if value, ok := entry.Attr("text"); ok {
				return value
			}
		}
	}
	return orig
}

// Package markup builds small XHTML documents as an ordered element tree
// and serializes them deterministically.
package markup

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// pairedEmpty lists element names that render as an open/close pair even
// when they carry no text and no children. Everything else self-closes.
var pairedEmpty = map[string]bool{
	"br": true,
}

// Node is one element: a tag name, an attribute map, optional text and
// an ordered list of child elements owned by this node.
type Node struct {
	Name       string
	Attributes map[string]string
	Text       string
	Children   []*Node
}

// New returns a detached node. attrs may be nil.
func New(name string, attrs map[string]string, text string) *Node {
	return &Node{Name: name, Attributes: attrs, Text: text}
}

// Child appends a new element to n and returns it.
func (n *Node) Child(name string, attrs map[string]string, text string) *Node {
	c := New(name, attrs, text)
	n.Children = append(n.Children, c)
	return c
}

// Append transfers ownership of an already-built subtree to n.
func (n *Node) Append(c *Node) {
	n.Children = append(n.Children, c)
}

// Render serializes the subtree rooted at n. indentUnit is the string
// added per nesting level.
func (n *Node) Render(indentUnit string) string {
	var sb strings.Builder
	n.render(&sb, "", indentUnit)
	return sb.String()
}

// render emits n depth-first, pre-order. Attribute values are written
// verbatim, sorted by attribute name; the caller is responsible for
// embedding safe text.
func (n *Node) render(sb *strings.Builder, indent, unit string) {
	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(n.Name)

	names := make([]string, 0, len(n.Attributes))
	for name := range n.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sb, ` %s="%s"`, name, n.Attributes[name])
	}

	switch {
	case n.Text != "" || len(n.Children) > 0:
		sb.WriteByte('>')

		multiLine := len(n.Children) > 0 || strings.Contains(n.Text, "\n")
		if multiLine {
			sb.WriteByte('\n')
		}
		if n.Text != "" {
			if multiLine {
				sb.WriteString(indent + unit)
			}
			sb.WriteString(n.Text)
			if multiLine {
				sb.WriteByte('\n')
			}
		}
		for _, c := range n.Children {
			c.render(sb, indent+unit, unit)
		}
		if multiLine {
			sb.WriteString(indent)
		}
		sb.WriteString("</")
		sb.WriteString(n.Name)

	case pairedEmpty[n.Name]:
		sb.WriteString("></")
		sb.WriteString(n.Name)

	default:
		sb.WriteByte('/')
	}

	sb.WriteString(">\n")
}

// Document is a preamble string followed by one root element tree.
type Document struct {
	Preamble string
	Root     *Node
}

// NewDocument returns a document whose root is <rootName>.
func NewDocument(preamble, rootName string) *Document {
	return &Document{Preamble: preamble, Root: New(rootName, nil, "")}
}

// Render serializes the preamble and the root tree.
func (d *Document) Render(indentUnit string) string {
	var sb strings.Builder
	if d.Preamble != "" {
		sb.WriteString(d.Preamble)
		if !strings.HasSuffix(d.Preamble, "\n") {
			sb.WriteByte('\n')
		}
	}
	d.Root.render(&sb, "", indentUnit)
	return sb.String()
}

// WriteFile renders the document and writes it to path in one shot.
func (d *Document) WriteFile(path, indentUnit string) error {
	if err := os.WriteFile(path, []byte(d.Render(indentUnit)), 0644); err != nil {
		return fmt.Errorf("markup: write %s: %w", path, err)
	}
	return nil
}

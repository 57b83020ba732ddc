package descriptor

import (
	"fmt"

	"github.com/beevik/etree"
)

// Doc is a parsed descriptor document.
type Doc struct {
	root *Node
}

// Node wraps one element of a parsed document with a read-only query
// surface. All methods tolerate a nil receiver, so lookup chains can be
// written without intermediate nil checks.
type Node struct {
	el *etree.Element
}

// Parse builds a Doc from (already repaired) descriptor text.
func Parse(text string) (*Doc, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("descriptor: parse: %w", err)
	}
	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("descriptor: parse: document has no root element")
	}
	return &Doc{root: &Node{el: root}}, nil
}

// Root returns the document's top-level element.
func (d *Doc) Root() *Node {
	return d.root
}

// First walks the child-name path and returns the first matching element,
// or nil when any step is missing. Paths are plain child-name sequences;
// no wildcards, no predicates.
func (n *Node) First(path ...string) *Node {
	if n == nil {
		return nil
	}
	el := n.el
	for _, name := range path {
		el = el.SelectElement(name)
		if el == nil {
			return nil
		}
	}
	return &Node{el: el}
}

// All walks the path up to its last step with First, then returns every
// child matching the final name, in document order.
func (n *Node) All(path ...string) []*Node {
	if len(path) == 0 {
		return nil
	}
	parent := n.First(path[:len(path)-1]...)
	if parent == nil {
		return nil
	}
	els := parent.el.SelectElements(path[len(path)-1])
	nodes := make([]*Node, 0, len(els))
	for _, el := range els {
		nodes = append(nodes, &Node{el: el})
	}
	return nodes
}

// Attr returns the named attribute's value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	a := n.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Text returns the element's character data, or "" for a nil node.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.el.Text()
}

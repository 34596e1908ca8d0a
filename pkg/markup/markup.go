// Package markup parses the XML documents that describe an element tree.
//
// Documents are kept as a plain tree of nodes. Attribute order is
// preserved, and text content is kept as text nodes so callers can decide
// to skip it.
package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyDocument is returned when a document has no root element.
var ErrEmptyDocument = errors.New("markup: document has no root element")

// Attr is a single name/value attribute in document order.
type Attr struct {
	Name  string
	Value string
}

// Node is an element or text node of a parsed document.
type Node struct {
	// Tag is the element name; empty for text nodes.
	Tag string
	// Text holds character data for text nodes.
	Text     string
	Attrs    []Attr
	Children []*Node
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Parse parses a markup document from a string.
func Parse(s string) (*Node, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader parses a markup document and returns its root element.
func ParseReader(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: qualifiedName(t.Name)}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: qualifiedName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("markup: multiple root elements (%s, %s)", root.Tag, n.Tag)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Node{Text: text})
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

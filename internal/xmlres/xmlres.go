// Package xmlres implements parsing and rendering of Android-style string
// resource XML files: a single <resources> root holding <string name="…">
// elements. Values are kept exactly as written (escape sequences and inline
// markup included); the package never interprets or rewrites them.
package xmlres

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Header is the declaration line written at the top of every rendered file.
const Header = `<?xml version="1.0" encoding="utf-8"?>`

// Indent is the fixed indentation for child elements.
const Indent = "    "

// Attr is a single element attribute, order-preserving.
type Attr struct {
	Name  string
	Value string
}

// Node is one child of <resources>: either a <string> entry (Name non-empty)
// or an XML comment (Comment non-empty).
type Node struct {
	// Name is the value of the name="…" attribute. Empty for comments.
	Name string
	// Attrs holds all attributes in document order, name="…" included.
	Attrs []Attr
	// Value is the inner text exactly as it is rendered into the file: XML
	// entities stay escaped and inline child markup such as <xliff:g> is kept
	// as raw text. Android escape sequences (\', \n, …) are plain characters.
	Value string
	// Comment is the comment text without the <!-- --> wrapper.
	Comment string
}

// IsComment reports whether the node is an XML comment.
func (n *Node) IsComment() bool { return n.Comment != "" && n.Name == "" }

// Document is a parsed resource file. Nodes keep document order; lookup by
// resource name is backed by an index.
type Document struct {
	Nodes  []*Node
	byName map[string]int
}

// Parse parses resource file data. It fails when the XML is malformed or when
// no <resources> root element is present.
func Parse(data []byte) (*Document, error) {
	doc := &Document{byName: make(map[string]int)}

	dec := xml.NewDecoder(strings.NewReader(string(data)))
	inResources := false
	sawResources := false

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("malformed resource XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "resources" && !inResources {
				inResources = true
				sawResources = true
				continue
			}
			if !inResources {
				continue
			}
			if t.Name.Local == "string" {
				node, err := parseStringElement(dec, t)
				if err != nil {
					return nil, err
				}
				doc.add(node)
				continue
			}
			// Non-string resources (string-array, plurals, …) are outside the
			// merge scope; skip the whole element.
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("malformed resource XML: %w", err)
			}

		case xml.Comment:
			if inResources {
				comment := strings.TrimSpace(string(t))
				if comment != "" {
					doc.Nodes = append(doc.Nodes, &Node{Comment: comment})
				}
			}

		case xml.EndElement:
			if t.Name.Local == "resources" {
				inResources = false
			}
		}
	}

	if !sawResources {
		return nil, fmt.Errorf("malformed resource XML: no <resources> root element")
	}

	return doc, nil
}

func (d *Document) add(n *Node) {
	idx := len(d.Nodes)
	d.Nodes = append(d.Nodes, n)
	if n.Name != "" {
		if _, exists := d.byName[n.Name]; !exists {
			d.byName[n.Name] = idx
		}
	}
}

// parseStringElement consumes an already-opened <string> element.
func parseStringElement(dec *xml.Decoder, elem xml.StartElement) (*Node, error) {
	node := &Node{}
	for _, a := range elem.Attr {
		attrName := a.Name.Local
		if a.Name.Space != "" {
			attrName = a.Name.Space + ":" + a.Name.Local
		}
		node.Attrs = append(node.Attrs, Attr{Name: attrName, Value: a.Value})
		if a.Name.Local == "name" {
			node.Name = a.Value
		}
	}
	var inner strings.Builder
	if err := readElementContent(dec, &inner); err != nil {
		return nil, fmt.Errorf("reading <string name=%q>: %w", node.Name, err)
	}
	node.Value = inner.String()
	return node, nil
}

// readElementContent reads the inner content of an element until its matching
// close tag, rebuilding the raw form: character data is re-escaped (the
// decoder hands it over decoded) and inline child elements (e.g. <xliff:g>)
// are reconstructed in place. CDATA sections are unwrapped by the decoder and
// re-emitted as entity-escaped text.
func readElementContent(dec *xml.Decoder, b *strings.Builder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.WriteString(escapeText(string(t)))
		case xml.StartElement:
			depth++
			b.WriteString("<")
			b.WriteString(qualifiedName(t.Name))
			for _, attr := range t.Attr {
				fmt.Fprintf(b, ` %s="%s"`, qualifiedName(attr.Name), escapeAttr(attr.Value))
			}
			b.WriteString(">")
		case xml.EndElement:
			depth--
			if depth > 0 {
				b.WriteString("</")
				b.WriteString(qualifiedName(t.Name))
				b.WriteString(">")
			}
		}
	}
	return nil
}

func qualifiedName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}

// Keys returns all resource names in document order.
func (d *Document) Keys() []string {
	var keys []string
	for _, n := range d.Nodes {
		if n.Name != "" {
			keys = append(keys, n.Name)
		}
	}
	return keys
}

// Has reports whether a resource with the given name exists.
func (d *Document) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Get returns the named resource's value in its rendered (escaped) form.
func (d *Document) Get(name string) (string, bool) {
	idx, ok := d.byName[name]
	if !ok {
		return "", false
	}
	return d.Nodes[idx].Value, true
}

// Append adds a new <string> entry at the end of the document. The first
// occurrence of a name wins; appending a duplicate name is the caller's bug
// and is ignored by the index (the document would render both).
func (d *Document) Append(name, value string) {
	d.add(&Node{
		Name:  name,
		Attrs: []Attr{{Name: "name", Value: name}},
		Value: Escape(value),
	})
}

// Marshal renders the document in canonical form: declaration header,
// <resources> root, children indented with Indent, trailing newline.
// Rendering a parsed canonical file reproduces it byte-for-byte.
func (d *Document) Marshal() []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n<resources>\n")
	for _, n := range d.Nodes {
		if n.IsComment() {
			fmt.Fprintf(&b, "%s<!-- %s -->\n", Indent, n.Comment)
			continue
		}
		b.WriteString(Indent)
		b.WriteString("<string")
		for _, a := range n.Attrs {
			fmt.Fprintf(&b, ` %s="%s"`, a.Name, escapeAttr(a.Value))
		}
		b.WriteString(">")
		b.WriteString(n.Value)
		b.WriteString("</string>\n")
	}
	b.WriteString("</resources>\n")
	return []byte(b.String())
}

// Escape encodes plain text for use inside an XML element, the same way the
// serializer renders parsed values: &, < and > become entities. Android escape
// sequences (\', \n) are plain characters here and are not altered.
func Escape(s string) string {
	return escapeText(s)
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	return strings.ReplaceAll(escapeText(s), `"`, "&quot;")
}

package html

import (
	"bytes"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser parses HTML fragments such as rendered mail bodies
type Parser struct{}

// Document is a parsed HTML document
type Document struct {
	Root *html.Node
}

// NewParser creates a new HTML parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses HTML from a string
func (p *Parser) ParseString(content string) (*Document, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses HTML from an io.Reader
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{Root: node}, nil
}

// Render renders the document back to HTML
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.Root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// block elements end the current line
var block = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.Li: true, atom.Tr: true, atom.Table: true, atom.Hr: true,
	atom.Ul: true, atom.Ol: true, atom.Section: true, atom.Blockquote: true,
}

// Text returns the readable text of the document: whitespace collapsed,
// one line per block element or <br>, script and style dropped. Link
// targets that differ from their text are kept in angle brackets.
func (d *Document) Text() string {
	t := &textWriter{}
	t.walk(d.Root)
	lines := strings.Split(t.buf.String(), "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.Join(strings.Fields(l), " ")
		if l == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, l)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

type textWriter struct {
	buf strings.Builder
}

func (t *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		// source line breaks are not text line breaks
		t.buf.WriteString(strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return ' '
			}
			return r
		}, n.Data))
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head:
			return
		case atom.Br:
			t.buf.WriteString("\n")
			return
		}
	}

	isBlock := n.Type == html.ElementNode && block[n.DataAtom]
	if isBlock {
		t.buf.WriteString("\n")
	}
	if n.Type == html.ElementNode && n.DataAtom == atom.Li {
		t.buf.WriteString("- ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t.walk(c)
	}
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		target := strings.TrimPrefix(attr(n, "href"), "mailto:")
		if target != "" && target != textOf(n) {
			t.buf.WriteString(" <" + target + ">")
		}
	}
	if isBlock {
		t.buf.WriteString("\n")
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

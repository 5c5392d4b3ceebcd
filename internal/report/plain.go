package report

import (
	"strings"

	"weboodi-charts/lib/htmlutil"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var fragmentContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "div",
	DataAtom: atom.Div,
}

// PlainText strips the markup of a block, paragraphs and line breaks turn
// into new lines.
func (b Block) PlainText() (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(b.HTML), fragmentContext)
	if err != nil {
		return "", err
	}
	var lines []string
	var current strings.Builder
	flush := func() {
		line := strings.Join(strings.Fields(current.String()), " ")
		if line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			current.WriteString(n.Data)
			return
		case n.DataAtom == atom.Br:
			flush()
			return
		case n.DataAtom == atom.P || n.DataAtom == atom.Div:
			flush()
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			flush()
			return
		case n.DataAtom == atom.Span:
			current.WriteString(htmlutil.GetText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	flush()
	return strings.Join(lines, "\n"), nil
}

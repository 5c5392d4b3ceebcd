package htmlutil

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"weboodi-charts/lib/textutil"
)

// GetText concatenates every text node below node. Unlike
// goquery.Selection.Text it works on a single node.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// CellTexts returns the cleaned text of every node in sel, in document
// order. A row's `td` selection turns into its list of cell values.
func CellTexts(sel *goquery.Selection) []string {
	cells := make([]string, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		cells = append(cells, textutil.Clean(GetText(n)))
	}
	return cells
}

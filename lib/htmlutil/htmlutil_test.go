package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCellTexts(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<table><tr>
		<td> TKT10002 </td>
		<td>Ohjelmoinnin <b>perusteet</b></td>
		<td>Matti&nbsp;Luukkainen</td>
		<td></td>
	</tr></table>`))
	require.NoError(t, err)

	cells := CellTexts(doc.Find("tr").First().ChildrenFiltered("td"))
	require.Equal(t, []string{"TKT10002", "Ohjelmoinnin perusteet", "Matti Luukkainen", ""}, cells)

	require.Equal(t, "", GetText(nil))
	require.Equal(t, "perusteet", GetText(doc.Find("b").Nodes[0]))
}

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Section is the index entry for one ordering.
type Section struct {
	Ordering string
	Charts   []Figure
	Table    *Table // all algorithms, for the data table
}

// Figure is one rendered chart.
type Figure struct {
	Title string // e.g. "Desempenho GERAL – Vetor Crescente"
	File  string // image path relative to the index
	Table *Table
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// appendText appends an element holding a single text node.
func appendText(parent *html.Node, a atom.Atom, s string, attrs ...string) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(text(s))
	parent.AppendChild(n)
	return n
}

// WriteIndex renders the chart index page.
func WriteIndex(w io.Writer, sections []Section) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "lang", "pt")
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	appendText(head, atom.Title, "Desempenho dos algoritmos de ordenação")
	appendText(head, atom.Style, "body{font-family:sans-serif;margin:2em}"+
		"img{max-width:100%;border:1px solid #ddd}"+
		"table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:4px 8px;text-align:right}"+
		".swatch{display:inline-block;width:1em;height:1em;margin-right:.4em;vertical-align:middle}")

	body := element(atom.Body)
	root.AppendChild(body)
	appendText(body, atom.H1, "Desempenho dos algoritmos de ordenação")

	for _, s := range sections {
		sec := element(atom.Section, "id", s.Ordering)
		body.AppendChild(sec)
		appendText(sec, atom.H2, "Vetor "+s.Ordering)

		for _, f := range s.Charts {
			sec.AppendChild(figure(f))
		}
		if s.Table != nil {
			sec.AppendChild(dataTable(s.Table))
		}
	}

	return html.Render(w, doc)
}

func figure(f Figure) *html.Node {
	fig := element(atom.Figure)
	fig.AppendChild(element(atom.Img, "src", f.File, "alt", f.Title))

	caption := element(atom.Figcaption)
	fig.AppendChild(caption)
	appendText(caption, atom.Strong, f.Title)

	p := newPlotArea(f.Table)
	appendText(caption, atom.P, fmt.Sprintf("Tamanho da Instância (n): %d – %d · Tempo (ms): 0 – %s",
		int(p.minX), int(p.maxX), formatMillis(p.maxY)))

	legend := element(atom.Ul, "class", "legend")
	caption.AppendChild(legend)
	for _, alg := range f.Table.Algorithms {
		info := infoFor(alg)
		li := element(atom.Li)
		legend.AppendChild(li)
		li.AppendChild(element(atom.Span, "class", "swatch",
			"style", fmt.Sprintf("background:#%02x%02x%02x", info.Color.R, info.Color.G, info.Color.B)))
		li.AppendChild(text(info.Label))
	}
	return fig
}

func dataTable(t *Table) *html.Node {
	tbl := element(atom.Table)

	head := element(atom.Tr)
	tbl.AppendChild(head)
	appendText(head, atom.Th, "n")
	for _, alg := range t.Algorithms {
		appendText(head, atom.Th, infoFor(alg).Label+" (ms)")
	}

	for i, n := range t.Sizes {
		tr := element(atom.Tr)
		tbl.AppendChild(tr)
		appendText(tr, atom.Td, strconv.Itoa(n))
		for _, v := range t.Millis[i] {
			appendText(tr, atom.Td, formatMillis(v))
		}
	}
	return tbl
}

func formatMillis(v float64) string {
	if math.IsNaN(v) {
		return "–"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

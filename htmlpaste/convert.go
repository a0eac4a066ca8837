package htmlpaste

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Convert parses an HTML fragment and returns its markdown rendition.
// Output text is normalized to NFC so that visually identical pasted
// content produces identical runs.
func Convert(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	w := &writer{}
	w.walk(doc)
	w.flushText()
	return norm.NFC.String(strings.Join(w.lines, "\n")), nil
}

// ConvertString is Convert over an in-memory HTML string.
func ConvertString(s string) (string, error) {
	return Convert(strings.NewReader(s))
}

// writer accumulates markdown lines during the DOM walk. Stray inline
// content between block elements collects in pending until a block
// boundary flushes it as a paragraph line.
type writer struct {
	lines   []string
	pending strings.Builder
}

func (w *writer) emit(line string) {
	w.flushText()
	w.lines = append(w.lines, line)
}

func (w *writer) flushText() {
	text := collapseSpace(w.pending.String())
	w.pending.Reset()
	if text != "" {
		w.lines = append(w.lines, text)
	}
}

// skippedElements are non-content tags whose subtrees are ignored.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"head":     true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
	"button":   true,
	"nav":      true,
}

// walk processes block-level structure. Inline content inside a block is
// rendered by inlineText.
func (w *writer) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		if skippedElements[n.Data] {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			if text := collapseSpace(inlineText(n)); text != "" {
				w.emit(strings.Repeat("#", level) + " " + text)
			}
			return

		case "p", "blockquote":
			for _, line := range splitInlineLines(inlineText(n)) {
				w.emit(line)
			}
			return

		case "ul", "ol":
			w.flushText()
			w.writeList(n, n.Data == "ol")
			return

		case "table":
			w.flushText()
			w.writeTable(n)
			return

		case "hr":
			w.emit("---")
			return

		case "br":
			w.flushText()
			return

		case "pre":
			for _, line := range splitInlineLines(rawText(n)) {
				w.emit("`" + line + "`")
			}
			return

		case "b", "strong", "i", "em", "code", "del", "s", "strike", "span", "a", "u":
			// Inline element at block level: render into pending text.
			w.pending.WriteString(inlineText(n))
			return
		}
	}

	if n.Type == html.TextNode {
		w.pending.WriteString(n.Data)
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// writeList emits one markdown line per list item. Nested lists flatten to
// additional items; the core does not support nested list levels.
func (w *writer) writeList(n *html.Node, ordered bool) {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		if text := collapseSpace(directInlineText(c)); text != "" {
			count++
			if ordered {
				w.emit(fmt.Sprintf("%d. %s", count, text))
			} else {
				w.emit("- " + text)
			}
		}
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			if g.Type == html.ElementNode && (g.Data == "ul" || g.Data == "ol") {
				w.writeList(g, g.Data == "ol")
			}
		}
	}
}

// writeTable emits a pipe table: the first row becomes the header, followed
// by an alignment separator derived from cell align attributes.
func (w *writer) writeTable(n *html.Node) {
	var rows [][]tableCell
	collectRows(n, &rows)
	if len(rows) == 0 {
		return
	}

	w.emit(pipeRow(rows[0]))

	var sep strings.Builder
	for _, cell := range rows[0] {
		switch cell.align {
		case "center":
			sep.WriteString("|:---:")
		case "right":
			sep.WriteString("|---:")
		default:
			sep.WriteString("|---")
		}
	}
	sep.WriteString("|")
	w.emit(sep.String())

	for _, row := range rows[1:] {
		w.emit(pipeRow(row))
	}
}

type tableCell struct {
	text  string
	align string
}

func collectRows(n *html.Node, rows *[][]tableCell) {
	if n.Type == html.ElementNode && n.Data == "tr" {
		var row []tableCell
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
				row = append(row, tableCell{
					text:  collapseSpace(inlineText(c)),
					align: attrValue(c, "align"),
				})
			}
		}
		if len(row) > 0 {
			*rows = append(*rows, row)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRows(c, rows)
	}
}

func pipeRow(cells []tableCell) string {
	var sb strings.Builder
	for _, cell := range cells {
		sb.WriteString("| ")
		// Pipes inside cell text would break the row shape.
		sb.WriteString(strings.ReplaceAll(cell.text, "|", "/"))
		sb.WriteString(" ")
	}
	sb.WriteString("|")
	return sb.String()
}

// inlineText renders a node's content with markdown emphasis markers.
func inlineText(n *html.Node) string {
	if n.Type == html.TextNode {
		// Source newlines are plain whitespace; only <br> breaks lines.
		return strings.ReplaceAll(n.Data, "\n", " ")
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return ""
	}
	if n.Type == html.ElementNode && skippedElements[n.Data] {
		return ""
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(inlineText(c))
	}
	text := sb.String()

	if n.Type == html.ElementNode {
		switch n.Data {
		case "b", "strong":
			if strings.TrimSpace(text) != "" {
				return "**" + strings.TrimSpace(text) + "**"
			}
		case "i", "em":
			if strings.TrimSpace(text) != "" {
				return "*" + strings.TrimSpace(text) + "*"
			}
		case "code":
			if strings.TrimSpace(text) != "" {
				return "`" + strings.TrimSpace(text) + "`"
			}
		case "del", "s", "strike":
			if strings.TrimSpace(text) != "" {
				return "~~" + strings.TrimSpace(text) + "~~"
			}
		case "br":
			return "\n"
		}
	}
	return text
}

// directInlineText renders a node's inline content, excluding nested lists.
func directInlineText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			continue
		}
		sb.WriteString(inlineText(c))
	}
	return sb.String()
}

// rawText returns the concatenated text content without markers.
func rawText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(rawText(c))
	}
	return sb.String()
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// splitInlineLines splits rendered inline content on <br> line breaks,
// dropping blank lines.
func splitInlineLines(s string) []string {
	collapsed := collapseSpace(s)
	if collapsed == "" {
		return nil
	}
	return strings.Split(collapsed, "\n")
}

// collapseSpace trims the string and collapses internal whitespace runs to
// single spaces, preserving newlines produced by <br>.
func collapseSpace(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}

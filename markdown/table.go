package markdown

import (
	"math"
	"regexp"
	"strings"

	"github.com/slideforge/slidemark/model"
)

// Table geometry constants, in canvas units.
const (
	maxColumnWidth = 150.0
	tableMargin    = 100.0
	rowHeight      = 36.0
	cellFontSize   = 14.0
)

// separatorPattern matches the alignment row under a table header: cells
// consisting only of dashes, colons, and whitespace.
var separatorPattern = regexp.MustCompile(`^\|(?:[\s:-]+\|)+$`)

// isPipeRow reports whether the trimmed line begins and ends with a pipe.
func isPipeRow(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && strings.HasPrefix(t, "|") && strings.HasSuffix(t, "|")
}

// isTableStart reports whether a table begins at lines[i]: a pipe-shaped
// row followed by a separator row.
func isTableStart(lines []string, i int) bool {
	return isPipeRow(lines[i]) &&
		i+1 < len(lines) &&
		separatorPattern.MatchString(strings.TrimSpace(lines[i+1]))
}

// splitRow splits a pipe row into trimmed cell strings, dropping the outer
// pipes.
func splitRow(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	cells := strings.Split(t, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// parseAlignments derives per-column alignment from the separator row:
// colons on both ends center, a trailing colon alone right-aligns,
// anything else left-aligns. Missing separator cells default to left.
func parseAlignments(cells []string, columns int) []model.Alignment {
	aligns := make([]model.Alignment, columns)
	for i := 0; i < columns && i < len(cells); i++ {
		leading := strings.HasPrefix(cells[i], ":")
		trailing := strings.HasSuffix(cells[i], ":")
		switch {
		case leading && trailing:
			aligns[i] = model.AlignCenter
		case trailing:
			aligns[i] = model.AlignRight
		default:
			aligns[i] = model.AlignLeft
		}
	}
	return aligns
}

// extractTable parses a pipe table starting at lines[start]. It collects
// consecutive pipe rows, stopping at the first blank line (consumed) or
// non-pipe line (not consumed). On success it returns the table element and
// the index of the first unconsumed line. Fewer than two collected rows
// abort the extraction: the return index equals start and no lines are
// consumed, so the caller reclassifies them as plain text.
func (c *Converter) extractTable(lines []string, start int) (*model.Table, int) {
	next := start
	var rows []string
	for next < len(lines) {
		trimmed := strings.TrimSpace(lines[next])
		if trimmed == "" {
			next++
			break
		}
		if !isPipeRow(trimmed) {
			break
		}
		rows = append(rows, trimmed)
		next++
	}
	if len(rows) < 2 {
		return nil, start
	}

	header := splitRow(rows[0])
	columns := len(header)
	aligns := parseAlignments(splitRow(rows[1]), columns)
	data := rows[2:]

	cells := make([][]model.Cell, 0, 1+len(data))
	cells = append(cells, c.buildRow(header, aligns, true))
	for _, row := range data {
		cells = append(cells, c.buildRow(splitRow(row), aligns, false))
	}

	rowCount := len(cells)
	columnWidth := math.Min(maxColumnWidth, math.Floor((c.space.Width-tableMargin)/float64(columns)))
	width := columnWidth * float64(columns)
	height := rowHeight * float64(rowCount)

	columnWidths := make([]float64, columns)
	for i := range columnWidths {
		columnWidths[i] = columnWidth
	}
	rowHeights := make([]float64, rowCount)
	for i := range rowHeights {
		rowHeights[i] = rowHeight
	}

	return &model.Table{
		Box: model.Box{
			ElementID: c.ids.NewID(),
			Position: model.Position{
				X: math.Round((c.space.Width - width) / 2),
				Y: math.Round((c.space.Height - height) / 2),
			},
			Size: model.Size{Width: width, Height: height},
		},
		Rows:         rowCount,
		Columns:      columns,
		Cells:        cells,
		ColumnWidths: columnWidths,
		RowHeights:   rowHeights,
		Style: model.TableStyle{
			BorderColor: c.theme.TableBorderColor,
			HeaderFill:  c.theme.TableHeaderFill,
			CellFill:    c.theme.TableCellFill,
		},
	}, next
}

// buildRow builds one cell row, truncating or padding the source cells to
// the header's column count. Missing trailing cells become empty.
func (c *Converter) buildRow(texts []string, aligns []model.Alignment, header bool) []model.Cell {
	row := make([]model.Cell, len(aligns))
	for i := range aligns {
		text := ""
		if i < len(texts) {
			text = texts[i]
		}
		row[i] = c.newCell(text, aligns[i], header)
	}
	return row
}

func (c *Converter) newCell(text string, align model.Alignment, header bool) model.Cell {
	style := c.theme.Text
	style.FontSize = cellFontSize
	if header {
		style.Weight = model.WeightBold
	}

	fill := c.theme.TableCellFill
	if header {
		fill = c.theme.TableHeaderFill
	}

	paragraph := model.Paragraph{
		ID:        c.ids.NewID(),
		Runs:      c.TokenizeInline(text, style),
		Alignment: align,
	}
	return model.Cell{
		ID:            c.ids.NewID(),
		Content:       model.TextContent{Paragraphs: []model.Paragraph{paragraph}},
		Alignment:     align,
		Padding:       model.Padding{Top: 4, Bottom: 4, Left: 8, Right: 8},
		VerticalAlign: model.VAlignMiddle,
		Fill:          fill,
		Borders:       model.UniformBorders(model.Border{Width: 1, Color: c.theme.TableBorderColor}),
	}
}

package model

import "strings"

// VerticalAlign represents vertical alignment of cell content.
type VerticalAlign int

const (
	VAlignTop VerticalAlign = iota
	VAlignMiddle
	VAlignBottom
)

func (v VerticalAlign) String() string {
	switch v {
	case VAlignMiddle:
		return "Middle"
	case VAlignBottom:
		return "Bottom"
	default:
		return "Top"
	}
}

// Padding represents inner cell padding in canvas units.
type Padding struct {
	Top, Bottom, Left, Right float64
}

// Borders represents the four edges of a cell border.
type Borders struct {
	Top, Bottom, Left, Right Border
}

// UniformBorders returns a Borders value with the same border on all edges.
func UniformBorders(b Border) Borders {
	return Borders{Top: b, Bottom: b, Left: b, Right: b}
}

// Cell represents a single table cell. Content always holds exactly one
// paragraph.
type Cell struct {
	ID            string
	Content       TextContent
	Alignment     Alignment
	Padding       Padding
	VerticalAlign VerticalAlign
	Fill          Color
	Borders       Borders
}

// GetText returns the cell content as plain text.
func (c Cell) GetText() string { return c.Content.PlainText() }

// TableStyle represents table-level styling defaults.
type TableStyle struct {
	BorderColor Color
	HeaderFill  Color
	CellFill    Color
}

// Table is a table element with a rectangular cell grid. Cells[0] is the
// header row; Cells has exactly Rows entries of exactly Columns cells each.
type Table struct {
	Box
	Rows         int
	Columns      int
	Cells        [][]Cell
	ColumnWidths []float64
	RowHeights   []float64
	Style        TableStyle
}

func (t *Table) Kind() ElementKind { return KindTable }

// GetText returns the table content as tab-separated plain text.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Cells {
		for j, cell := range row {
			sb.WriteString(cell.GetText())
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// GetCell returns the cell at the given row and column (0-indexed), or nil
// when out of bounds.
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Cells) {
		return nil
	}
	if col < 0 || col >= len(t.Cells[row]) {
		return nil
	}
	return &t.Cells[row][col]
}

// HeaderRow returns the header cells, or nil for an empty table.
func (t *Table) HeaderRow() []Cell {
	if len(t.Cells) == 0 {
		return nil
	}
	return t.Cells[0]
}

// ToMarkdown converts the table back to a pipe table, preserving column
// alignment markers. This is the copy-out path of the slide editor.
func (t *Table) ToMarkdown() string {
	if len(t.Cells) == 0 {
		return ""
	}

	var sb strings.Builder

	for _, cell := range t.Cells[0] {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell.GetText(), "\n", " "))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	for _, cell := range t.Cells[0] {
		switch cell.Alignment {
		case AlignCenter:
			sb.WriteString("|:---:")
		case AlignRight:
			sb.WriteString("|---:")
		default:
			sb.WriteString("|---")
		}
	}
	sb.WriteString("|\n")

	for _, row := range t.Cells[1:] {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.GetText(), "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// ToCSV converts the table to CSV format. Cell text containing commas,
// quotes, or newlines is quoted per RFC 4180.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Cells {
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(csvEscape(cell.GetText()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}

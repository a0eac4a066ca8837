package markdown

import (
	"strings"
	"testing"

	"github.com/slideforge/slidemark/model"
)

// ============================================================================
// Elements Pipeline Tests
// ============================================================================

func TestElementsNeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   \n \t \n",
		"# Heading",
		"just text",
		"| A |\n|---|\n| 1 |",
	}
	for _, input := range inputs {
		conv := testConverter()
		if elements := conv.Elements(input); len(elements) == 0 {
			t.Errorf("Elements(%q) returned an empty sequence", input)
		}
	}
}

func TestElementsSingleTextBoxPerLineRun(t *testing.T) {
	// Consecutive non-table lines map to one text box with one paragraph
	// per content line.
	conv := testConverter()
	elements := conv.Elements("# Title\nfirst\n\nsecond\n- item")
	if len(elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(elements))
	}
	box, ok := elements[0].(*model.TextBox)
	if !ok {
		t.Fatalf("element is %T, want *model.TextBox", elements[0])
	}
	if len(box.Content.Paragraphs) != 4 {
		t.Errorf("got %d paragraphs, want 4 (blank line skipped)", len(box.Content.Paragraphs))
	}
	if box.Size.Width != 400 || box.Size.Height != 200 {
		t.Errorf("size = %vx%v, want 400x200", box.Size.Width, box.Size.Height)
	}
	if box.Position.X != 280 {
		t.Errorf("x = %v, want horizontally centered 280", box.Position.X)
	}
	if box.ZIndex() != 0 {
		t.Errorf("zIndex = %d, want 0", box.ZIndex())
	}
}

func TestElementsTableFlushesText(t *testing.T) {
	conv := testConverter()
	source := strings.Join([]string{
		"before",
		"| A | B |",
		"|---|---|",
		"| 1 | 2 |",
		"after",
	}, "\n")

	elements := conv.Elements(source)
	if len(elements) != 3 {
		t.Fatalf("got %d elements, want text, table, text", len(elements))
	}
	if _, ok := elements[0].(*model.TextBox); !ok {
		t.Errorf("elements[0] is %T, want *model.TextBox", elements[0])
	}
	table, ok := elements[1].(*model.Table)
	if !ok {
		t.Fatalf("elements[1] is %T, want *model.Table", elements[1])
	}
	if table.Rows != 2 || table.Columns != 2 {
		t.Errorf("table = %dx%d, want 2x2", table.Rows, table.Columns)
	}
	if _, ok := elements[2].(*model.TextBox); !ok {
		t.Errorf("elements[2] is %T, want *model.TextBox", elements[2])
	}
}

func TestElementsPipeRowWithoutSeparatorStaysText(t *testing.T) {
	// A pipe-shaped line that does not open a table is an ordinary
	// paragraph; pending text is preserved in the same box.
	conv := testConverter()
	elements := conv.Elements("text\n| a | b |\nmore")
	if len(elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(elements))
	}
	box := elements[0].(*model.TextBox)
	if len(box.Content.Paragraphs) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(box.Content.Paragraphs))
	}
	if got := box.Content.Paragraphs[1].PlainText(); got != "| a | b |" {
		t.Errorf("paragraph text = %q, want the literal pipe row", got)
	}
}

func TestElementsLayout(t *testing.T) {
	// Text (200) + header-only table (36) + text (200) with two 20 gaps
	// is 476 tall: startY = round((540-476)/2) = 32.
	conv := testConverter()
	source := strings.Join([]string{
		"before",
		"| A |",
		"|---|",
		"after",
	}, "\n")

	elements := conv.Elements(source)
	if len(elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(elements))
	}
	ys := []float64{
		elements[0].Bounds().Y,
		elements[1].Bounds().Y,
		elements[2].Bounds().Y,
	}
	if ys[0] != 32 {
		t.Errorf("first y = %v, want 32", ys[0])
	}
	if ys[1] != 252 {
		t.Errorf("second y = %v, want 32+200+20 = 252", ys[1])
	}
	if ys[2] != 308 {
		t.Errorf("third y = %v, want 252+36+20 = 308", ys[2])
	}
}

func TestElementsEmptyInputFallback(t *testing.T) {
	conv := testConverter()
	elements := conv.Elements("")
	if len(elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(elements))
	}
	box, ok := elements[0].(*model.TextBox)
	if !ok {
		t.Fatalf("element is %T, want *model.TextBox", elements[0])
	}
	if len(box.Content.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(box.Content.Paragraphs))
	}
	runs := box.Content.Paragraphs[0].Runs
	if len(runs) != 1 || runs[0].Text != " " {
		t.Errorf("fallback runs = %v, want a single-space placeholder", runs)
	}
	if y := box.Bounds().Y; y != 170 {
		t.Errorf("y = %v, want vertically centered 170", y)
	}
}

func TestElementsUniqueIDs(t *testing.T) {
	conv := testConverter()
	source := "# Title\n**bold** text\n| A | B |\n|---|---|\n| 1 | 2 |"
	elements := conv.Elements(source)

	seen := make(map[string]bool)
	record := func(id string) {
		if id == "" {
			t.Error("empty id")
			return
		}
		if seen[id] {
			t.Errorf("duplicate id %q", id)
		}
		seen[id] = true
	}

	var walkContent func(tc model.TextContent)
	walkContent = func(tc model.TextContent) {
		for _, p := range tc.Paragraphs {
			record(p.ID)
			for _, r := range p.Runs {
				record(r.ID)
			}
		}
	}

	for _, el := range elements {
		record(el.ID())
		switch e := el.(type) {
		case *model.TextBox:
			walkContent(e.Content)
		case *model.Table:
			for _, row := range e.Cells {
				for _, cell := range row {
					record(cell.ID)
					walkContent(cell.Content)
				}
			}
		}
	}
}

// ============================================================================
// TextContent Pipeline Tests
// ============================================================================

func TestTextContentFlattensTables(t *testing.T) {
	conv := testConverter()
	source := strings.Join([]string{
		"# Head",
		"| A | B |",
		"|---|---|",
		"| 1 | 2 |",
	}, "\n")

	tc := conv.TextContent(source)
	if len(tc.Paragraphs) != 3 {
		t.Fatalf("got %d paragraphs, want 3 (separator row dropped)", len(tc.Paragraphs))
	}
	if got := tc.Paragraphs[1].PlainText(); got != "A  |  B" {
		t.Errorf("header row = %q, want cells joined with \"  |  \"", got)
	}
	if got := tc.Paragraphs[2].PlainText(); got != "1  |  2" {
		t.Errorf("data row = %q, want cells joined with \"  |  \"", got)
	}
	if tc.Paragraphs[0].Runs[0].Style.FontSize != 36 {
		t.Errorf("heading size = %v, want 36", tc.Paragraphs[0].Runs[0].Style.FontSize)
	}
}

func TestTextContentFallback(t *testing.T) {
	conv := testConverter()
	tc := conv.TextContent("  \n\t\n")
	if len(tc.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(tc.Paragraphs))
	}
	if got := tc.Paragraphs[0].PlainText(); got != " " {
		t.Errorf("fallback text = %q, want single space", got)
	}
}

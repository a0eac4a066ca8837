package slidemark_test

import (
	"fmt"

	"github.com/slideforge/slidemark"
	"github.com/slideforge/slidemark/ident"
)

func Example() {
	source := "# Quarterly Review\n" +
		"- Revenue up **12%**\n" +
		"- Churn down *0.4%*\n" +
		"\n" +
		"| Region | Revenue |\n" +
		"|---|---:|\n" +
		"| EMEA | 4.1M |\n" +
		"| APAC | 3.6M |"

	elements, _ := slidemark.Convert(source).
		WithIDs(ident.NewSequence("el")).
		Elements()

	for _, el := range elements {
		b := el.Bounds()
		fmt.Printf("%s at (%.0f, %.0f) %vx%v\n", el.Kind(), b.X, b.Y, b.Width, b.Height)
	}
	// Output:
	// TextBox at (280, 106) 400x200
	// Table at (330, 326) 300x108
}

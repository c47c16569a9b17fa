package formats

import (
	"fmt"
	"strings"
)

// Text renders the human-readable report: the match length and text,
// followed by the elapsed wall-clock time.
var Text = &RenderFormat{
	Name: "text",
	Render: func(r Report) (string, error) {
		var b strings.Builder
		if r.Length == 0 {
			b.WriteString("The two documents share no common substring.\n")
		} else {
			fmt.Fprintf(&b, "The longest common substring is %d characters:\n'%s'\n", r.Length, r.Text)
		}
		fmt.Fprintf(&b, "It took %v to find the answer.\n", r.Elapsed)
		return b.String(), nil
	},
}

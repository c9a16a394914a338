package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report nicely on the terminal.
func printMarkdown(markdown string) {
	rendered, err := glamour.Render(markdown, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(markdown)
		return
	}
	fmt.Print(rendered)
}

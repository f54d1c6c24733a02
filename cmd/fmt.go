package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report for the terminal. When rendering
// fails (e.g. no usable terminal) the raw markdown is printed instead.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}

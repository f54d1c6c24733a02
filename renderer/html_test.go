package renderer

import (
	"strings"
	"testing"
)

func TestHTMLPage(t *testing.T) {
	page, err := HTMLPage("Income Portfolio Analysis", "# Hello\n\nSome *markdown*.")
	if err != nil {
		t.Fatalf("HTMLPage() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Income Portfolio Analysis</title>",
		"<h1>Hello</h1>",
		"<em>markdown</em>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("HTMLPage() misses %q", want)
		}
	}
}

func TestHTMLPage_Table(t *testing.T) {
	// Pipe tables need the GFM extension; the base CommonMark parser would
	// leave them as plain text.
	page, err := HTMLPage("t", "| A | B |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("HTMLPage() error = %v", err)
	}
	if !strings.Contains(page, "<table>") {
		t.Error("HTMLPage() did not render the pipe table")
	}
}

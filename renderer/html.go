package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlShell wraps the converted report body into a standalone page: dark
// header, zebra rows.
const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
body { font-family: 'Segoe UI', Arial, sans-serif; margin: 2em auto; max-width: 72em; padding: 0 1em; color: #222; }
h1 { border-bottom: 3px solid #2c3e50; padding-bottom: .3em; }
h2 { color: #2c3e50; margin-top: 2em; }
table { border-collapse: collapse; width: 100%%; margin: 1em 0; font-size: .92em; }
th { background: #2c3e50; color: #fff; padding: .5em .7em; text-align: inherit; }
td { padding: .45em .7em; border-bottom: 1px solid #ddd; }
tr:nth-child(even) { background: #f6f8fa; }
code { background: #f0f0f0; padding: .1em .3em; border-radius: 3px; }
</style>
</head>
<body>
%s
</body>
</html>
`

// HTMLPage converts a markdown report into a standalone styled HTML page.
func HTMLPage(title, markdown string) (string, error) {
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := gm.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("failed to convert report to HTML: %w", err)
	}
	return fmt.Sprintf(htmlShell, title, body.String()), nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
)

// writeReport renders a short feature report to outPath. format "md" writes
// the Markdown directly; format "html" additionally converts it with
// gomarkdown.
func writeReport(outPath, format string, names []string, values []float64) error {
	var b strings.Builder
	b.WriteString("# Light Curve Feature Report\n\n")
	b.WriteString("| Feature | Value |\n|---|---|\n")
	for i, name := range names {
		fmt.Fprintf(&b, "| %s | %g |\n", name, values[i])
	}

	content := []byte(b.String())
	if format == "html" {
		content = markdown.ToHTML(content, nil, nil)
	}
	return os.WriteFile(outPath, content, 0o644)
}

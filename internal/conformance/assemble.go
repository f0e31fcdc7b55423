package conformance

import (
	"fmt"
	"os"
	"strings"
)

// assembleReport substitutes the rendered tables into the template. The
// template must carry the substitution marker exactly once; anything else is
// a fatal validation error rather than a silent pass-through.
func assembleReport(templatePath, detailHTML, summaryHTML string) ([]byte, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", templatePath, err)
	}
	template := string(raw)
	switch n := strings.Count(template, summaryMarker); n {
	case 1:
	case 0:
		return nil, fmt.Errorf("template %s is missing the %s marker", templatePath, summaryMarker)
	default:
		return nil, fmt.Errorf("template %s contains %d %s markers, want exactly one", templatePath, n, summaryMarker)
	}
	body := detailHTML + "\n" + summaryHTML
	return []byte(strings.Replace(template, summaryMarker, body, 1)), nil
}

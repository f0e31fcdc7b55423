package conformance

import (
	"fmt"
	"html"
	"strings"

	"github.com/typeconf/conformance-report/internal/catalog"
)

// renderDetailTable walks test groups in catalog order and emits one row per
// member case with one classified cell per registered tool. Statistics for
// every (case, tool) pair accumulate into stats during the walk, including
// pairs whose result file is missing.
func renderDetailTable(root string, checkers []catalog.TypeChecker, groups []catalog.TestGroup, cases []catalog.TestCase, stats map[string]*SummaryStats, loader *resultLoader) string {
	columnCount := len(checkers) + 1

	var b strings.Builder
	b.WriteString("<div class=\"table_container\"><table><tbody>\n")
	b.WriteString("<tr><th class=\"col1\">&nbsp;</th>\n")
	for _, tc := range checkers {
		version := loader.version(versionPath(root, tc.Name))
		fmt.Fprintf(&b, "<th class=\"tc-header\"><div class=\"tc-name\">%s</div></th>\n", esc(version))
	}
	b.WriteString("</tr>\n")

	for _, group := range groups {
		members := catalog.GroupMembers(group, cases)
		if len(members) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<tr><th class=\"column\" colspan=\"%d\"><a class=\"test_group\" href=\"%s\">%s</a></th></tr>\n",
			columnCount, esc(group.Href), esc(group.Name))

		for _, testCase := range members {
			fmt.Fprintf(&b, "<tr><th class=\"column col1\">&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;%s</th>\n", esc(testCase.Name))
			for _, tc := range checkers {
				result := loader.caseResult(resultPath(root, tc.Name, testCase.Name))
				c := Classify(result)
				stats[tc.Name].Add(c)
				fmt.Fprintf(&b, "<th class=\"column col2 %s\">%s</th>\n", c.Class, renderCell(c))
			}
			b.WriteString("</tr>\n")
		}
	}

	b.WriteString("</tbody></table></div>\n")
	return b.String()
}

// renderSummaryTable emits the per-tool statistics table and returns the
// matching machine-readable rows. Version records are re-read here so each
// table tolerates absence independently.
func renderSummaryTable(root string, checkers []catalog.TypeChecker, stats map[string]*SummaryStats, loader *resultLoader) (string, []ToolSummary) {
	tools := make([]ToolSummary, 0, len(checkers))

	var b strings.Builder
	b.WriteString("<div style=\"margin-top: 30px;\"><h3>Summary Statistics</h3>\n")
	b.WriteString("<div class=\"table_container\"><table><tbody>\n")
	b.WriteString("<tr><th class=\"col1\">Type Checker</th>")
	b.WriteString("<th class=\"column\">Total Test Case Passes</th>")
	b.WriteString("<th class=\"column\">Total Test Case Partial</th>")
	b.WriteString("<th class=\"column\">Total False Positives</th>")
	b.WriteString("<th class=\"column\">Total False Negatives</th></tr>\n")

	for _, tc := range checkers {
		version := loader.version(versionPath(root, tc.Name))
		s := *stats[tc.Name]
		tools = append(tools, ToolSummary{Name: tc.Name, Version: version, Stats: s})

		fmt.Fprintf(&b, "<tr><th class=\"col1\">%s</th>", esc(version))
		fmt.Fprintf(&b, "<td class=\"column %s\">%d</td>", ClassConformant, s.Passes)
		fmt.Fprintf(&b, "<td class=\"column %s\">%d</td>", ClassPartiallyConformant, s.Partial)
		fmt.Fprintf(&b, "<td class=\"column\">%d</td>", s.FalsePositives)
		fmt.Fprintf(&b, "<td class=\"column\">%d</td></tr>\n", s.FalseNegatives)
	}

	b.WriteString("</tbody></table></div></div>\n")
	return b.String(), tools
}

func renderCell(c Classification) string {
	cell := esc(c.Label)
	detail := renderCellDetail(c)
	if detail == "" {
		return cell
	}
	return "<div class=\"hover-text\">" + cell +
		"<span class=\"tooltip-text\" id=\"bottom\" style=\"max-width: 400px; width: max-content; white-space: normal; word-wrap: break-word; overflow-wrap: break-word; text-align: left;\">" +
		detail + "</span></div>"
}

func renderCellDetail(c Classification) string {
	var b strings.Builder
	if c.Notes != "" {
		b.WriteString("<div style=\"margin-bottom: 10px;\"><strong>Notes:</strong>")
		for _, paragraph := range strings.Split(c.Notes, "\n") {
			b.WriteString("<p>")
			b.WriteString(esc(paragraph))
			b.WriteString("</p>")
		}
		b.WriteString("</div>")
	}
	if c.ErrorsDiff != "" {
		b.WriteString("<div><strong>Errors Diff:</strong><br><pre style=\"margin: 5px 0; font-size: 0.9em; white-space: pre-wrap; word-wrap: break-word; overflow-wrap: break-word;\">")
		b.WriteString(strings.ReplaceAll(esc(c.ErrorsDiff), "\n", "<br>"))
		b.WriteString("</pre></div>")
	}
	return b.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

package conformance

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/typeconf/conformance-report/internal/catalog"
)

func newStats(checkers []catalog.TypeChecker) map[string]*SummaryStats {
	stats := make(map[string]*SummaryStats, len(checkers))
	for _, tc := range checkers {
		stats[tc.Name] = &SummaryStats{}
	}
	return stats
}

func TestRenderDetailTableOmitsEmptyGroups(t *testing.T) {
	root := t.TempDir()
	checkers := []catalog.TypeChecker{{Name: "mypy"}}
	groups := []catalog.TestGroup{
		{Name: "basic", Href: "spec/basic.html"},
		{Name: "generics", Href: "spec/generics.html"},
	}
	cases := []catalog.TestCase{{Name: "basic_x1"}}

	html := renderDetailTable(root, checkers, groups, cases, newStats(checkers), &resultLoader{})
	if !strings.Contains(html, `href="spec/basic.html"`) {
		t.Fatalf("populated group heading missing:\n%s", html)
	}
	if strings.Contains(html, "generics") {
		t.Fatalf("empty group must be omitted entirely:\n%s", html)
	}
}

func TestRenderDetailTableMissingResultsAreNotConformant(t *testing.T) {
	root := t.TempDir()
	checkers := []catalog.TypeChecker{{Name: "mypy"}, {Name: "pyright"}}
	groups := []catalog.TestGroup{{Name: "basic", Href: "#basic"}}
	cases := []catalog.TestCase{{Name: "basic_x1"}}
	stats := newStats(checkers)

	html := renderDetailTable(root, checkers, groups, cases, stats, &resultLoader{})
	if got := strings.Count(html, `class="column col2 not-conformant"`); got != 2 {
		t.Fatalf("expected 2 not-conformant cells, got %d:\n%s", got, html)
	}
	if !strings.Contains(html, "Unknown (0f-/0f+)") {
		t.Fatalf("missing default unknown label:\n%s", html)
	}
	for name, s := range stats {
		if s.Passes != 0 || s.FalsePositives != 0 || s.FalseNegatives != 0 {
			t.Fatalf("missing result must contribute 0 to %s counters: %+v", name, s)
		}
		if s.Partial != 1 {
			t.Fatalf("missing result must count as partial for %s: %+v", name, s)
		}
	}
}

func TestRenderDetailTableHeaderVersionsAndCells(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "results", "mypy", "version.toml"), `version = "mypy 1.10.0"`)
	writeFixture(t, filepath.Join(root, "results", "mypy", "basic_x1.toml"), `conformant = "Pass"`)
	writeFixture(t, filepath.Join(root, "results", "mypy", "basic_x3.toml"), `conformant = "Pass"
notes = "Works with caveat"
`)

	checkers := []catalog.TypeChecker{{Name: "mypy"}, {Name: "pyright"}}
	groups := []catalog.TestGroup{{Name: "basic", Href: "#basic"}}
	cases := []catalog.TestCase{{Name: "basic_x3"}, {Name: "basic_x1"}}
	stats := newStats(checkers)

	html := renderDetailTable(root, checkers, groups, cases, stats, &resultLoader{})

	if !strings.Contains(html, `<div class="tc-name">mypy 1.10.0</div>`) {
		t.Fatalf("resolved version missing from header:\n%s", html)
	}
	if !strings.Contains(html, `<div class="tc-name">Unknown version</div>`) {
		t.Fatalf("default version missing from header:\n%s", html)
	}
	i1 := strings.Index(html, "basic_x1")
	i3 := strings.Index(html, "basic_x3")
	if i1 == -1 || i3 == -1 || i1 > i3 {
		t.Fatalf("cases not sorted lexicographically: i1=%d i3=%d", i1, i3)
	}
	if !strings.Contains(html, `class="column col2 conformant"`) {
		t.Fatalf("conformant cell missing:\n%s", html)
	}
	if !strings.Contains(html, `<div class="hover-text">Pass*`) {
		t.Fatalf("pass-with-notes cell missing asterisk tooltip:\n%s", html)
	}
	if !strings.Contains(html, "<p>Works with caveat</p>") {
		t.Fatalf("notes paragraph missing:\n%s", html)
	}
	if stats["mypy"].Passes != 2 {
		t.Fatalf("unexpected mypy stats: %+v", stats["mypy"])
	}
	if stats["pyright"].Partial != 2 {
		t.Fatalf("unexpected pyright stats: %+v", stats["pyright"])
	}
}

func TestRenderDetailTableEscapesRecordText(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "results", "mypy", "version.toml"), `version = "mypy <dev>"`)
	writeFixture(t, filepath.Join(root, "results", "mypy", "basic_x1.toml"), `conformant = "Pass"
notes = "uses <brackets> & ampersands"
`)
	checkers := []catalog.TypeChecker{{Name: "mypy"}}
	groups := []catalog.TestGroup{{Name: "basic", Href: "#basic"}}
	cases := []catalog.TestCase{{Name: "basic_x1"}}

	html := renderDetailTable(root, checkers, groups, cases, newStats(checkers), &resultLoader{})
	if !strings.Contains(html, "mypy &lt;dev&gt;") {
		t.Fatalf("version not escaped:\n%s", html)
	}
	if !strings.Contains(html, "&lt;brackets&gt; &amp; ampersands") {
		t.Fatalf("notes not escaped:\n%s", html)
	}
}

func TestRenderCellErrorsDiffUsesLineBreaks(t *testing.T) {
	c := Classify(CaseResult{
		Conformant: "Partial",
		ErrorsDiff: "line one: Expected x\nline two",
	})
	cell := renderCell(c)
	if !strings.Contains(cell, "line one: Expected x<br>line two") {
		t.Fatalf("errors diff newlines not converted:\n%s", cell)
	}
	if !strings.Contains(cell, "<strong>Errors Diff:</strong>") {
		t.Fatalf("errors diff block missing:\n%s", cell)
	}
}

func TestRenderCellWithoutDetailHasNoTooltip(t *testing.T) {
	cell := renderCell(Classify(CaseResult{Conformant: "Pass"}))
	if cell != "Pass" {
		t.Fatalf("plain pass cell must carry no tooltip markup: %q", cell)
	}
}

func TestRenderSummaryTableRowsAndColumnOrder(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "results", "mypy", "version.toml"), `version = "mypy 1.10.0"`)

	checkers := []catalog.TypeChecker{{Name: "mypy"}, {Name: "pyright"}}
	stats := map[string]*SummaryStats{
		"mypy":    {Passes: 3, Partial: 2, FalsePositives: 1, FalseNegatives: 4},
		"pyright": {},
	}

	html, tools := renderSummaryTable(root, checkers, stats, &resultLoader{})
	row := `<tr><th class="col1">mypy 1.10.0</th><td class="column conformant">3</td><td class="column partially-conformant">2</td><td class="column">1</td><td class="column">4</td></tr>`
	if !strings.Contains(html, row) {
		t.Fatalf("mypy summary row missing or out of order:\n%s", html)
	}
	if !strings.Contains(html, `<th class="col1">Unknown version</th>`) {
		t.Fatalf("default version missing from summary rows:\n%s", html)
	}
	if len(tools) != 2 || tools[0].Name != "mypy" || tools[1].Name != "pyright" {
		t.Fatalf("unexpected tool summaries: %+v", tools)
	}
	if tools[0].Version != "mypy 1.10.0" || tools[1].Version != "Unknown version" {
		t.Fatalf("unexpected tool versions: %+v", tools)
	}
	if tools[0].Stats != (SummaryStats{Passes: 3, Partial: 2, FalsePositives: 1, FalseNegatives: 4}) {
		t.Fatalf("unexpected tool stats: %+v", tools[0].Stats)
	}
}

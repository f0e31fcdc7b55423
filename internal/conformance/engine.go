package conformance

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/typeconf/conformance-report/internal/catalog"
	enginereport "github.com/typeconf/conformance-report/internal/report"
)

// Run aggregates every registered tool's per-case results under cfg.RootDir
// into results.html, plus the summary.json and checksum artifacts.
func Run(cfg Config) (Summary, error) {
	if strings.TrimSpace(cfg.RootDir) == "" {
		cfg.RootDir = "."
	}
	if strings.TrimSpace(cfg.TemplatePath) == "" {
		cfg.TemplatePath = filepath.Join(cfg.RootDir, "src", "results_template.html")
	}
	if strings.TrimSpace(cfg.OutHTMLPath) == "" {
		cfg.OutHTMLPath = filepath.Join(cfg.RootDir, "results", "results.html")
	}
	if strings.TrimSpace(cfg.OutJSONPath) == "" {
		cfg.OutJSONPath = filepath.Join(cfg.RootDir, "results", "summary.json")
	}
	if strings.TrimSpace(cfg.RunLogPath) == "" {
		cfg.RunLogPath = enginereport.DefaultRunLogPath(cfg.OutHTMLPath)
	}
	if strings.TrimSpace(cfg.ChecksumsPath) == "" {
		cfg.ChecksumsPath = enginereport.DefaultChecksumsPath(cfg.OutHTMLPath)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	log, logErr := newRunLogger(cfg.RunLogPath)
	if logErr == nil {
		defer log.close()
	}
	log.info("run.start", map[string]interface{}{
		"root":     cfg.RootDir,
		"template": cfg.TemplatePath,
		"out_html": cfg.OutHTMLPath,
		"out_json": cfg.OutJSONPath,
	})

	var trace []TraceEntry
	addTrace := func(phase, result string, details map[string]interface{}) {
		trace = append(trace, TraceEntry{
			Order:   len(trace) + 1,
			Phase:   phase,
			Result:  result,
			Details: details,
		})
	}

	groups, err := catalog.LoadGroups(filepath.Join(cfg.RootDir, "src", "test_groups.yaml"))
	if err != nil {
		log.warn("run.catalog.error", map[string]interface{}{"error": err.Error()})
		return Summary{}, err
	}
	checkers, err := catalog.LoadCheckers(filepath.Join(cfg.RootDir, "src", "type_checkers.yaml"))
	if err != nil {
		log.warn("run.catalog.error", map[string]interface{}{"error": err.Error()})
		return Summary{}, err
	}
	cases, err := catalog.DiscoverCases(filepath.Join(cfg.RootDir, "tests"))
	if err != nil {
		log.warn("run.catalog.error", map[string]interface{}{"error": err.Error()})
		return Summary{}, err
	}
	addTrace("catalog", "ok", map[string]interface{}{
		"groups":        len(groups),
		"type_checkers": len(checkers),
		"test_cases":    len(cases),
	})
	log.info("run.catalog.ok", map[string]interface{}{
		"groups":        len(groups),
		"type_checkers": len(checkers),
		"test_cases":    len(cases),
	})

	stats := make(map[string]*SummaryStats, len(checkers))
	for _, tc := range checkers {
		stats[tc.Name] = &SummaryStats{}
	}

	loader := &resultLoader{log: log}
	detailHTML := renderDetailTable(cfg.RootDir, checkers, groups, cases, stats, loader)
	addTrace("detail_table", "ok", nil)
	summaryHTML, tools := renderSummaryTable(cfg.RootDir, checkers, stats, loader)
	addTrace("summary_table", "ok", nil)

	page, err := assembleReport(cfg.TemplatePath, detailHTML, summaryHTML)
	if err != nil {
		log.warn("run.assemble.error", map[string]interface{}{"error": err.Error()})
		return Summary{}, err
	}
	addTrace("assemble", "ok", map[string]interface{}{"bytes": len(page)})

	if err := enginereport.WriteFile(cfg.OutHTMLPath, page); err != nil {
		log.warn("run.write.error", map[string]interface{}{"path": cfg.OutHTMLPath, "error": err.Error()})
		return Summary{}, err
	}
	addTrace("report_html", "ok", map[string]interface{}{"path": cfg.OutHTMLPath})
	log.info("run.report_html.ok", map[string]interface{}{"path": cfg.OutHTMLPath})

	summary := Summary{
		GeneratedAt: cfg.Now().UTC().Format(time.RFC3339),
		RootDir:     cfg.RootDir,
		Checkers:    tools,
	}

	artifacts := []string{cfg.OutHTMLPath}
	if cfg.WriteJSON {
		addTrace("report_json", "ok", map[string]interface{}{"path": cfg.OutJSONPath})
		summary.Trace = trace
		if err := enginereport.WriteJSON(cfg.OutJSONPath, summary); err != nil {
			log.warn("run.write.error", map[string]interface{}{"path": cfg.OutJSONPath, "error": err.Error()})
			return Summary{}, err
		}
		artifacts = append(artifacts, cfg.OutJSONPath)
	} else {
		summary.Trace = trace
	}

	if err := enginereport.WriteChecksums(cfg.ChecksumsPath, artifacts); err != nil {
		log.warn("run.checksums.error", map[string]interface{}{"error": err.Error()})
		return Summary{}, err
	}
	log.info("run.done", map[string]interface{}{"artifacts": len(artifacts)})
	return summary, nil
}

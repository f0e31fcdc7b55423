package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/typeconf/conformance-report/internal/conformance"
)

func main() {
	var rootDir string
	var templatePath string
	var outHTML string
	var outJSON string
	var runLogPath string
	var checksumsPath string
	var noJSON bool

	flag.StringVar(&rootDir, "root", ".", "Conformance suite root directory")
	flag.StringVar(&templatePath, "template", "", "Report template path (default <root>/src/results_template.html)")
	flag.StringVar(&outHTML, "out-html", "", "Output results.html path (default <root>/results/results.html)")
	flag.StringVar(&outJSON, "out-json", "", "Output summary.json path (default <root>/results/summary.json)")
	flag.StringVar(&runLogPath, "run-log", "", "Output run log path (default next to out-html)")
	flag.StringVar(&checksumsPath, "checksums", "", "Output checksums.sha256 path (default next to out-html)")
	flag.BoolVar(&noJSON, "no-json", false, "Disable summary.json output")
	flag.Parse()

	fmt.Println("Generating summary report")
	summary, err := conformance.Run(conformance.Config{
		RootDir:       rootDir,
		TemplatePath:  templatePath,
		OutHTMLPath:   outHTML,
		OutJSONPath:   outJSON,
		RunLogPath:    runLogPath,
		ChecksumsPath: checksumsPath,
		WriteJSON:     !noJSON,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "conformance-report error:", err)
		os.Exit(2)
	}
	for _, tc := range summary.Checkers {
		fmt.Printf("%s (%s): passes=%d partial=%d false_positives=%d false_negatives=%d\n",
			tc.Name, tc.Version, tc.Stats.Passes, tc.Stats.Partial, tc.Stats.FalsePositives, tc.Stats.FalseNegatives)
	}
}

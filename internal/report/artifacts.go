package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func DefaultRunLogPath(outHTMLPath string) string {
	if strings.TrimSpace(outHTMLPath) == "" {
		outHTMLPath = "results.html"
	}
	return filepath.Join(filepath.Dir(outHTMLPath), "conformance-report.run.log")
}

func DefaultChecksumsPath(outHTMLPath string) string {
	if strings.TrimSpace(outHTMLPath) == "" {
		outHTMLPath = "results.html"
	}
	return filepath.Join(filepath.Dir(outHTMLPath), "checksums.sha256")
}

// WriteChecksums records a SHA-256 manifest of the emitted artifacts so a
// rerun over unchanged inputs can be verified byte-for-byte out of band.
func WriteChecksums(checksumsPath string, artifactPaths []string) error {
	clean := make([]string, 0, len(artifactPaths))
	for _, p := range artifactPaths {
		if strings.TrimSpace(p) != "" {
			clean = append(clean, p)
		}
	}
	sort.Strings(clean)

	lines := make([]string, 0, len(clean))
	for _, p := range clean {
		b, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("checksum read failed for %s: %w", p, err)
		}
		sum := sha256.Sum256(b)
		lines = append(lines, fmt.Sprintf("%s  %s", hex.EncodeToString(sum[:]), filepath.Base(p)))
	}
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	return WriteFile(checksumsPath, []byte(content))
}

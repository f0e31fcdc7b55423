package conformance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type resultLoader struct {
	log *runLogger
}

// caseResult reads one per-case record. A missing or malformed file degrades
// to an empty record and never aborts the run.
func (l *resultLoader) caseResult(path string) CaseResult {
	var r CaseResult
	if !l.decode(path, &r) {
		return CaseResult{}
	}
	return r
}

// version reads one per-tool version record, defaulting the display string
// when the file or its version field is absent.
func (l *resultLoader) version(path string) string {
	var v versionInfo
	if !l.decode(path, &v) || strings.TrimSpace(v.Version) == "" {
		return unknownVersion
	}
	return v.Version
}

func (l *resultLoader) decode(path string, out interface{}) bool {
	if _, err := toml.DecodeFile(path, out); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false
		}
		fmt.Fprintf(os.Stderr, "error decoding %s: %v\n", path, err)
		l.log.warn("result.decode_error", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return false
	}
	return true
}

func versionPath(root, toolName string) string {
	return filepath.Join(root, "results", toolName, "version.toml")
}

func resultPath(root, toolName, caseName string) string {
	return filepath.Join(root, "results", toolName, caseName+".toml")
}

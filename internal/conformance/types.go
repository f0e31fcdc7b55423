package conformance

import "time"

const (
	VerdictPass    = "Pass"
	VerdictPartial = "Partial"
	VerdictUnknown = "Unknown"
)

const (
	ClassConformant          = "conformant"
	ClassPartiallyConformant = "partially-conformant"
	ClassNotConformant       = "not-conformant"
)

const (
	falseNegativeMarker = ": Expected "
	falsePositiveMarker = ": Unexpected errors"
	summaryMarker       = "{{summary}}"
	unknownVersion      = "Unknown version"
)

type Config struct {
	RootDir       string
	TemplatePath  string
	OutHTMLPath   string
	OutJSONPath   string
	RunLogPath    string
	ChecksumsPath string
	WriteJSON     bool
	Now           func() time.Time
}

// CaseResult is the raw per-case record written by a type checker run.
// Unrecognized fields are ignored; a missing record decodes to the zero value.
type CaseResult struct {
	Conformant           string `toml:"conformant"`
	ConformanceAutomated string `toml:"conformance_automated"`
	Notes                string `toml:"notes"`
	ErrorsDiff           string `toml:"errors_diff"`
}

type versionInfo struct {
	Version string `toml:"version"`
}

type SummaryStats struct {
	Passes         int `json:"passes"`
	Partial        int `json:"partial"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
}

// Classification is the fully reconciled view of one (case, tool) result.
type Classification struct {
	Label          string
	Class          string
	FalseNegatives int
	FalsePositives int
	Pass           bool
	Partial        bool
	Notes          string
	ErrorsDiff     string
}

type Summary struct {
	GeneratedAt string        `json:"generated_at"`
	RootDir     string        `json:"root_dir"`
	Checkers    []ToolSummary `json:"type_checkers"`
	Trace       []TraceEntry  `json:"trace"`
}

type ToolSummary struct {
	Name    string       `json:"name"`
	Version string       `json:"version"`
	Stats   SummaryStats `json:"stats"`
}

type TraceEntry struct {
	Order   int                    `json:"order"`
	Phase   string                 `json:"phase"`
	Result  string                 `json:"result"`
	Details map[string]interface{} `json:"details,omitempty"`
}

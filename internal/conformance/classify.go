package conformance

import (
	"fmt"
	"strings"
)

// Classify reconciles the manual and automated conformance fields of one raw
// record into a display label, a cell class, and statistics attribution. The
// manual verdict always wins; the automated verdict can only promote an unset
// ("Unknown") manual verdict to Pass.
func Classify(r CaseResult) Classification {
	notes := strings.TrimSpace(r.Notes)
	errorsDiff := strings.TrimSpace(r.ErrorsDiff)

	verdict := r.Conformant
	if verdict == "" {
		verdict = VerdictUnknown
	}
	if verdict == VerdictUnknown && r.ConformanceAutomated == VerdictPass {
		verdict = VerdictPass
	}

	falseNegatives, falsePositives := diffCounts(errorsDiff)

	c := Classification{
		Class:          classFor(verdict),
		FalseNegatives: falseNegatives,
		FalsePositives: falsePositives,
		Pass:           verdict == VerdictPass,
		Partial:        verdict == VerdictPartial || verdict == VerdictUnknown,
		Notes:          notes,
		ErrorsDiff:     errorsDiff,
	}

	switch {
	case verdict == VerdictPass && notes != "":
		// The asterisk signals that reviewer notes are attached.
		c.Label = "Pass*"
	case verdict == VerdictUnknown:
		c.Label = fmt.Sprintf("Unknown (%df-/%df+)", falseNegatives, falsePositives)
	default:
		c.Label = verdict
	}
	return c
}

// diffCounts scans the errors diff line by line. A false negative is an error
// the specification expects but the tool missed; a false positive is an error
// the tool reported that the specification does not expect.
func diffCounts(errorsDiff string) (falseNegatives, falsePositives int) {
	if errorsDiff == "" {
		return 0, 0
	}
	for _, line := range strings.Split(errorsDiff, "\n") {
		if strings.Contains(line, falseNegativeMarker) {
			falseNegatives++
		}
		if strings.Contains(line, falsePositiveMarker) {
			falsePositives++
		}
	}
	return falseNegatives, falsePositives
}

func classFor(verdict string) string {
	switch verdict {
	case VerdictPass:
		return ClassConformant
	case VerdictPartial:
		return ClassPartiallyConformant
	default:
		return ClassNotConformant
	}
}

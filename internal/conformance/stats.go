package conformance

// Add applies the attribution rule for one classified (case, tool) result:
// an effective Pass counts toward passes, an effective Partial or Unknown
// toward partial, and the diff-derived counters accumulate unconditionally.
func (s *SummaryStats) Add(c Classification) {
	switch {
	case c.Pass:
		s.Passes++
	case c.Partial:
		s.Partial++
	}
	s.FalsePositives += c.FalsePositives
	s.FalseNegatives += c.FalseNegatives
}

package conformance

import enginereport "github.com/typeconf/conformance-report/internal/report"

// runLogger is a nil-safe wrapper so the pipeline can run (and be tested)
// without a log destination.
type runLogger struct {
	delegate *enginereport.RunLog
}

func newRunLogger(path string) (*runLogger, error) {
	l, err := enginereport.OpenRunLog(path)
	if err != nil {
		return nil, err
	}
	return &runLogger{delegate: l}, nil
}

func (l *runLogger) close() {
	if l == nil || l.delegate == nil {
		return
	}
	l.delegate.Close()
}

func (l *runLogger) info(event string, fields map[string]interface{}) {
	if l == nil || l.delegate == nil {
		return
	}
	l.delegate.Info(event, fields)
}

func (l *runLogger) warn(event string, fields map[string]interface{}) {
	if l == nil || l.delegate == nil {
		return
	}
	l.delegate.Warn(event, fields)
}

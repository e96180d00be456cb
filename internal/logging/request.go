package logging

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger records the lifecycle of one tool invocation.
type RequestLogger interface {
	Start(subject string)
	Log(msg string)
	Error(err error)
	Complete()
}

type requestLogger struct {
	entry   *logrus.Entry
	started time.Time
}

// NewRequestLogger binds entry to a correlation id and tool name.
func NewRequestLogger(entry *logrus.Entry, requestID, tool string) RequestLogger {
	return &requestLogger{
		entry: entry.WithFields(logrus.Fields{
			"request_id": requestID,
			"tool":       tool,
		}),
	}
}

func (l *requestLogger) Start(subject string) {
	l.started = time.Now()
	l.entry.WithField("subject", subject).Info("request started")
}

func (l *requestLogger) Log(msg string) {
	l.entry.Debug(msg)
}

func (l *requestLogger) Error(err error) {
	l.entry.WithError(err).WithField("elapsed", time.Since(l.started).String()).Error("request failed")
}

func (l *requestLogger) Complete() {
	l.entry.WithField("elapsed", time.Since(l.started).String()).Info("request completed")
}

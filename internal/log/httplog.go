package log

import (
	"time"
)

// HTTPLogEntry represents an HTTP request/response log entry
type HTTPLogEntry struct {
	Timestamp  time.Time     `json:"timestamp"`
	RequestID  string        `json:"request_id,omitempty"`
	Method     string        `json:"method"`
	Path       string        `json:"path"`
	Status     int           `json:"status"`
	Duration   time.Duration `json:"duration"`
	Size       int           `json:"size"`
	RemoteAddr string        `json:"remote_addr"`
	UserAgent  string        `json:"user_agent"`
	Error      string        `json:"error,omitempty"`
}

// Fields returns the entry as zap key/value pairs
func (e HTTPLogEntry) Fields() []any {
	fields := []any{
		"method", e.Method,
		"path", e.Path,
		"status", e.Status,
		"duration_ms", e.Duration.Milliseconds(),
		"size", e.Size,
		"remote_addr", e.RemoteAddr,
		"user_agent", e.UserAgent,
	}
	if e.RequestID != "" {
		fields = append(fields, "request_id", e.RequestID)
	}
	if e.Error != "" {
		fields = append(fields, "error", e.Error)
	}
	return fields
}

// LogHTTPRequest writes an access log line. Server errors are logged at
// error level, everything else at info.
func LogHTTPRequest(e HTTPLogEntry) {
	l := GetSugaredLogger()
	if e.Status >= 500 {
		l.Errorw("http request", e.Fields()...)
		return
	}
	l.Infow("http request", e.Fields()...)
}

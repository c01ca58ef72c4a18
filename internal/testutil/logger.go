package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// RecordingHandler is a slog.Handler that keeps every record it receives.
// Wrap it with slog.New to capture a component's log output in a test.
type RecordingHandler struct {
	mu      *sync.Mutex
	records *[]slog.Record
	attrs   []slog.Attr
}

// NewRecordingHandler creates an empty RecordingHandler.
func NewRecordingHandler() *RecordingHandler {
	return &RecordingHandler{mu: &sync.Mutex{}, records: &[]slog.Record{}}
}

// Enabled implements slog.Handler. Every level is recorded.
func (h *RecordingHandler) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (h *RecordingHandler) Handle(_ context.Context, r slog.Record) error {
	r = r.Clone()
	r.AddAttrs(h.attrs...)
	h.mu.Lock()
	defer h.mu.Unlock()
	*h.records = append(*h.records, r)
	return nil
}

// WithAttrs implements slog.Handler. Derived handlers share the record list.
func (h *RecordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RecordingHandler{
		mu:      h.mu,
		records: h.records,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

// WithGroup implements slog.Handler. Groups are ignored.
func (h *RecordingHandler) WithGroup(string) slog.Handler { return h }

// Messages returns the messages logged at level, in order.
func (h *RecordingHandler) Messages(level slog.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, r := range *h.records {
		if r.Level == level {
			out = append(out, r.Message)
		}
	}
	return out
}

// Attr returns the value of key on the first record with message msg.
func (h *RecordingHandler) Attr(msg, key string) (slog.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range *h.records {
		if r.Message != msg {
			continue
		}
		var (
			v     slog.Value
			found bool
		)
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				v, found = a.Value, true
				return false
			}
			return true
		})
		if found {
			return v, true
		}
	}
	return slog.Value{}, false
}

// Len returns the number of records.
func (h *RecordingHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(*h.records)
}

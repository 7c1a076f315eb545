package llm

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	Task         Task
	Model        string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorCode    string
}

// Observer receives events about generation calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer, one line per call.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] gen_call task=%s model=%s latency_ms=%d in_tok=%d out_tok=%d status=%s\n",
		ts, event.Task, event.Model, event.LatencyMs, event.InputTokens, event.OutputTokens, status)
}

// ZapObserver forwards call events to a zap logger. Used by the server.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an Observer backed by log.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
		zap.Int("input_tokens", event.InputTokens),
		zap.Int("output_tokens", event.OutputTokens),
	}
	if event.Success {
		o.log.Info("gen_call", fields...)
		return
	}
	o.log.Warn("gen_call_failed", append(fields, zap.String("error_code", event.ErrorCode))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

package logging

import "context"

type LogEntry struct {
	Key   string
	Value interface{}
}

func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

// ErrorReporter is implemented by loggers that also forward errors to an external tracker.
type ErrorReporter interface {
	ReportError(ctx context.Context, err error)
}

func Error(ctx context.Context, log Logger, err error, entries ...LogEntry) {
	if reporter, ok := log.(ErrorReporter); ok {
		reporter.ReportError(ctx, err)
	}
	entries = append(entries, Entry("err", err))
	log.Error(ctx, "Unexpected error occurred.", entries...)
}

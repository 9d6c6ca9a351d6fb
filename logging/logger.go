// Copyright 2021 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Log returns a log entry for code that runs outside any request.
func Log() *log.Entry {
	return log.NewEntry(log.StandardLogger())
}

// Logc returns a log entry carrying the request fields found in ctx.
func Logc(ctx context.Context) *log.Entry {
	if ctx == nil {
		ctx = context.Background()
	}
	entry := log.WithFields(log.Fields{
		"requestID":     ctx.Value(ContextKeyRequestID),
		"requestSource": ctx.Value(ContextKeyRequestSource),
	})

	if val := ctx.Value(ContextKeySVM); val != nil {
		entry = entry.WithField(string(ContextKeySVM), val)
	}

	return entry
}

// Logd returns a request-scoped entry for method tracing. When traceEnabled is false, Trace and
// Debug calls on the entry are dropped.
func Logd(ctx context.Context, driverName string, traceEnabled bool) *log.Entry {
	entry := Logc(ctx).WithField("driver", driverName)
	if !traceEnabled {
		entry.Logger = quietLogger(entry.Logger)
	}
	return entry
}

// quietLogger clones the logger's output settings with trace and debug disabled.
func quietLogger(base *log.Logger) *log.Logger {
	quiet := &log.Logger{
		Out:          base.Out,
		Hooks:        base.Hooks,
		Formatter:    base.Formatter,
		ReportCaller: base.ReportCaller,
		Level:        base.GetLevel(),
		ExitFunc:     base.ExitFunc,
	}
	if quiet.Level > log.InfoLevel {
		quiet.Level = log.InfoLevel
	}
	return quiet
}

func GenerateRequestContext(ctx context.Context, requestID, requestSource string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	} else {
		if v := ctx.Value(ContextKeyRequestID); v != nil {
			requestID = fmt.Sprint(v)
		}
		if v := ctx.Value(ContextKeyRequestSource); v != nil {
			requestSource = fmt.Sprint(v)
		}
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if requestSource == "" {
		requestSource = "Unknown"
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, ContextKeyRequestSource, requestSource)
	return ctx
}

// WithSVM tags ctx so that every entry logged through Logc names the SVM being acted on.
func WithSVM(ctx context.Context, svm string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ContextKeySVM, svm)
}

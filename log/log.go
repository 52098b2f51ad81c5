//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package log provides the package-level logger used across the repo.
//
// The default logger writes console-encoded lines to stderr at Info
// level. Hosts embedding the tools can swap it with SetLogger.
package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = newDefault(zapcore.InfoLevel)
)

func newDefault(level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// The static config above cannot fail to build; fall back
		// to a no-op logger rather than panicking in package init.
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetLogger replaces the package-level logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	logger = l.Sugar().WithOptions(zap.AddCallerSkip(1))
}

// SetLevel rebuilds the default logger at the given level.
func SetLevel(level zapcore.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = newDefault(level)
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debugf logs a formatted message at Debug level.
func Debugf(format string, args ...any) {
	current().Debugf(format, args...)
}

// Infof logs a formatted message at Info level.
func Infof(format string, args ...any) {
	current().Infof(format, args...)
}

// Warnf logs a formatted message at Warn level.
func Warnf(format string, args ...any) {
	current().Warnf(format, args...)
}

// Errorf logs a formatted message at Error level.
func Errorf(format string, args ...any) {
	current().Errorf(format, args...)
}

// Fatalf logs a formatted message at Fatal level and exits.
func Fatalf(format string, args ...any) {
	current().Fatalf(format, args...)
}

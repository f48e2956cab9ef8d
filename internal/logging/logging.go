// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package logging defines the logger the handle facade reports
// through, without tying the core library to a particular backend.
package logging

import "github.com/aristanetworks/glog"

// Logger is an interface to pass a generic logger without depending on
// either golang/glog or aristanetworks/glog.
type Logger interface {
	// Info logs at the info level
	Info(args ...interface{})
	// Infof logs at the info level, with format
	Infof(format string, args ...interface{})
	// Error logs at the error level
	Error(args ...interface{})
	// Errorf logs at the error level, with format
	Errorf(format string, args ...interface{})
	// Fatal logs at the fatal level
	Fatal(args ...interface{})
	// Fatalf logs at the fatal level, with format
	Fatalf(format string, args ...interface{})
}

// Glog implements Logger on top of aristanetworks/glog.
type Glog struct {
	// default value of glog.Level is 0
	InfoLevel glog.Level
}

// Info logs at the info level
func (g *Glog) Info(args ...interface{}) {
	glog.V(g.InfoLevel).Info(args...)
}

// Infof logs at the info level, with format
func (g *Glog) Infof(format string, args ...interface{}) {
	glog.V(g.InfoLevel).Infof(format, args...)
}

// Error logs at the error level
func (g *Glog) Error(args ...interface{}) {
	glog.Error(args...)
}

// Errorf logs at the error level, with format
func (g *Glog) Errorf(format string, args ...interface{}) {
	glog.Errorf(format, args...)
}

// Fatal logs at the fatal level
func (g *Glog) Fatal(args ...interface{}) {
	glog.Fatal(args...)
}

// Fatalf logs at the fatal level, with format
func (g *Glog) Fatalf(format string, args ...interface{}) {
	glog.Fatalf(format, args...)
}

// Discard is a Logger that drops everything except Fatal, which still
// terminates through glog so that a misconfigured caller cannot
// silently continue past a fatal condition.
type Discard struct{}

// Info drops its arguments.
func (Discard) Info(args ...interface{}) {}

// Infof drops its arguments.
func (Discard) Infof(format string, args ...interface{}) {}

// Error drops its arguments.
func (Discard) Error(args ...interface{}) {}

// Errorf drops its arguments.
func (Discard) Errorf(format string, args ...interface{}) {}

// Fatal logs at the fatal level.
func (Discard) Fatal(args ...interface{}) {
	glog.Fatal(args...)
}

// Fatalf logs at the fatal level, with format.
func (Discard) Fatalf(format string, args ...interface{}) {
	glog.Fatalf(format, args...)
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs a non-nil error at error level, with the calling function
// and position as the "caller" attribute, and returns it unchanged:
//
//	return errors.Log(w.Frame(ctx, dt))
func Log(err error) error {
	if err != nil {
		logError(err)
	}
	return err
}

// Log1 is [Log] for calls returning a value and an error; it returns
// the value either way:
//
//	face := errors.Log1(opentype.NewFace(f, opts))
func Log1[T any](v T, err error) T {
	if err != nil {
		logError(err)
	}
	return v
}

// Must panics on a non-nil error. It is only for setup code whose
// failure is a programmer error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Ignore1 drops the error of a call returning a value and an error.
func Ignore1[T any](v T, err error) T {
	return v
}

// logError logs err as coming from the caller of Log or Log1.
func logError(err error) {
	pc, file, line, _ := runtime.Caller(2)
	caller := file + ":" + strconv.Itoa(line)
	if fn := runtime.FuncForPC(pc); fn != nil {
		caller = fn.Name() + " " + caller
	}
	slog.Error(err.Error(), "caller", caller)
}

// The following re-export the standard library errors package,
// so that this package can be used as a drop-in replacement.

// New returns an error that formats as the given text.
func New(text string) error { return errors.New(text) }

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// Join returns an error that wraps the given errors.
func Join(errs ...error) error { return errors.Join(errs...) }

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error { return errors.Unwrap(err) }

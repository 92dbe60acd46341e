// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and the default
// structured log handler used by the scene2d tools and systems.
package logx

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the minimum level of messages shown to the user, usually
// chosen with the -v, --vv and -q flags of the scene2d command. Its
// default depends on build tags: debug builds show everything, release
// builds only errors, and other builds warnings and errors.
var UserLevel = defaultUserLevel

// LevelFromFlags maps the verbosity flags to a level: vv gives
// [slog.LevelDebug], v gives [slog.LevelInfo] and q gives
// [slog.LevelError], checked in that order, and no flag gives
// [slog.LevelWarn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString parses a level name as written in configuration
// files: debug, info, warn (or warning) and error, in any case. It
// returns false and [UserLevel] for other names.
func LevelFromString(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return UserLevel, false
}

// SetDefault sets [UserLevel] to the given level and installs a text
// handler writing to w (stderr if nil) as the default slog logger.
func SetDefault(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	UserLevel = level
	lg := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(lg)
	return lg
}

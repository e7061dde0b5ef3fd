// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drm

import (
	"log/slog"

	"github.com/gogpu/canvas"
)

// Option configures validation in New.
//
// Example:
//
//	table := drm.DefaultFormats().With(myEntry)
//	l, err := drm.New(&cmd, drm.WithFormats(table))
type Option func(*options)

type options struct {
	formats *FormatTable
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		formats: DefaultFormats(),
		logger:  canvas.Logger(),
	}
}

// WithFormats validates against table instead of DefaultFormats.
// A nil table keeps the default.
func WithFormats(table *FormatTable) Option {
	return func(o *options) {
		if table != nil {
			o.formats = table
		}
	}
}

// WithLogger sets the logger that receives rejection diagnostics. A nil
// logger keeps the package logger from canvas.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

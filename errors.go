// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewembed

import "errors"

// Errors.
var (
	// ErrClosed is returned by SubmitFrame after Close.
	ErrClosed = errors.New("viewembed: embedder is closed")

	// ErrNilFrame is returned by SubmitFrame when no main frame is given.
	ErrNilFrame = errors.New("viewembed: nil frame")
)

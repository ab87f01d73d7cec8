// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package threadmerge implements a lease-based render/platform thread
// merger.
//
// While merged, render work runs on the platform thread. A merge holds a
// lease counted in frames; the frame loop calls DecrementLease once per
// frame and the threads split again when the lease runs out. Extending a
// lease never shortens it.
package threadmerge

import (
	"sync"

	"github.com/gogpu/viewembed"
)

// Merger tracks whether the render and platform threads are merged.
//
// Merger is safe for concurrent use.
type Merger struct {
	mu     sync.Mutex
	merged bool
	lease  int

	onPlatformThread func() bool
}

// New returns an unmerged Merger. onPlatformThread reports whether the
// calling goroutine is the platform thread; nil means never.
func New(onPlatformThread func() bool) *Merger {
	if onPlatformThread == nil {
		onPlatformThread = func() bool { return false }
	}
	return &Merger{onPlatformThread: onPlatformThread}
}

// IsMerged reports whether the threads are merged.
func (m *Merger) IsMerged() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.merged
}

// IsOnPlatformThread reports whether the caller runs on the platform
// thread. While merged, render work always does.
func (m *Merger) IsOnPlatformThread() bool {
	if m.IsMerged() {
		return true
	}
	return m.onPlatformThread()
}

// MergeWithLease merges the threads for the next frames frames.
// Non-positive values are ignored.
func (m *Merger) MergeWithLease(frames int) {
	if frames <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.merged {
		viewembed.Logger().Info("threadmerge: merged", "lease", frames)
	}
	m.merged = true
	m.lease = frames
}

// ExtendLeaseTo raises the remaining lease to frames. It has no effect when
// the threads are not merged or the lease is already at least that long.
func (m *Merger) ExtendLeaseTo(frames int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.merged && frames > m.lease {
		m.lease = frames
	}
}

// DecrementLease consumes one frame of the lease and unmerges when it runs
// out. It reports whether this call unmerged the threads.
func (m *Merger) DecrementLease() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.merged {
		return false
	}
	m.lease--
	if m.lease > 0 {
		return false
	}
	m.merged = false
	m.lease = 0
	viewembed.Logger().Info("threadmerge: unmerged")
	return true
}

// Lease returns the number of frames left on the current lease.
func (m *Merger) Lease() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lease
}

var _ viewembed.ThreadMerger = (*Merger)(nil)

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package threadmerge

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsUnmerged(t *testing.T) {
	m := New(nil)
	assert.False(t, m.IsMerged())
	assert.False(t, m.IsOnPlatformThread())
	assert.Equal(t, 0, m.Lease())
	assert.False(t, m.DecrementLease())
}

func TestMergeWithLease(t *testing.T) {
	m := New(nil)
	m.MergeWithLease(0)
	assert.False(t, m.IsMerged(), "non-positive lease is ignored")

	m.MergeWithLease(3)
	assert.True(t, m.IsMerged())
	assert.True(t, m.IsOnPlatformThread(), "merged render work runs on the platform thread")
	assert.Equal(t, 3, m.Lease())

	assert.False(t, m.DecrementLease())
	assert.False(t, m.DecrementLease())
	assert.True(t, m.DecrementLease())
	assert.False(t, m.IsMerged())
	assert.Equal(t, 0, m.Lease())
}

func TestExtendLeaseNeverShortens(t *testing.T) {
	m := New(nil)
	m.ExtendLeaseTo(5)
	assert.Equal(t, 0, m.Lease(), "no effect while unmerged")

	m.MergeWithLease(2)
	m.ExtendLeaseTo(5)
	assert.Equal(t, 5, m.Lease())
	m.ExtendLeaseTo(1)
	assert.Equal(t, 5, m.Lease())
}

func TestIsOnPlatformThread(t *testing.T) {
	onPlatform := true
	m := New(func() bool { return onPlatform })
	assert.True(t, m.IsOnPlatformThread())
	onPlatform = false
	assert.False(t, m.IsOnPlatformThread())
}

func TestMergerConcurrentAccess(t *testing.T) {
	m := New(nil)
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.MergeWithLease(10)
			m.ExtendLeaseTo(20)
		}()
		go func() {
			defer wg.Done()
			_ = m.DecrementLease()
			_ = m.IsOnPlatformThread()
		}()
	}
	wg.Wait()
	assert.GreaterOrEqual(t, m.Lease(), 0)
}

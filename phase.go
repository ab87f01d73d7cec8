// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewembed

import "fmt"

// Phase is the lifecycle state of the current frame.
type Phase uint8

// Frame phases.
const (
	// PhaseIdle is the state before BeginFrame and after Reset.
	PhaseIdle Phase = iota

	// PhaseRecording accepts prerolls and drawing into view recordings.
	PhaseRecording

	// PhaseCompositing is entered once PostPrerollAction lets the frame
	// proceed.
	PhaseCompositing

	// PhaseSubmitting is the state while SubmitFrame runs.
	PhaseSubmitting

	// PhaseDone is entered when SubmitFrame succeeds. A failed submit
	// stays in PhaseSubmitting.
	PhaseDone

	// PhasePendingResubmit means the frame was cancelled and must be redone
	// after the threads merge. It lasts until EndFrame requests the merge.
	PhasePendingResubmit
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRecording:
		return "Recording"
	case PhaseCompositing:
		return "Compositing"
	case PhaseSubmitting:
		return "Submitting"
	case PhaseDone:
		return "Done"
	case PhasePendingResubmit:
		return "PendingResubmit"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// PostPrerollResult tells the caller how to continue after the preroll
// calls of a frame.
type PostPrerollResult uint8

const (
	// Success means the frame can be composited and submitted.
	Success PostPrerollResult = iota

	// ResubmitFrame means the frame was cancelled and must be redone once
	// the render and platform threads are merged.
	ResubmitFrame
)

// String returns the result name.
func (r PostPrerollResult) String() string {
	switch r {
	case Success:
		return "Success"
	case ResubmitFrame:
		return "ResubmitFrame"
	default:
		return fmt.Sprintf("PostPrerollResult(%d)", r)
	}
}

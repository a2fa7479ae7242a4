package domain

// DialogueState is the full tracked context of one conversation session:
// four independent frames, each decaying over turns. Subject, role and
// intent are only meaningful relative to the current domain; a confirmed
// domain change must wipe them via ResetDependents so no stale
// cross-domain context leaks into the new topic.
//
// A DialogueState is owned by exactly one session and is not safe for
// concurrent use; the hosting layer serializes turns against it.
type DialogueState struct {
	Domain  ContextFrame `json:"domain"`
	Subject ContextFrame `json:"subject"`
	Role    ContextFrame `json:"role"`
	Intent  ContextFrame `json:"intent"`
}

// NewDialogueState returns an all-empty state, as at session start.
func NewDialogueState() *DialogueState {
	return &DialogueState{}
}

// DecayAll erodes every frame once. Frames are independent, so order
// does not matter.
func (s *DialogueState) DecayAll() {
	s.Domain.Decay(DefaultDecayFactor)
	s.Subject.Decay(DefaultDecayFactor)
	s.Role.Decay(DefaultDecayFactor)
	s.Intent.Decay(DefaultDecayFactor)
}

// ResetDependents replaces subject, role and intent with fresh empty
// frames. The domain frame is untouched. Called exclusively on a
// confirmed topic change.
func (s *DialogueState) ResetDependents() {
	s.Subject = ContextFrame{}
	s.Role = ContextFrame{}
	s.Intent = ContextFrame{}
}

// FrameSnapshot is a read-only copy of one frame for display or logging.
type FrameSnapshot struct {
	Value      string  `json:"value,omitempty"`
	Confidence float64 `json:"confidence"`
}

// StateSnapshot is an immutable, serializable copy of all four frames.
type StateSnapshot struct {
	Domain  FrameSnapshot `json:"domain"`
	Subject FrameSnapshot `json:"subject"`
	Role    FrameSnapshot `json:"role"`
	Intent  FrameSnapshot `json:"intent"`
}

// Snapshot returns a defensive copy of the state. Mutating the returned
// value never affects the live frames.
func (s *DialogueState) Snapshot() StateSnapshot {
	return StateSnapshot{
		Domain:  FrameSnapshot{Value: s.Domain.Value, Confidence: s.Domain.Confidence},
		Subject: FrameSnapshot{Value: s.Subject.Value, Confidence: s.Subject.Confidence},
		Role:    FrameSnapshot{Value: s.Role.Value, Confidence: s.Role.Confidence},
		Intent:  FrameSnapshot{Value: s.Intent.Value, Confidence: s.Intent.Confidence},
	}
}

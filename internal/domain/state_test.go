package domain

import "testing"

func populatedState() *DialogueState {
	s := NewDialogueState()
	s.Domain.Assign("Politics")
	s.Subject.Assign("India")
	s.Role.Assign("Prime Minister")
	s.Intent.Assign("who")
	return s
}

func TestDialogueState_ResetDependentsKeepsDomain(t *testing.T) {
	s := populatedState()
	s.ResetDependents()

	if s.Domain.Value != "Politics" || s.Domain.Confidence != 1.0 {
		t.Fatalf("domain touched by reset: %+v", s.Domain)
	}
	for name, f := range map[string]ContextFrame{
		"subject": s.Subject,
		"role":    s.Role,
		"intent":  s.Intent,
	} {
		if f.Value != "" || f.Confidence != 0 {
			t.Fatalf("%s not reset: %+v", name, f)
		}
	}
}

func TestDialogueState_DecayAllTouchesEveryFrame(t *testing.T) {
	s := populatedState()
	s.DecayAll()

	for name, f := range map[string]ContextFrame{
		"domain":  s.Domain,
		"subject": s.Subject,
		"role":    s.Role,
		"intent":  s.Intent,
	} {
		if f.Confidence != DefaultDecayFactor {
			t.Fatalf("%s confidence = %v, want %v", name, f.Confidence, DefaultDecayFactor)
		}
	}
}

func TestDialogueState_SnapshotIsDefensiveCopy(t *testing.T) {
	s := populatedState()
	snap := s.Snapshot()

	snap.Domain.Value = "Sports"
	snap.Subject.Confidence = 0

	if s.Domain.Value != "Politics" {
		t.Fatalf("snapshot mutation leaked into live domain frame")
	}
	if s.Subject.Confidence != 1.0 {
		t.Fatalf("snapshot mutation leaked into live subject frame")
	}

	// Live mutation must not retroactively change an earlier snapshot.
	s.Role.Assign("Captain")
	if snap.Role.Value != "Prime Minister" {
		t.Fatalf("live mutation leaked into snapshot")
	}
}

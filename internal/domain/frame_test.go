package domain

import (
	"math"
	"testing"
)

func TestContextFrame_DecayGeometric(t *testing.T) {
	f := ContextFrame{}
	f.Assign("India")

	for n := 1; n <= 20; n++ {
		f.Decay(DefaultDecayFactor)

		want := math.Pow(DefaultDecayFactor, float64(n))
		if math.Abs(f.Confidence-want) > 1e-9 {
			t.Fatalf("after %d decays confidence = %v, want %v", n, f.Confidence, want)
		}

		if want < ForgetThreshold {
			if f.Value != "" {
				t.Fatalf("after %d decays value = %q, want cleared", n, f.Value)
			}
		} else if f.Value != "India" {
			t.Fatalf("after %d decays value = %q, want retained", n, f.Value)
		}
	}
}

func TestContextFrame_ValueStaysClearedUntilReassigned(t *testing.T) {
	f := ContextFrame{Value: "Sports", Confidence: 0.21}

	f.Decay(DefaultDecayFactor)
	if f.Value != "" {
		t.Fatalf("value = %q, want cleared below threshold", f.Value)
	}

	f.Decay(DefaultDecayFactor)
	if f.Value != "" {
		t.Fatalf("value resurrected without assignment: %q", f.Value)
	}

	f.Assign("Politics")
	if f.Value != "Politics" || f.Confidence != 1.0 {
		t.Fatalf("assign gave (%q, %v), want (Politics, 1.0)", f.Value, f.Confidence)
	}
}

func TestContextFrame_EmptyFrameDecayIsHarmless(t *testing.T) {
	f := ContextFrame{}
	f.Decay(DefaultDecayFactor)
	if f.Value != "" || f.Confidence != 0 {
		t.Fatalf("empty frame changed by decay: %+v", f)
	}
}

package domain

const (
	// DefaultDecayFactor is applied to every frame once per turn.
	DefaultDecayFactor = 0.85
	// ForgetThreshold is the confidence below which a frame's value is dropped.
	ForgetThreshold = 0.2
)

// ContextFrame is a single decaying belief slot: the currently believed
// value for one aspect of conversational context, plus how much that
// belief is still trusted. An empty value means the slot holds nothing.
type ContextFrame struct {
	Value      string  `json:"value,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Decay erodes confidence by the given factor. Once confidence falls
// below ForgetThreshold the value is force-cleared: stale context is
// forgotten rather than reported at near-zero trust.
func (f *ContextFrame) Decay(factor float64) {
	f.Confidence *= factor
	if f.Confidence < ForgetThreshold {
		f.Value = ""
	}
}

// Assign replaces the slot content with fresh evidence at full confidence.
func (f *ContextFrame) Assign(value string) {
	f.Value = value
	f.Confidence = 1.0
}

// Held reports whether the frame currently holds a value.
func (f *ContextFrame) Held() bool {
	return f.Value != ""
}

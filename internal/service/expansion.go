package service

import (
	"fmt"
	"strings"

	"github.com/Harshitk-cp/ellipsis/internal/detect"
	"github.com/Harshitk-cp/ellipsis/internal/domain"
)

// Clarification notes returned when an expansion cannot be completed.
// These are user-facing strings, not errors: the next turn recovers.
const (
	NoteNotEnoughContext = "clarify: not enough context"
	NoteWhatExactly      = "clarify: what exactly do you mean?"
	NoteWhoseDuties      = "clarify: whose duties?"
	NoteCannotInfer      = "clarify: cannot infer expansion"
)

// ExpansionService rewrites an elliptical continuation into a fully
// explicit question using the remembered frames. It is a pure read of
// (text, state, act): it never mutates state, and identical inputs yield
// identical output.
type ExpansionService struct {
	countries []string
}

func NewExpansionService(countries []string) *ExpansionService {
	return &ExpansionService{countries: countries}
}

// Expand returns (expandedText, clarificationNote); at most one is
// non-empty. Non-continuation acts need no expansion.
func (s *ExpansionService) Expand(text string, state *domain.DialogueState, act domain.DialogueAct) (string, string) {
	if act != domain.ActContextualContinuation {
		return "", ""
	}

	if !state.Role.Held() && !state.Subject.Held() {
		return "", NoteNotEnoughContext
	}

	t := strings.ToLower(text)

	// "what about X" pivots the subject without repeating the role.
	if strings.Contains(t, "what about") {
		if newSubject := detect.Subject(text, s.countries); newSubject != "" {
			if state.Role.Held() {
				return fmt.Sprintf("Who is the %s of %s?", state.Role.Value, newSubject), ""
			}
			return fmt.Sprintf("Tell me more about %s.", newSubject), ""
		}

		if state.Role.Held() && state.Subject.Held() {
			return fmt.Sprintf("Who is the %s of %s?", state.Role.Value, state.Subject.Value), ""
		}
		return "", NoteWhatExactly
	}

	if strings.Contains(t, "duties") || strings.Contains(t, "responsibilities") {
		if state.Role.Held() && state.Subject.Held() {
			return fmt.Sprintf("What are the duties of the %s of %s?", state.Role.Value, state.Subject.Value), ""
		}
		return "", NoteWhoseDuties
	}

	if state.Role.Held() && state.Subject.Held() {
		return fmt.Sprintf("Tell me more about the %s of %s.", state.Role.Value, state.Subject.Value), ""
	}
	return "", NoteCannotInfer
}

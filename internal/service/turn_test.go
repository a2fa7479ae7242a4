package service

import (
	"context"
	"testing"

	"github.com/Harshitk-cp/ellipsis/internal/classifier"
	"github.com/Harshitk-cp/ellipsis/internal/detect"
	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/Harshitk-cp/ellipsis/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestTurnService() *TurnService {
	logger := zap.NewNop()
	tracker := NewTrackerService(classifier.NewRulesClassifier(), detect.DefaultCountries, logger)
	expander := NewExpansionService(detect.DefaultCountries)
	answerer := NewKnowledgeAnswerer(store.NewStaticKnowledgeStore(), logger)
	return NewTurnService(tracker, expander, answerer, logger)
}

func TestProcessTurn_FreshQuery(t *testing.T) {
	svc := newTestTurnService()
	state := domain.NewDialogueState()

	result := svc.ProcessTurn(context.Background(), "Who is the Prime Minister of India?", state)

	assert.Equal(t, domain.ActFreshQuery, result.Act)
	assert.Empty(t, result.ExpandedText)
	assert.Empty(t, result.ClarificationNote)
	assert.Equal(t, "Politics", result.TopicDomain)
	assert.Equal(t, "India", result.TopicSubject)
	assert.Equal(t, "Politics", state.Domain.Value)
	assert.Equal(t, "Prime Minister", state.Role.Value)
	assert.Equal(t, "India", state.Subject.Value)
	assert.Equal(t, "who", state.Intent.Value)
	assert.Equal(t, "Narendra Modi is the Prime Minister of India.", result.Answer)
}

func TestProcessTurn_SubjectPivotContinuation(t *testing.T) {
	svc := newTestTurnService()
	state := domain.NewDialogueState()

	svc.ProcessTurn(context.Background(), "Who is the Prime Minister of India?", state)
	result := svc.ProcessTurn(context.Background(), "what about the UK?", state)

	assert.Equal(t, domain.ActContextualContinuation, result.Act)
	assert.Equal(t, "Who is the Prime Minister of Uk?", result.ExpandedText)
	assert.Empty(t, result.ClarificationNote)
	assert.Equal(t, "Politics", result.TopicDomain)
	assert.Equal(t, "Uk", result.TopicSubject)
	assert.Equal(t, "Keir Starmer is the Prime Minister of the UK.", result.Answer)
}

func TestProcessTurn_PronounDutiesContinuation(t *testing.T) {
	svc := newTestTurnService()
	state := domain.NewDialogueState()

	svc.ProcessTurn(context.Background(), "Who is the Prime Minister of India?", state)
	result := svc.ProcessTurn(context.Background(), "his duties?", state)

	assert.Equal(t, domain.ActContextualContinuation, result.Act)
	assert.Equal(t, "What are the duties of the Prime Minister of India?", result.ExpandedText)
	assert.Empty(t, result.ClarificationNote)
	assert.Equal(t, "Politics", result.TopicDomain)
	assert.Equal(t, "India", result.TopicSubject)
}

func TestProcessTurn_ContinuationWithoutContext(t *testing.T) {
	svc := newTestTurnService()
	state := domain.NewDialogueState()

	result := svc.ProcessTurn(context.Background(), "what about that?", state)

	assert.Equal(t, domain.ActContextualContinuation, result.Act)
	assert.Empty(t, result.ExpandedText)
	assert.Equal(t, NoteNotEnoughContext, result.ClarificationNote)
	assert.Equal(t, domain.GeneralDomain, result.TopicDomain)
	assert.Equal(t, domain.NoSubject, result.TopicSubject)
	assert.Empty(t, result.Answer)
}

func TestProcessTurn_ChitChatShortCircuits(t *testing.T) {
	svc := newTestTurnService()
	state := domain.NewDialogueState()

	svc.ProcessTurn(context.Background(), "Who is the Prime Minister of India?", state)
	result := svc.ProcessTurn(context.Background(), "thanks", state)

	assert.Equal(t, domain.ActChitChat, result.Act)
	assert.Equal(t, domain.GeneralDomain, result.TopicDomain)
	assert.Equal(t, domain.NoSubject, result.TopicSubject)
	assert.Equal(t, "chit_chat", result.ClarificationNote)
	assert.Empty(t, result.Answer)

	// Slots are only decayed, never reassigned or cleared.
	assert.Equal(t, "Prime Minister", state.Role.Value)
	assert.InDelta(t, domain.DefaultDecayFactor, state.Role.Confidence, 1e-9)
}

// A continuation whose predicted domain differs from the held one is a
// topic switch in disguise: dependents reset, the new utterance's own
// evidence lands on fresh frames.
func TestProcessTurn_TopicSwitchGuard(t *testing.T) {
	svc := newTestTurnService()
	state := domain.NewDialogueState()
	state.Domain.Assign("Sports")
	state.Subject.Assign("Australia")
	state.Role.Assign("Captain")

	result := svc.ProcessTurn(context.Background(), "his duties as prime minister of India?", state)

	assert.Equal(t, domain.ActContextualContinuation, result.Act)
	assert.Equal(t, "Politics", state.Domain.Value)
	assert.Equal(t, "Prime Minister", state.Role.Value)
	assert.Equal(t, "India", state.Subject.Value)
	assert.Equal(t, "Politics", result.TopicDomain)
}

// A continuation with no classifier signal keeps the held domain even
// when detectors would otherwise touch it.
func TestProcessTurn_ContinuationFreezesDomain(t *testing.T) {
	svc := newTestTurnService()
	state := domain.NewDialogueState()
	state.Domain.Assign("Sports")
	state.Subject.Assign("India")
	state.Role.Assign("Captain")

	result := svc.ProcessTurn(context.Background(), "what about England?", state)

	assert.Equal(t, "Sports", state.Domain.Value)
	assert.Equal(t, "Who is the Captain of England?", result.ExpandedText)
	assert.Equal(t, "Ben Stokes is the captain of the England Test cricket team.", result.Answer)
}

func TestProcessTurn_DecayClearsStaleContext(t *testing.T) {
	svc := newTestTurnService()
	state := domain.NewDialogueState()

	svc.ProcessTurn(context.Background(), "Who is the Prime Minister of India?", state)

	// Nine content-free turns erode confidence below the forget
	// threshold (0.85^10 < 0.2).
	for i := 0; i < 9; i++ {
		svc.ProcessTurn(context.Background(), "hmm", state)
	}

	result := svc.ProcessTurn(context.Background(), "his duties?", state)
	assert.Equal(t, NoteNotEnoughContext, result.ClarificationNote)
	assert.Empty(t, result.ExpandedText)
}

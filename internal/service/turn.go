package service

import (
	"context"
	"time"

	"github.com/Harshitk-cp/ellipsis/internal/detect"
	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TurnService orchestrates one conversational turn: decay, act
// classification, state update under the act-specific freeze/switch
// policy, expansion, topic tagging and delegation to the Answerer.
//
// The pipeline never fails: every "cannot proceed" condition surfaces as
// a clarification note in the result, and collaborator errors degrade to
// missing answers.
type TurnService struct {
	tracker  *TrackerService
	expander *ExpansionService
	answerer domain.Answerer
	logger   *zap.Logger
}

func NewTurnService(tracker *TrackerService, expander *ExpansionService, answerer domain.Answerer, logger *zap.Logger) *TurnService {
	return &TurnService{
		tracker:  tracker,
		expander: expander,
		answerer: answerer,
		logger:   logger,
	}
}

// ProcessTurn runs the turn pipeline against the caller-owned state.
// The state is mutated in place; callers must not issue concurrent turns
// against the same state.
func (s *TurnService) ProcessTurn(ctx context.Context, text string, state *domain.DialogueState) domain.TurnResult {
	// Confidence erosion happens exactly once per turn, before any new
	// evidence is applied.
	state.DecayAll()

	act := detect.Act(text)

	if act == domain.ActChitChat {
		return domain.TurnResult{
			TurnID:            uuid.New(),
			UserText:          text,
			Act:               act,
			TopicDomain:       domain.GeneralDomain,
			TopicSubject:      domain.NoSubject,
			ClarificationNote: string(domain.ActChitChat),
			State:             state.Snapshot(),
			CreatedAt:         time.Now(),
		}
	}

	if act == domain.ActContextualContinuation {
		// Topic-persistence guard: a continuation whose predicted domain
		// differs from the held one is a topic switch in disguise and
		// gets the full update (which resets dependents). Otherwise the
		// held domain is frozen across the update so a weak classifier
		// signal cannot hijack a same-topic follow-up.
		predicted := s.tracker.PredictDomain(ctx, text)
		if predicted != "" && predicted != state.Domain.Value {
			s.logger.Debug("continuation carries a domain change",
				zap.String("held", state.Domain.Value),
				zap.String("predicted", predicted))
			s.tracker.UpdateFromText(ctx, text, state)
		} else {
			held := state.Domain.Value
			s.tracker.UpdateFromText(ctx, text, state)
			state.Domain.Value = held
		}
	} else {
		s.tracker.UpdateFromText(ctx, text, state)
	}

	expanded, note := s.expander.Expand(text, state, act)

	topicDomain := state.Domain.Value
	if topicDomain == "" {
		topicDomain = domain.GeneralDomain
	}
	topicSubject := state.Subject.Value
	if topicSubject == "" {
		topicSubject = domain.NoSubject
	}

	var answer string
	if s.answerer != nil {
		got, err := s.answerer.Answer(ctx, expanded, state.Role.Value, state.Subject.Value)
		if err != nil {
			s.logger.Warn("answer lookup failed", zap.Error(err))
		} else {
			answer = got
		}
	}

	s.logger.Debug("turn processed",
		zap.String("act", string(act)),
		zap.String("topic_domain", topicDomain),
		zap.String("topic_subject", topicSubject),
		zap.String("expanded", expanded),
		zap.String("note", note))

	return domain.TurnResult{
		TurnID:            uuid.New(),
		UserText:          text,
		Act:               act,
		ExpandedText:      expanded,
		TopicDomain:       topicDomain,
		TopicSubject:      topicSubject,
		ClarificationNote: note,
		Answer:            answer,
		State:             state.Snapshot(),
		CreatedAt:         time.Now(),
	}
}

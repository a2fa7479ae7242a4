package service

import (
	"context"

	"github.com/Harshitk-cp/ellipsis/internal/detect"
	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"go.uber.org/zap"
)

// TrackerService applies detector evidence from one utterance to a
// DialogueState. It owns the topic-change reset rule: a confirmed domain
// change wipes dependent slots before this utterance's own detections
// repopulate them.
type TrackerService struct {
	classifier domain.TopicClassifier
	countries  []string
	logger     *zap.Logger
}

func NewTrackerService(classifier domain.TopicClassifier, countries []string, logger *zap.Logger) *TrackerService {
	return &TrackerService{
		classifier: classifier,
		countries:  countries,
		logger:     logger,
	}
}

// PredictDomain asks the classifier for a label and normalizes both
// "Unknown" and classifier failure to no signal. Failures are logged,
// never surfaced: a broken classifier degrades to rule-of-last-turn
// context, not a broken conversation.
func (s *TrackerService) PredictDomain(ctx context.Context, text string) string {
	label, err := s.classifier.Predict(ctx, text)
	if err != nil {
		s.logger.Warn("topic prediction failed", zap.Error(err))
		return ""
	}
	if label == domain.UnknownDomain {
		return ""
	}
	return label
}

// UpdateFromText folds one utterance into the state. Order matters:
// the reset on a confirmed domain change happens before any of this
// utterance's own role/subject/intent are assigned, so a topic switch
// never inherits stale cross-domain slots but does keep evidence the
// switching utterance itself carries.
func (s *TrackerService) UpdateFromText(ctx context.Context, text string, state *domain.DialogueState) {
	newDomain := s.PredictDomain(ctx, text)
	if newDomain != "" && newDomain != state.Domain.Value {
		s.logger.Debug("topic change confirmed, resetting dependent slots",
			zap.String("from", state.Domain.Value),
			zap.String("to", newDomain))
		state.ResetDependents()
	}

	role := detect.Role(text)
	subject := detect.Subject(text, s.countries)
	intent := detect.Intent(text)

	if newDomain != "" {
		state.Domain.Assign(newDomain)
	}
	if subject != "" {
		state.Subject.Assign(subject)
	}
	if role != "" {
		state.Role.Assign(role)
	}
	if intent != "" {
		state.Intent.Assign(intent)
	}
}

// Countries exposes the configured tier-1 subject list so the expansion
// engine re-detects subjects with the same configuration.
func (s *TrackerService) Countries() []string {
	return s.countries
}

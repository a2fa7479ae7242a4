package classifier

import (
	"context"

	"github.com/Harshitk-cp/ellipsis/internal/detect"
	"github.com/Harshitk-cp/ellipsis/internal/domain"
)

// RulesClassifier wraps the keyword-based domain detector behind the
// TopicClassifier contract. It is the default provider and needs no
// model, network or database.
type RulesClassifier struct{}

func NewRulesClassifier() *RulesClassifier {
	return &RulesClassifier{}
}

func (c *RulesClassifier) Predict(_ context.Context, text string) (string, error) {
	if label := detect.Domain(text); label != "" {
		return label, nil
	}
	return domain.UnknownDomain, nil
}

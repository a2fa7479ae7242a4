package classifier

import (
	"context"
	"sort"
	"strings"

	"github.com/Harshitk-cp/ellipsis/internal/domain"
)

// MockClassifier returns canned labels keyed by lower-cased substring.
// Texts matching no key get the fallback label. Deterministic, for tests
// and local development without a model.
type MockClassifier struct {
	labels   map[string]string
	fallback string
}

func NewMockClassifier(labels map[string]string, fallback string) *MockClassifier {
	if fallback == "" {
		fallback = domain.UnknownDomain
	}
	return &MockClassifier{labels: labels, fallback: fallback}
}

func (c *MockClassifier) Predict(_ context.Context, text string) (string, error) {
	t := strings.ToLower(text)

	// Sorted keys keep predictions stable when substrings overlap.
	keys := make([]string, 0, len(c.labels))
	for key := range c.labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(t, strings.ToLower(key)) {
			return c.labels[key], nil
		}
	}
	return c.fallback, nil
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/Harshitk-cp/ellipsis/internal/store"
	"go.uber.org/zap"
)

// AnswerUnavailable is returned for a well-formed question the knowledge
// base simply cannot answer yet. It is a normal answer string, not an
// error condition.
const AnswerUnavailable = "I don't have that answer yet."

// KnowledgeAnswerer resolves questions against a KnowledgeStore:
// duties-style questions by role, who-style questions by (role, subject).
type KnowledgeAnswerer struct {
	knowledge domain.KnowledgeStore
	logger    *zap.Logger
}

func NewKnowledgeAnswerer(knowledge domain.KnowledgeStore, logger *zap.Logger) *KnowledgeAnswerer {
	return &KnowledgeAnswerer{knowledge: knowledge, logger: logger}
}

func (a *KnowledgeAnswerer) Answer(ctx context.Context, expandedText, role, subject string) (string, error) {
	t := strings.ToLower(expandedText)

	if strings.Contains(t, "duties") || strings.Contains(t, "responsibilities") {
		if role == "" {
			return "", nil
		}
		description, err := a.knowledge.Duties(ctx, role)
		if errors.Is(err, store.ErrNotFound) {
			return AnswerUnavailable, nil
		}
		if err != nil {
			return "", err
		}
		return description, nil
	}

	if role == "" || subject == "" {
		return "", nil
	}

	answer, err := a.knowledge.Holder(ctx, role, subject)
	if errors.Is(err, store.ErrNotFound) {
		return AnswerUnavailable, nil
	}
	if err != nil {
		return "", err
	}
	return answer, nil
}

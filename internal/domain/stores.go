package domain

import (
	"context"

	"github.com/google/uuid"
)

// TopicClassifier maps raw text to a domain label, or UnknownDomain when
// it cannot place the utterance. Must be deterministic for a given text
// and model version.
type TopicClassifier interface {
	Predict(ctx context.Context, text string) (string, error)
}

// Answerer resolves an expanded question against external knowledge.
// expandedText may be empty for fresh queries; role and subject carry
// whatever the state currently holds. An empty answer means unanswerable;
// unknown (role, subject) pairs are never an error.
type Answerer interface {
	Answer(ctx context.Context, expandedText, role, subject string) (string, error)
}

// KnowledgeStore is the static fact base the Answerer consults:
// who holds a role for a subject, and what a role's duties are.
type KnowledgeStore interface {
	Holder(ctx context.Context, role, subject string) (string, error)
	Duties(ctx context.Context, role string) (string, error)
}

// EmbeddingClient turns text into a vector for similarity-based topic
// classification.
type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type SessionStore interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

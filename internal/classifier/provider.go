// Package classifier provides TopicClassifier implementations: a
// keyword-rule fallback, a pgvector k-nearest-neighbors classifier over
// labeled example utterances, and a deterministic mock for tests.
package classifier

import (
	"fmt"

	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	ProviderRules = "rules"
	ProviderKNN   = "knn"
	ProviderMock  = "mock"
)

// NewClassifier creates a topic classifier based on the provider name.
// The knn provider requires both a database pool and an embedding client.
func NewClassifier(provider string, db *pgxpool.Pool, embedder domain.EmbeddingClient, logger *zap.Logger) (domain.TopicClassifier, error) {
	switch provider {
	case ProviderRules:
		return NewRulesClassifier(), nil

	case ProviderKNN:
		if db == nil {
			return nil, fmt.Errorf("DATABASE_URL is required for the knn classifier provider")
		}
		if embedder == nil {
			return nil, fmt.Errorf("an embedding client is required for the knn classifier provider")
		}
		return NewKNNClassifier(db, embedder, logger), nil

	case ProviderMock:
		return NewMockClassifier(nil, domain.UnknownDomain), nil

	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (valid options: rules, knn, mock)", provider)
	}
}

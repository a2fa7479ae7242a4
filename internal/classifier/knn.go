package classifier

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

const (
	// DefaultTopK is how many labeled examples vote on a prediction.
	DefaultTopK = 5
	// DefaultMinSimilarity is the cosine-similarity floor below which a
	// neighbor does not count as evidence.
	DefaultMinSimilarity = 0.70
)

// KNNClassifier predicts a topic label by embedding the utterance and
// majority-voting the nearest labeled examples in the topic_examples
// table. Utterances with no sufficiently similar neighbor come back as
// UnknownDomain rather than a guess.
type KNNClassifier struct {
	db       *pgxpool.Pool
	embedder domain.EmbeddingClient
	logger   *zap.Logger

	TopK          int
	MinSimilarity float64
}

func NewKNNClassifier(db *pgxpool.Pool, embedder domain.EmbeddingClient, logger *zap.Logger) *KNNClassifier {
	return &KNNClassifier{
		db:            db,
		embedder:      embedder,
		logger:        logger,
		TopK:          DefaultTopK,
		MinSimilarity: DefaultMinSimilarity,
	}
}

func (c *KNNClassifier) Predict(ctx context.Context, text string) (string, error) {
	embedding, err := c.embedder.Embed(ctx, text)
	if err != nil {
		return "", fmt.Errorf("embed utterance: %w", err)
	}

	vec := pgvector.NewVector(embedding)
	rows, err := c.db.Query(ctx,
		`SELECT label, 1 - (embedding <=> $1) AS similarity
		 FROM topic_examples
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		vec, c.TopK,
	)
	if err != nil {
		return "", fmt.Errorf("query topic examples: %w", err)
	}
	defer rows.Close()

	votes := make(map[string]int)
	for rows.Next() {
		var label string
		var similarity float64
		if err := rows.Scan(&label, &similarity); err != nil {
			return "", fmt.Errorf("scan topic example: %w", err)
		}
		if similarity >= c.MinSimilarity {
			votes[label]++
		}
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate topic examples: %w", err)
	}

	best, bestCount := domain.UnknownDomain, 0
	for label, count := range votes {
		if count > bestCount || (count == bestCount && label < best) {
			best, bestCount = label, count
		}
	}

	if bestCount == 0 {
		return domain.UnknownDomain, nil
	}

	c.logger.Debug("knn topic prediction",
		zap.String("label", best),
		zap.Int("votes", bestCount),
		zap.Int("top_k", c.TopK))

	return best, nil
}

package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKnowledgeStore serves the fact and duties tables from Postgres,
// for deployments where the knowledge base is maintained outside the
// binary. Schema is created by scripts/seed.go.
type PostgresKnowledgeStore struct {
	db *pgxpool.Pool
}

func NewPostgresKnowledgeStore(db *pgxpool.Pool) *PostgresKnowledgeStore {
	return &PostgresKnowledgeStore{db: db}
}

func (s *PostgresKnowledgeStore) Holder(ctx context.Context, role, subject string) (string, error) {
	var answer string
	err := s.db.QueryRow(ctx,
		`SELECT answer FROM facts WHERE lower(role) = lower($1) AND lower(subject) = lower($2)`,
		role, subject,
	).Scan(&answer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return answer, nil
}

func (s *PostgresKnowledgeStore) Duties(ctx context.Context, role string) (string, error) {
	var description string
	err := s.db.QueryRow(ctx,
		`SELECT description FROM duties WHERE lower(role) = lower($1)`,
		role,
	).Scan(&description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return description, nil
}

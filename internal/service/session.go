package service

import (
	"context"
	"errors"
	"time"

	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/Harshitk-cp/ellipsis/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTextEmpty       = errors.New("text is required")
)

// SessionService owns session lifecycle and serializes turn processing
// per session: the HTTP surface may be concurrent, but each
// DialogueState only ever sees one turn at a time.
type SessionService struct {
	sessions domain.SessionStore
	turns    *TurnService
	logger   *zap.Logger
}

func NewSessionService(sessions domain.SessionStore, turns *TurnService, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		turns:    turns,
		logger:   logger,
	}
}

func (s *SessionService) Create(ctx context.Context) (*domain.Session, error) {
	session := &domain.Session{}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("session created", zap.String("session_id", session.ID.String()))
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// Describe returns a consistent view of the session, read under its
// lock. Handlers render from this view rather than the live session.
func (s *SessionService) Describe(ctx context.Context, id uuid.UUID) (domain.SessionInfo, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return domain.SessionInfo{}, err
	}
	return session.Info(), nil
}

// ProcessTurn runs one turn against the session's state and appends the
// result to its history.
func (s *SessionService) ProcessTurn(ctx context.Context, id uuid.UUID, text string) (domain.TurnResult, error) {
	if text == "" {
		return domain.TurnResult{}, ErrTextEmpty
	}

	session, err := s.Get(ctx, id)
	if err != nil {
		return domain.TurnResult{}, err
	}

	session.Lock()
	defer session.Unlock()

	result := s.turns.ProcessTurn(ctx, text, session.State)
	session.Turns = append(session.Turns, result)
	session.LastActivityAt = time.Now()

	s.logger.Info("turn processed",
		zap.String("session_id", id.String()),
		zap.String("act", string(result.Act)),
		zap.String("topic_domain", result.TopicDomain),
		zap.String("topic_subject", result.TopicSubject))

	return result, nil
}

func (s *SessionService) History(ctx context.Context, id uuid.UUID) ([]domain.TurnResult, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	history := make([]domain.TurnResult, len(session.Turns))
	copy(history, session.Turns)
	return history, nil
}

// Reset clears the turn history and replaces the state with a fresh,
// all-empty instance.
func (s *SessionService) Reset(ctx context.Context, id uuid.UUID) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()

	session.State = domain.NewDialogueState()
	session.Turns = nil
	session.LastActivityAt = time.Now()

	s.logger.Info("session reset", zap.String("session_id", id.String()))
	return nil
}

func (s *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	s.logger.Info("session deleted", zap.String("session_id", id.String()))
	return nil
}

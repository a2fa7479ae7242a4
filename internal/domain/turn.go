package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DialogueAct classifies what kind of conversational move an utterance is.
type DialogueAct string

const (
	ActChitChat               DialogueAct = "chit_chat"
	ActTopicShift             DialogueAct = "topic_shift"
	ActContextualContinuation DialogueAct = "contextual_continuation"
	ActFreshQuery             DialogueAct = "fresh_query"
)

const (
	// GeneralDomain is the topic reported when no domain is held.
	GeneralDomain = "General"
	// NoSubject is the topic subject reported when no subject is held.
	NoSubject = "NA"
	// UnknownDomain is the label classifiers return when they cannot
	// place an utterance; the tracker normalizes it to no signal.
	UnknownDomain = "Unknown"
)

// TurnResult is the complete, serializable outcome of one conversational
// turn. Missing information is represented by empty fields, never by an
// error: an expansion that could not be completed carries a
// ClarificationNote instead.
type TurnResult struct {
	TurnID            uuid.UUID     `json:"turn_id"`
	UserText          string        `json:"user_text"`
	Act               DialogueAct   `json:"act"`
	ExpandedText      string        `json:"expanded_text,omitempty"`
	TopicDomain       string        `json:"topic_domain"`
	TopicSubject      string        `json:"topic_subject"`
	ClarificationNote string        `json:"clarification_note,omitempty"`
	Answer            string        `json:"answer,omitempty"`
	State             StateSnapshot `json:"state"`
	CreatedAt         time.Time     `json:"created_at"`
}

// Session owns one DialogueState and the turn history accumulated
// against it. Reset replaces both wholesale, which is equivalent to a
// process restart for state purposes.
type Session struct {
	ID             uuid.UUID      `json:"id"`
	State          *DialogueState `json:"-"`
	Turns          []TurnResult   `json:"turns,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	LastActivityAt time.Time      `json:"last_activity_at"`

	mu sync.Mutex
}

// Lock serializes turn processing for this session. The state is mutated
// in place across the turn pipeline and is not safe for concurrent use.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session for the next turn.
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionInfo is a point-in-time copy of a session's observable fields.
type SessionInfo struct {
	ID             uuid.UUID
	State          StateSnapshot
	TurnCount      int
	CreatedAt      time.Time
	LastActivityAt time.Time
}

// Info copies the observable fields under the session lock. Readers must
// use this instead of touching State or Turns directly, since a turn may
// be mutating both on another goroutine.
func (s *Session) Info() SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionInfo{
		ID:             s.ID,
		State:          s.State.Snapshot(),
		TurnCount:      len(s.Turns),
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.LastActivityAt,
	}
}

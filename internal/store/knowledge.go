package store

import (
	"context"
	"strings"
	"sync"
)

type factKey struct {
	role    string
	subject string
}

// StaticKnowledgeStore is the in-memory knowledge base: immutable
// (role, subject) -> answer and role -> duties lookups. Keys are
// case-insensitive so detector title-casing ("Uk") and seed data ("UK")
// resolve to the same entry.
type StaticKnowledgeStore struct {
	mu     sync.RWMutex
	facts  map[factKey]string
	duties map[string]string
}

// NewStaticKnowledgeStore returns a store seeded with the demo fact and
// duties tables. Use AddFact/AddDuties to extend it.
func NewStaticKnowledgeStore() *StaticKnowledgeStore {
	s := &StaticKnowledgeStore{
		facts:  make(map[factKey]string),
		duties: make(map[string]string),
	}

	s.AddFact("Prime Minister", "India", "Narendra Modi is the Prime Minister of India.")
	s.AddFact("Prime Minister", "Uk", "Keir Starmer is the Prime Minister of the UK.")
	s.AddFact("Prime Minister", "United Kingdom", "Keir Starmer is the Prime Minister of the UK.")
	s.AddFact("Prime Minister", "Australia", "Anthony Albanese is the Prime Minister of Australia.")
	s.AddFact("Prime Minister", "Japan", "Shigeru Ishiba is the Prime Minister of Japan.")
	s.AddFact("Captain", "India", "Rohit Sharma is the captain of the Indian cricket team.")
	s.AddFact("Captain", "England", "Ben Stokes is the captain of the England Test cricket team.")
	s.AddFact("Captain", "Australia", "Pat Cummins is the captain of the Australian cricket team.")
	s.AddFact("Coach", "India", "Gautam Gambhir is the head coach of the Indian cricket team.")

	s.AddDuties("Prime Minister", "The Prime Minister heads the government, chairs the cabinet and sets the direction of national policy.")
	s.AddDuties("Captain", "The captain leads the team on the field, sets the batting order and makes tactical decisions during play.")
	s.AddDuties("Coach", "The coach plans training, selects strategy with the captain and develops individual players.")

	return s
}

func (s *StaticKnowledgeStore) AddFact(role, subject, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts[factKey{strings.ToLower(role), strings.ToLower(subject)}] = answer
}

func (s *StaticKnowledgeStore) AddDuties(role, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duties[strings.ToLower(role)] = description
}

func (s *StaticKnowledgeStore) Holder(_ context.Context, role, subject string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	answer, ok := s.facts[factKey{strings.ToLower(role), strings.ToLower(subject)}]
	if !ok {
		return "", ErrNotFound
	}
	return answer, nil
}

func (s *StaticKnowledgeStore) Duties(_ context.Context, role string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	description, ok := s.duties[strings.ToLower(role)]
	if !ok {
		return "", ErrNotFound
	}
	return description, nil
}

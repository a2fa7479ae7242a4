// Package detect holds the stateless text detectors: dialogue act,
// rule-based domain, role, subject and intent. Matching is deliberately
// keyword/substring based rather than tokenized NLP, and the order of
// checks inside each detector encodes disambiguation priority: first
// match wins.
package detect

import (
	"strings"

	"github.com/Harshitk-cp/ellipsis/internal/domain"
)

var chitChatKeywords = []string{"thanks", "wait", "ok", "fine"}

var topicShiftPhrases = []string{"now tell me", "switch to", "change topic"}

// continuationTriggers mark an utterance that leans on prior context.
// A trigger matches if the trimmed text starts with it, or if it appears
// as a whole whitespace-split token, so "his" does not fire inside
// "this".
var continuationTriggers = []string{
	"what about",
	"and what about",
	"his",
	"her",
	"their",
	"same there",
	"same here",
	"more about",
	"and there",
}

// Act classifies the dialogue act of an utterance. Priority:
// chit-chat > topic shift > contextual continuation > fresh query.
func Act(text string) domain.DialogueAct {
	t := strings.ToLower(strings.TrimSpace(text))

	for _, kw := range chitChatKeywords {
		if strings.Contains(t, kw) {
			return domain.ActChitChat
		}
	}

	for _, phrase := range topicShiftPhrases {
		if strings.Contains(t, phrase) {
			return domain.ActTopicShift
		}
	}

	if matchesContinuation(t) {
		return domain.ActContextualContinuation
	}

	return domain.ActFreshQuery
}

func matchesContinuation(t string) bool {
	tokens := strings.Fields(t)
	for _, trigger := range continuationTriggers {
		if strings.HasPrefix(t, trigger) {
			return true
		}
		for _, tok := range tokens {
			if strings.Trim(tok, "?.!,") == trigger {
				return true
			}
		}
	}
	return false
}

package detect

import (
	"strings"
	"unicode/utf8"
)

// DefaultCountries is the tier-1 subject list. First match in list order
// wins, so more specific names come before shorter ones.
var DefaultCountries = []string{
	"india",
	"united kingdom",
	"uk",
	"england",
	"usa",
	"america",
	"australia",
	"new zealand",
	"south africa",
	"pakistan",
	"bangladesh",
	"sri lanka",
	"france",
	"germany",
	"japan",
	"china",
	"brazil",
	"canada",
	"russia",
}

// subjectBlockList rejects tier-2 candidates that are question words,
// role nouns or bare pronouns rather than entities. Pronouns must be
// blocked so "what about that?" asks for clarification instead of
// tracking "That" as a subject.
var subjectBlockList = map[string]struct{}{
	"who":       {},
	"what":      {},
	"about":     {},
	"is":        {},
	"pm":        {},
	"captain":   {},
	"coach":     {},
	"minister":  {},
	"president": {},
	"leader":    {},
	"that":      {},
	"this":      {},
	"there":     {},
	"it":        {},
	"them":      {},
	"him":       {},
	"her":       {},
}

// Subject extracts the entity the utterance is about. Tier 1 scans the
// country list for a substring of the lower-cased text. Tier 2 falls back
// to the last word of the utterance when the list is empty or nothing
// matched. The fallback is crude and can pick up stray nouns; the
// block list above filters the worst of them.
func Subject(text string, countries []string) string {
	t := strings.ToLower(text)
	for _, country := range countries {
		if strings.Contains(t, country) {
			return TitleCase(country)
		}
	}

	trimmed := strings.TrimRight(strings.TrimSpace(text), "?.,!")
	words := strings.Fields(trimmed)
	if len(words) < 3 {
		return ""
	}

	candidate := TitleCase(words[len(words)-1])
	if _, blocked := subjectBlockList[strings.ToLower(candidate)]; blocked {
		return ""
	}
	return candidate
}

// TitleCase upper-cases the first letter of every whitespace-separated
// word and lower-cases the rest ("uk" -> "Uk", "sri lanka" -> "Sri Lanka").
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

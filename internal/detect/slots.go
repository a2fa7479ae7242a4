package detect

import "strings"

var politicsKeywords = []string{"pm", "prime minister", "parliament", "government"}

var sportsKeywords = []string{"captain", "cricket", "football", "team"}

// Domain is the rule-based fallback domain detector. A trained
// TopicClassifier supersedes it when configured; the keyword sets here
// are the floor the system never loses.
func Domain(text string) string {
	t := strings.ToLower(text)
	for _, kw := range politicsKeywords {
		if strings.Contains(t, kw) {
			return "Politics"
		}
	}
	for _, kw := range sportsKeywords {
		if strings.Contains(t, kw) {
			return "Sports"
		}
	}
	return ""
}

// Role extracts a mentioned role. First match wins.
func Role(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "prime minister"), strings.Contains(t, "pm"):
		return "Prime Minister"
	case strings.Contains(t, "captain"):
		return "Captain"
	case strings.Contains(t, "coach"):
		return "Coach"
	}
	return ""
}

// Intent extracts what the user wants to know. "duties" must be checked
// before "who": "who handles the duties" is a duties question.
func Intent(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "duties"), strings.Contains(t, "responsibilities"):
		return "duties"
	case strings.Contains(t, "who"):
		return "who"
	case strings.Contains(t, "about"):
		return "info"
	}
	return ""
}

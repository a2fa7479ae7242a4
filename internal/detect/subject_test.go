package detect

import "testing"

func TestSubject_CountryList(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Who is the Prime Minister of India?", "India"},
		{"what about the UK?", "Uk"},
		{"what about sri lanka", "Sri Lanka"},
		{"tell me about the United Kingdom", "United Kingdom"},
		{"his duties?", ""},
	}
	for _, tt := range tests {
		if got := Subject(tt.text, DefaultCountries); got != tt.want {
			t.Errorf("Subject(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestSubject_LastWordFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"takes last word", "who leads team Ferrari?", "Ferrari"},
		{"strips trailing punctuation", "tell me about liverpool.", "Liverpool"},
		{"too short", "about liverpool", ""},
		{"blocked question word", "who is who", ""},
		{"blocked pronoun", "what about that?", ""},
		{"blocked role noun", "who is the captain?", ""},
		{"blocked title", "who is the president", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subject(tt.text, nil); got != tt.want {
				t.Errorf("Subject(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"uk", "Uk"},
		{"india", "India"},
		{"sri lanka", "Sri Lanka"},
		{"UNITED KINGDOM", "United Kingdom"},
		// multi-byte leading runes must be cased whole, not byte-sliced
		{"índia", "Índia"},
		{"ürümqi", "Ürümqi"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

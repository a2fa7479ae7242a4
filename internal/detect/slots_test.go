package detect

import "testing"

func TestDomain(t *testing.T) {
	tests := []struct{ text, want string }{
		{"Who is the Prime Minister of India?", "Politics"},
		{"how does parliament work", "Politics"},
		{"the government announced a policy", "Politics"},
		{"who captains the cricket team", "Sports"},
		{"football scores", "Sports"},
		{"what is the weather like", ""},
	}
	for _, tt := range tests {
		if got := Domain(tt.text); got != tt.want {
			t.Errorf("Domain(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestRole(t *testing.T) {
	tests := []struct{ text, want string }{
		{"who is the prime minister", "Prime Minister"},
		{"who is the PM of India", "Prime Minister"},
		{"who is the captain", "Captain"},
		{"who coaches them", "Coach"},
		{"what is the weather like", ""},
	}
	for _, tt := range tests {
		if got := Role(tt.text); got != tt.want {
			t.Errorf("Role(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestIntent(t *testing.T) {
	tests := []struct{ text, want string }{
		{"his duties?", "duties"},
		{"what are her responsibilities", "duties"},
		{"who is the captain", "who"},
		{"tell me more about India", "info"},
		{"cricket", ""},
		// duties outranks who even when both appear
		{"who handles the duties", "duties"},
	}
	for _, tt := range tests {
		if got := Intent(tt.text); got != tt.want {
			t.Errorf("Intent(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

package classify

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{"technology", "How does AI change software programming?", "technology"},
		{"science", "What is quantum physics?", "science"},
		{"history", "Why did the Roman empire fall?", "history"},
		{"health", "Is this vaccine safe for a disease?", "health"},
		{"finance", "Should I invest in the stock market?", "finance"},
		{"sports", "Who won the basketball championship?", "sports"},
		{"news", "What is the latest breaking news?", "news"},
		{"no keywords", "Tell me about butterflies", "general"},
		{"empty", "", "general"},
		{"whole words only", "He said something about trains", "general"},
		{"case insensitive", "QUANTUM THEORY explained", "science"},
		{"more hits wins", "The economy, inflation, and one computer", "finance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.question); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

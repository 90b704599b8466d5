// Package classify assigns research questions to a topic category using
// keyword matching. It is intentionally simple: the category with the most
// whole-word keyword hits wins, and questions with no hits fall back to
// "general".
package classify

import (
	"strings"
	"unicode"
)

// General is the fallback category for questions that match no keywords.
const General = "general"

// categories are checked in order; ties go to the earlier entry.
var categories = []struct {
	name     string
	keywords []string
}{
	{"technology", []string{
		"technology", "tech", "computer", "software", "programming", "code",
		"ai", "internet", "robot", "app", "smartphone", "algorithm",
	}},
	{"science", []string{
		"science", "physics", "chemistry", "biology", "space", "quantum",
		"experiment", "theory", "scientist", "climate", "evolution", "gene",
	}},
	{"history", []string{
		"history", "ancient", "war", "empire", "century", "revolution",
		"medieval", "dynasty", "civilization",
	}},
	{"health", []string{
		"health", "medicine", "disease", "vaccine", "diet", "exercise",
		"doctor", "mental", "sleep", "nutrition",
	}},
	{"finance", []string{
		"finance", "money", "stock", "market", "economy", "invest",
		"crypto", "bank", "inflation", "tax",
	}},
	{"sports", []string{
		"sport", "sports", "football", "soccer", "basketball", "tennis",
		"olympics", "championship", "league", "player", "team",
	}},
	{"news", []string{
		"news", "today", "latest", "breaking", "current", "recent", "election",
	}},
}

// Categorize returns the topic category for a question.
func Categorize(question string) string {
	words := tokenize(question)

	best := General
	bestHits := 0
	for _, c := range categories {
		hits := 0
		for _, k := range c.keywords {
			if words[k] {
				hits++
			}
		}
		if hits > bestHits {
			best = c.name
			bestHits = hits
		}
	}

	return best
}

// tokenize lowercases the question and splits it into a word set, so that
// keywords match whole words only ("ai" must not match "said").
func tokenize(s string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}

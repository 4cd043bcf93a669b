// internal/dialogue/extractor.go
package dialogue

import (
	"regexp"
	"strconv"
	"strings"

	"carassist/internal/common/config"
	"carassist/internal/inventory"
)

var (
	intPattern     = regexp.MustCompile(`\d+`)
	decimalPattern = regexp.MustCompile(`\d+\.?\d*`)
)

// ExtractCriteria derives the filter criteria from the collected answers.
// Keyword matching runs on the question text; the matched answer contributes
// the value. Pairs are visited in insertion order, so when several questions
// hit the same category the last one wins. Malformed answers never fail
// extraction: a category without a usable token keeps its default.
func ExtractCriteria(answers *AnswerSet, cfg config.DialogueConfig) inventory.FilterCriteria {
	criteria := inventory.FilterCriteria{
		MinPassengers:  cfg.DefaultMinPassengers,
		MaxBudget:      cfg.DefaultMaxBudget,
		TypePreference: "",
	}

	for _, qa := range answers.Pairs() {
		lowerQ := strings.ToLower(qa.Question)

		if containsAny(lowerQ, cfg.PassengerKeywords) {
			if m := intPattern.FindString(qa.Answer); m != "" {
				if n, err := strconv.Atoi(m); err == nil {
					criteria.MinPassengers = n
				}
			}
		}
		if containsAny(lowerQ, cfg.BudgetKeywords) {
			if m := decimalPattern.FindString(qa.Answer); m != "" {
				if f, err := strconv.ParseFloat(m, 64); err == nil {
					criteria.MaxBudget = f
				}
			}
		}
		if containsAny(lowerQ, cfg.TypeKeywords) {
			criteria.TypePreference = strings.TrimSpace(qa.Answer)
		}
	}

	return criteria
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

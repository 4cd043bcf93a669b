// internal/dialogue/validator.go
package dialogue

import (
	"strconv"
	"strings"

	"carassist/internal/common/config"
	apperrors "carassist/internal/common/errors"
)

// Validator enforces the per-question input constraints of the
// questionnaire. The category and numeric-cue keyword lists come from
// configuration so alternate questionnaires stay testable.
type Validator struct {
	categories      []string
	numericKeywords []string
}

func NewValidator(cfg config.DialogueConfig) *Validator {
	return &Validator{
		categories:      lowerAll(cfg.Categories),
		numericKeywords: lowerAll(cfg.NumericKeywords),
	}
}

// Validate applies the rules in order; the first failing rule wins and its
// coded error selects the re-prompt message. nil means accepted.
//
//  1. empty or whitespace-only answers are rejected;
//  2. a question that mentions every known category is a type question, and
//     the answer must equal one of the categories (case-insensitive);
//  3. a question containing a numeric-cue keyword requires the whole answer
//     to parse as a number.
func (v *Validator) Validate(question, rawAnswer string) error {
	answer := strings.TrimSpace(rawAnswer)
	if answer == "" {
		return apperrors.New(apperrors.ErrCodeInputEmpty, "empty answer")
	}

	lowerQ := strings.ToLower(question)

	if v.isTypeQuestion(lowerQ) {
		lowerA := strings.ToLower(answer)
		valid := false
		for _, cat := range v.categories {
			if lowerA == cat {
				valid = true
				break
			}
		}
		if !valid {
			return apperrors.New(apperrors.ErrCodeInputInvalidCategory, "answer is not a known category")
		}
	}

	for _, kw := range v.numericKeywords {
		if strings.Contains(lowerQ, kw) {
			if _, err := strconv.ParseFloat(answer, 64); err != nil {
				return apperrors.New(apperrors.ErrCodeInputNotNumeric, "answer is not numeric")
			}
			break
		}
	}

	return nil
}

// isTypeQuestion reports whether the question mentions all known categories
// at once, which is how the generated type questions present the choices.
func (v *Validator) isTypeQuestion(lowerQuestion string) bool {
	if len(v.categories) == 0 {
		return false
	}
	for _, cat := range v.categories {
		if !strings.Contains(lowerQuestion, cat) {
			return false
		}
	}
	return true
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

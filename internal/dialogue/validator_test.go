// internal/dialogue/validator_test.go
package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "carassist/internal/common/errors"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(testDialogueConfig())

	tests := []struct {
		name     string
		question string
		answer   string
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "empty answer rejected for any question",
			question: "Qual a sua preferência?",
			answer:   "",
			wantCode: apperrors.ErrCodeInputEmpty,
		},
		{
			name:     "whitespace-only answer rejected",
			question: "Quantos passageiros?",
			answer:   "   ",
			wantCode: apperrors.ErrCodeInputEmpty,
		},
		{
			name:     "type question accepts a known category",
			question: "Você prefere Sedan, Hatch ou SUV?",
			answer:   "suv",
		},
		{
			name:     "type question accepts mixed case",
			question: "Você prefere Sedan, Hatch ou SUV?",
			answer:   "SeDaN",
		},
		{
			name:     "type question rejects unknown category",
			question: "Você prefere Sedan, Hatch ou SUV?",
			answer:   "picape",
			wantCode: apperrors.ErrCodeInputInvalidCategory,
		},
		{
			name:     "question naming only one category is not a type question",
			question: "Gostaria de um SUV para a viagem?",
			answer:   "talvez",
		},
		{
			name:     "numeric cue requires a number",
			question: "Qual o valor máximo da diária?",
			answer:   "barato",
			wantCode: apperrors.ErrCodeInputNotNumeric,
		},
		{
			name:     "numeric cue accepts integers",
			question: "Quantos passageiros você precisa levar?",
			answer:   "5",
		},
		{
			name:     "numeric cue accepts decimals",
			question: "Qual é o seu orçamento?",
			answer:   "120.50",
		},
		{
			name:     "numeric cue rejects numbers embedded in prose",
			question: "Qual é o seu orçamento?",
			answer:   "uns 120 reais",
			wantCode: apperrors.ErrCodeInputNotNumeric,
		},
		{
			name:     "free-text question accepts anything non-empty",
			question: "Como pretende usar o carro?",
			answer:   "viagem em família",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.question, tt.answer)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestValidator_EmptyBeatsLaterRules(t *testing.T) {
	v := NewValidator(testDialogueConfig())

	// An empty answer to a numeric question reports "empty", not
	// "not numeric": the rules apply in order and the first failure wins.
	err := v.Validate("Qual o valor da diária?", "  ")
	assert.Equal(t, apperrors.ErrCodeInputEmpty, apperrors.CodeOf(err))
}

func TestValidator_IsInputError(t *testing.T) {
	v := NewValidator(testDialogueConfig())

	err := v.Validate("Quantos passageiros?", "muitos")
	assert.True(t, apperrors.IsInput(err))
}

// internal/dialogue/questionnaire.go
package dialogue

import (
	"context"
	"fmt"
	"strings"

	"carassist/internal/ai"
	"carassist/internal/common/config"
	apperrors "carassist/internal/common/errors"
	"carassist/internal/common/logger"
)

// Questionnaire runs the fixed-round guided dialogue that collects the
// rental filter answers. Each round asks the question source for one
// question seeded with the transcript so far, then re-prompts the user until
// the validator accepts the answer.
type Questionnaire struct {
	cfg       config.DialogueConfig
	questions ai.QuestionSource
	validator *Validator
	console   *Console
	logger    logger.Logger
}

func NewQuestionnaire(cfg config.DialogueConfig, questions ai.QuestionSource, console *Console, log logger.Logger) *Questionnaire {
	return &Questionnaire{
		cfg:       cfg,
		questions: questions,
		validator: NewValidator(cfg),
		console:   console,
		logger:    log.WithFields(map[string]interface{}{"flow": "questionnaire"}),
	}
}

// Run executes the configured number of rounds and returns the accumulated
// answer set. A failing question source or an exhausted console aborts the
// flow with the error.
func (q *Questionnaire) Run(ctx context.Context) (*AnswerSet, error) {
	answers := NewAnswerSet()
	var history strings.Builder

	for round := 0; round < q.cfg.Rounds; round++ {
		question, err := q.questions.NextQuestion(ctx, history.String())
		if err != nil {
			return nil, err
		}

		answer, err := q.collectAnswer(question)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(&history, "Pergunta: %s\nResposta: %s\n", question, answer)
		if answers.Put(question, answer) {
			// Latent data loss when the generator repeats itself; kept
			// source-faithful but made visible.
			q.logger.Debug("duplicate question overwrote earlier answer", map[string]interface{}{
				"question": question,
			})
		}
	}

	return answers, nil
}

// collectAnswer re-prompts the same question until the validator accepts.
func (q *Questionnaire) collectAnswer(question string) (string, error) {
	for {
		q.console.Say("\nCarAssistant: %s", question)
		answer, err := q.console.Prompt("Você: ")
		if err != nil {
			return "", err
		}

		verr := q.validator.Validate(question, answer)
		if verr == nil {
			return answer, nil
		}

		switch apperrors.CodeOf(verr) {
		case apperrors.ErrCodeInputInvalidCategory:
			q.console.Say("CarAssistant: Resposta inválida. Por favor, informe um tipo válido: %s.", categoryList(q.cfg.Categories))
		case apperrors.ErrCodeInputNotNumeric:
			q.console.Say("CarAssistant: Resposta inválida. Por favor, informe um valor numérico.")
		default:
			q.console.Say("CarAssistant: Resposta inválida. Por favor, responda a pergunta.")
		}
	}
}

// categoryList renders the configured categories for the re-prompt message,
// e.g. "Sedan, Hatch ou SUV".
func categoryList(categories []string) string {
	titled := make([]string, len(categories))
	for i, c := range categories {
		titled[i] = titleCategory(c)
	}
	if len(titled) <= 1 {
		return strings.Join(titled, "")
	}
	return strings.Join(titled[:len(titled)-1], ", ") + " ou " + titled[len(titled)-1]
}

func titleCategory(c string) string {
	if strings.EqualFold(c, "suv") {
		return "SUV"
	}
	if c == "" {
		return c
	}
	return strings.ToUpper(c[:1]) + strings.ToLower(c[1:])
}

// internal/ai/interface.go
package ai

import "context"

// QA is one recorded question/answer pair, in the order it was asked.
type QA struct {
	Question string
	Answer   string
}

// QuestionSource produces the next questionnaire question for the rental
// flow. history carries the transcript of the rounds already completed and
// may be empty on the first round.
type QuestionSource interface {
	NextQuestion(ctx context.Context, history string) (string, error)
}

// AnswerSource answers company questions constrained to a fixed knowledge
// text, and summarizes a session's recorded pairs. Both interfaces exist so
// the dialogue flows can be driven by deterministic stubs in tests.
type AnswerSource interface {
	Answer(ctx context.Context, companyName, knowledge, question string) (string, error)
	Summarize(ctx context.Context, pairs []QA) (string, error)
}

// internal/dialogue/company.go
package dialogue

import (
	"context"
	"fmt"
	"strings"

	"carassist/internal/ai"
	"carassist/internal/common/config"
	apperrors "carassist/internal/common/errors"
	"carassist/internal/common/logger"
	"carassist/internal/inventory"
)

// CompanyStore is the read-only slice of the inventory store this flow needs.
type CompanyStore interface {
	GetCompanyInfo(ctx context.Context) (inventory.CompanyInfo, error)
}

// CompanyFlow answers a fixed number of free-text questions about the
// company, constrained to the stored knowledge text. Questions that fail the
// keyword relevance gate get a canned refusal without an external call and
// are left out of the final summary.
type CompanyFlow struct {
	cfg     config.DialogueConfig
	source  ai.AnswerSource
	store   CompanyStore
	console *Console
	logger  logger.Logger
}

func NewCompanyFlow(cfg config.DialogueConfig, source ai.AnswerSource, store CompanyStore, console *Console, log logger.Logger) *CompanyFlow {
	return &CompanyFlow{
		cfg:     cfg,
		source:  source,
		store:   store,
		console: console,
		logger:  log.WithFields(map[string]interface{}{"flow": "company"}),
	}
}

// IsRelevant reports whether the question touches the business domain,
// by case-insensitive containment of any configured relevance keyword.
func (f *CompanyFlow) IsRelevant(question string) bool {
	lower := strings.ToLower(question)
	for _, kw := range f.cfg.RelevanceKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Run executes the company-questions session.
func (f *CompanyFlow) Run(ctx context.Context) error {
	info, err := f.store.GetCompanyInfo(ctx)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeEmptyResult {
			f.console.Say("CarAssistant: Informação da empresa não encontrada.")
			return nil
		}
		return err
	}

	f.console.Say("\nVocê entrou na área de Dúvidas sobre a Empresa.")
	f.console.Say("\nBem-vindo à área de atendimento da %s.", info.Name)
	f.console.Say("Você pode fazer perguntas sobre nossos serviços, políticas e histórico.\n")

	var recorded []ai.QA

	for i := 0; i < f.cfg.CompanyRounds; i++ {
		question, err := f.console.Prompt(fmt.Sprintf("Pergunta %d: ", i+1))
		if err != nil {
			return err
		}

		if !f.IsRelevant(question) {
			refusal := fmt.Sprintf(
				"Como %s, prezamos pela sua experiência conosco. No entanto, "+
					"a sua pergunta sobre '%s' não está relacionada aos nossos serviços de aluguel de carros. "+
					"Para informações sobre este assunto, sugerimos consultar outras fontes. "+
					"Se precisar de ajuda com aluguel de veículos, estamos à disposição!",
				info.Name, question)
			f.console.Say("\nResposta: %s\n", refusal)
			continue
		}

		answer, err := f.source.Answer(ctx, info.Name, info.Info, question)
		if err != nil {
			return err
		}
		f.console.Say("\nResposta: %s\n", answer)
		recorded = append(recorded, ai.QA{Question: question, Answer: answer})
	}

	if len(recorded) == 0 {
		f.console.Say("\nCarAssistant: Nenhuma pergunta relevante foi feita.")
		return nil
	}

	summary, err := f.source.Summarize(ctx, recorded)
	if err != nil {
		return err
	}
	f.console.Say("\nResumo geral das suas dúvidas sobre a empresa:")
	f.console.Say("%s", summary)
	return nil
}

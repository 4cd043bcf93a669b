// internal/dialogue/controller.go
package dialogue

import (
	"context"
	"errors"
	"io"
	"strings"

	"carassist/internal/common/config"
	apperrors "carassist/internal/common/errors"
	"carassist/internal/common/logger"
	"carassist/internal/inventory"
)

// Choice is the normalized top-level menu selection.
type Choice int

const (
	ChoiceUnknown Choice = iota
	ChoiceRent
	ChoiceCompanyInfo
	ChoiceExit
)

// NormalizeChoice interprets the menu input flexibly: exact digits or
// recognizable keywords map to a flow, anything else re-displays the menu.
func NormalizeChoice(input string) Choice {
	choice := strings.ToLower(strings.TrimSpace(input))
	switch {
	case choice == "1" || strings.Contains(choice, "alugar"):
		return ChoiceRent
	case choice == "2" || strings.Contains(choice, "empresa") || strings.Contains(choice, "dúvida"):
		return ChoiceCompanyInfo
	case choice == "3" || strings.Contains(choice, "sair") ||
		strings.Contains(choice, "exit") || strings.Contains(choice, "quit"):
		return ChoiceExit
	default:
		return ChoiceUnknown
	}
}

// InventoryStore is the read-only store surface the controller depends on.
type InventoryStore interface {
	ListAvailableCars(ctx context.Context) ([]inventory.Car, error)
	CompanyStore
}

// Controller owns the top-level menu loop and dispatches into the rental
// and company flows. A flow aborting with a collaborator or store error is
// logged and control returns to the menu; only an exhausted console ends
// the session.
type Controller struct {
	cfg           config.DialogueConfig
	console       *Console
	store         InventoryStore
	questionnaire *Questionnaire
	selection     *SelectionFlow
	company       *CompanyFlow
	logger        logger.Logger
}

func NewController(
	cfg config.DialogueConfig,
	console *Console,
	store InventoryStore,
	questionnaire *Questionnaire,
	selection *SelectionFlow,
	company *CompanyFlow,
	log logger.Logger,
) *Controller {
	return &Controller{
		cfg:           cfg,
		console:       console,
		store:         store,
		questionnaire: questionnaire,
		selection:     selection,
		company:       company,
		logger:        log.WithFields(map[string]interface{}{"flow": "controller"}),
	}
}

// Run loops on the menu until the user exits.
func (c *Controller) Run(ctx context.Context) error {
	c.console.Say("Bem-vindo ao CarAssistant!")

	for {
		c.console.Say("\nMenu Principal:")
		c.console.Say("1 - Alugar Carro")
		c.console.Say("2 - Dúvidas sobre a Empresa")
		c.console.Say("3 - Sair")

		input, err := c.console.Prompt("Escolha uma opção: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch NormalizeChoice(input) {
		case ChoiceRent:
			if err := c.runRental(ctx); err != nil {
				if done := c.handleFlowError(err, "rental"); done {
					return nil
				}
			}
		case ChoiceCompanyInfo:
			if err := c.company.Run(ctx); err != nil {
				if done := c.handleFlowError(err, "company"); done {
					return nil
				}
			}
		case ChoiceExit:
			c.console.Say("Obrigado por utilizar o CarAssistant!")
			return nil
		default:
			c.console.Say("Opção inválida, tente novamente.")
		}
	}
}

// runRental composes the rental flow: questionnaire, extraction, filtering,
// then the selection sub-flow. An empty filter result ends the flow
// gracefully without retrying or relaxing criteria.
func (c *Controller) runRental(ctx context.Context) error {
	c.console.Say("\nVocê entrou no modo de Aluguel de Carros com filtro generativo.")
	c.console.Say("Irei fazer algumas perguntas para entender sua necessidade, apenas sobre os dados dos veículos.\n")

	answers, err := c.questionnaire.Run(ctx)
	if err != nil {
		return err
	}

	criteria := ExtractCriteria(answers, c.cfg)
	c.logger.Debug("criteria extracted", map[string]interface{}{
		"minPassengers": criteria.MinPassengers,
		"maxBudget":     criteria.MaxBudget,
		"type":          criteria.TypePreference,
	})

	cars, err := c.store.ListAvailableCars(ctx)
	if err != nil {
		return err
	}

	filtered := inventory.Filter(cars, criteria)
	if len(filtered) == 0 {
		c.console.Say("\nCarAssistant: Desculpe, não encontramos carros que correspondam aos seus critérios.")
		return nil
	}

	c.console.Say("\nCarAssistant: Com base nas suas respostas, encontrei as seguintes opções:")
	PrintCarList(c.console, filtered)

	return c.selection.Run(ctx, filtered)
}

// handleFlowError reports whether the session should end. Input exhaustion
// ends it; anything else is logged and the menu comes back.
func (c *Controller) handleFlowError(err error, flow string) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	c.logger.Error("flow aborted", map[string]interface{}{
		"flow":  flow,
		"code":  string(apperrors.CodeOf(err)),
		"error": err.Error(),
	})
	c.console.Say("\nCarAssistant: Ocorreu um problema ao processar sua solicitação. Voltando ao menu principal.")
	return false
}

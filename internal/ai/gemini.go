// internal/ai/gemini.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"carassist/internal/common/config"
	apperrors "carassist/internal/common/errors"
)

// GeminiProvider implements QuestionSource and AnswerSource using Google's
// Gemini models. One client backs three generation profiles, because the
// question, answer and summary calls carry different token caps and
// temperatures.
type GeminiProvider struct {
	client   *genai.Client
	question *genai.GenerativeModel
	answer   *genai.GenerativeModel
	summary  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client from configuration.
func NewGeminiProvider(ctx context.Context, cfg config.GenAIConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	question := client.GenerativeModel(cfg.Model)
	question.SetTemperature(cfg.Temperature)
	question.SetMaxOutputTokens(cfg.QuestionMaxTokens)

	answer := client.GenerativeModel(cfg.Model)
	answer.SetTemperature(cfg.Temperature)
	answer.SetMaxOutputTokens(cfg.AnswerMaxTokens)

	summary := client.GenerativeModel(cfg.Model)
	summary.SetTemperature(cfg.SummaryTemperature)
	summary.SetMaxOutputTokens(cfg.SummaryMaxTokens)

	return &GeminiProvider{
		client:   client,
		question: question,
		answer:   answer,
		summary:  summary,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// NextQuestion asks the model for a single objective filter question about
// the fleet, seeded with the transcript of previous rounds.
func (p *GeminiProvider) NextQuestion(ctx context.Context, history string) (string, error) {
	var b strings.Builder
	b.WriteString(
		"Você é um assistente especializado em aluguel de carros e precisa filtrar a melhor opção para o cliente. " +
			"Nossos veículos disponíveis costumam ter as seguintes características: " +
			"capacidade entre 4 e 5 passageiros, diária entre R$80 a R$150 e os tipos são Sedan, Hatch e SUV. " +
			"Baseando-se nessas informações, faça apenas uma pergunta objetiva que ajude a identificar a necessidade do cliente. " +
			"A pergunta deve estar relacionada a um dos seguintes critérios: número de passageiros, orçamento máximo ou preferência por tipo de carro. ")
	if history != "" {
		fmt.Fprintf(&b, "Histórico anterior de interação:\n%s\n", history)
	}
	b.WriteString("Forneça somente a pergunta.")

	text, err := p.generate(ctx, p.question, b.String())
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeCollaboratorFailed, "question generation failed", err)
	}
	return strings.TrimSpace(text), nil
}

// Answer responds to a company question using only the knowledge text, in
// the company's corporate voice.
func (p *GeminiProvider) Answer(ctx context.Context, companyName, knowledge, question string) (string, error) {
	prompt := fmt.Sprintf(
		"Você é um atendente da %s. Responda a seguinte pergunta com base exclusivamente nas informações abaixo, "+
			"utilizando a voz de representante da empresa (primeira pessoa do plural, por exemplo, 'nós', 'a %s').\n\n"+
			"Informações da empresa:\n%s\n\n"+
			"Pergunta: %s\n"+
			"Resposta:",
		companyName, companyName, knowledge, question)

	text, err := p.generate(ctx, p.answer, prompt)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeCollaboratorFailed, "company answer failed", err)
	}
	return text, nil
}

// Summarize condenses the session's recorded question/answer pairs.
func (p *GeminiProvider) Summarize(ctx context.Context, pairs []QA) (string, error) {
	var b strings.Builder
	b.WriteString("Baseado nas seguintes perguntas e respostas sobre a empresa, forneça um resumo dos principais pontos:\n")
	for i, qa := range pairs {
		fmt.Fprintf(&b, "%d. Pergunta: %s\n   Resposta: %s\n", i+1, qa.Question, qa.Answer)
	}
	b.WriteString("\nResumo:")

	text, err := p.generate(ctx, p.summary, b.String())
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeCollaboratorFailed, "summary failed", err)
	}
	return text, nil
}

func (p *GeminiProvider) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	if strings.TrimSpace(out.String()) == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return out.String(), nil
}

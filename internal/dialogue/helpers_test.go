// internal/dialogue/helpers_test.go
package dialogue

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"carassist/internal/ai"
	"carassist/internal/common/config"
	"carassist/internal/inventory"
	"carassist/internal/notify"
)

// ==========================
// Test Helper Functions
// ==========================

func testDialogueConfig() config.DialogueConfig {
	var cfg config.Config
	config.ApplyDefaults(&cfg)
	return cfg.Dialogue
}

// newScriptedConsole returns a console fed by the given lines; when the
// lines run out, Prompt returns io.EOF and the flow under test aborts
// instead of looping forever.
func newScriptedConsole(lines ...string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n"))
	return NewConsole(in, &out), &out
}

// stubQuestionSource replays a fixed script of questions and records the
// history it was called with.
type stubQuestionSource struct {
	questions []string
	calls     int
	histories []string
	err       error
}

func (s *stubQuestionSource) NextQuestion(_ context.Context, history string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.histories = append(s.histories, history)
	q := s.questions[s.calls%len(s.questions)]
	s.calls++
	return q, nil
}

// stubAnswerSource echoes deterministic answers and records what it saw.
type stubAnswerSource struct {
	answered   []ai.QA
	summarized [][]ai.QA
	answerErr  error
}

func (s *stubAnswerSource) Answer(_ context.Context, _, _, question string) (string, error) {
	if s.answerErr != nil {
		return "", s.answerErr
	}
	answer := fmt.Sprintf("resposta para %q", question)
	s.answered = append(s.answered, ai.QA{Question: question, Answer: answer})
	return answer, nil
}

func (s *stubAnswerSource) Summarize(_ context.Context, pairs []ai.QA) (string, error) {
	s.summarized = append(s.summarized, pairs)
	return "resumo das perguntas", nil
}

// stubStore serves a fixed inventory without a database.
type stubStore struct {
	cars    []inventory.Car
	company inventory.CompanyInfo
	carsErr error
	infoErr error
}

func (s *stubStore) ListAvailableCars(context.Context) ([]inventory.Car, error) {
	return s.cars, s.carsErr
}

func (s *stubStore) GetCompanyInfo(context.Context) (inventory.CompanyInfo, error) {
	return s.company, s.infoErr
}

// recordingNotifier captures bookings instead of calling AWS.
type recordingNotifier struct {
	bookings []notify.Booking
	err      error
}

func (n *recordingNotifier) NotifyBooking(_ context.Context, b notify.Booking) error {
	n.bookings = append(n.bookings, b)
	return n.err
}

// sampleFleet is the six-car reference inventory.
func sampleFleet() []inventory.Car {
	return []inventory.Car{
		{ID: 1, Brand: "Toyota", Model: "Corolla", Category: "Sedan", DailyRate: 100.0, Seats: 5, FuelType: "Gasolina", Available: true},
		{ID: 2, Brand: "Honda", Model: "Civic", Category: "Sedan", DailyRate: 120.0, Seats: 5, FuelType: "Gasolina", Available: true},
		{ID: 3, Brand: "Chevrolet", Model: "Onix", Category: "Hatch", DailyRate: 90.0, Seats: 5, FuelType: "Gasolina", Available: true},
		{ID: 4, Brand: "Jeep", Model: "Wrangler", Category: "SUV", DailyRate: 150.0, Seats: 5, FuelType: "Diesel", Available: true},
		{ID: 5, Brand: "Ford", Model: "EcoSport", Category: "SUV", DailyRate: 130.0, Seats: 5, FuelType: "Gasolina", Available: true},
		{ID: 6, Brand: "Fiat", Model: "Mobi", Category: "Hatch", DailyRate: 80.0, Seats: 4, FuelType: "Gasolina", Available: true},
	}
}

// internal/dialogue/selection.go
package dialogue

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"carassist/internal/common/logger"
	"carassist/internal/inventory"
	"carassist/internal/notify"
)

// RentalSelection exists only while the sub-flow runs; it is finalized on
// explicit confirmation and discarded on back-navigation or cancel.
type RentalSelection struct {
	Car       inventory.Car
	Days      int
	Total     float64
	Reference string
}

// SelectionFlow walks the user through picking a car from the filtered
// list, entering a rental duration, and confirming or going back:
//
//	Listing → Selecting → EnteringDuration → Confirming
//	                                         → Booked | BackToListing | Cancelled
//
// Nothing is persisted on Booked; the summary print and the optional
// notification are the whole effect.
type SelectionFlow struct {
	console  *Console
	notifier notify.Notifier
	logger   logger.Logger
}

func NewSelectionFlow(console *Console, notifier notify.Notifier, log logger.Logger) *SelectionFlow {
	return &SelectionFlow{
		console:  console,
		notifier: notifier,
		logger:   log.WithFields(map[string]interface{}{"flow": "selection"}),
	}
}

// Run starts at Selecting; the caller has already printed the listing once.
// It returns nil on both Booked and Cancelled, an error only when the
// console input is exhausted.
func (f *SelectionFlow) Run(ctx context.Context, cars []inventory.Car) error {
	for {
		choice, err := f.console.Prompt("\nDigite o ID do carro que deseja alugar ou 'cancelar' para abortar: ")
		if err != nil {
			return err
		}

		if strings.EqualFold(choice, "cancelar") {
			f.console.Say("CarAssistant: Operação cancelada. Voltando ao menu principal.")
			return nil
		}

		carID, err := strconv.Atoi(choice)
		if err != nil {
			f.console.Say("CarAssistant: Entrada inválida. Digite um número de ID ou 'cancelar'.")
			continue
		}

		selected, ok := findCar(cars, carID)
		if !ok {
			// Unmatched id re-enters Selecting, never aborts.
			f.console.Say("CarAssistant: ID inválido. Por favor, escolha um dos IDs listados.")
			continue
		}

		f.console.Say("\nCarAssistant: Você selecionou o carro %s %s.", selected.Brand, selected.Model)

		days, err := f.collectDays()
		if err != nil {
			return err
		}

		selection := RentalSelection{
			Car:   selected,
			Days:  days,
			Total: float64(days) * selected.DailyRate,
		}
		f.console.Say("CarAssistant: O valor total para %d dia(s) é de R$ %.2f.", selection.Days, selection.Total)

		done, err := f.confirm(ctx, selection, cars)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		// BackToListing: the list was re-displayed, loop back to Selecting.
	}
}

// collectDays reads a positive whole-day rental duration, re-prompting in
// place on invalid input.
func (f *SelectionFlow) collectDays() (int, error) {
	for {
		f.console.Say("CarAssistant: Por favor, informe o número de dias que deseja alugar o veículo:")
		input, err := f.console.Prompt("Você: ")
		if err != nil {
			return 0, err
		}
		if input == "" {
			f.console.Say("CarAssistant: Resposta inválida. Por favor, informe o número de dias.")
			continue
		}

		days, err := strconv.Atoi(input)
		if err != nil {
			f.console.Say("CarAssistant: Entrada inválida. Por favor, informe o número de dias em formato numérico.")
			continue
		}
		if days <= 0 {
			f.console.Say("CarAssistant: Por favor, informe um número válido de dias (maior que 0).")
			continue
		}
		return days, nil
	}
}

// confirm handles the Confirming state. It reports done=true on Booked and
// done=false after re-displaying the list for BackToListing.
func (f *SelectionFlow) confirm(ctx context.Context, selection RentalSelection, cars []inventory.Car) (bool, error) {
	for {
		input, err := f.console.Prompt("CarAssistant: Deseja confirmar a reserva? (Digite 'confirmar' para confirmar ou 'voltar' para escolher outro modelo): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(input) {
		case "confirmar":
			selection.Reference = uuid.New().String()
			f.printBookingSummary(selection)
			f.sendNotification(ctx, selection)
			return true, nil
		case "voltar":
			f.console.Say("CarAssistant: Vamos retornar à lista de opções. Por favor, escolha outro modelo.")
			f.console.Say("\nCarAssistant: Opções disponíveis:")
			PrintCarList(f.console, cars)
			return false, nil
		default:
			f.console.Say("CarAssistant: Resposta inválida. Por favor, digite 'confirmar' ou 'voltar'.")
		}
	}
}

func (f *SelectionFlow) printBookingSummary(s RentalSelection) {
	f.console.Say("CarAssistant: Seu carro foi reservado com sucesso! Obrigado por escolher nossos serviços.")
	f.console.Say("\nResumo da sua reserva:")
	f.console.Say("  Código da reserva: %s", s.Reference)
	f.console.Say("  Carro: %s %s", s.Car.Brand, s.Car.Model)
	f.console.Say("  Tipo: %s", s.Car.Category)
	f.console.Say("  Assentos: %d", s.Car.Seats)
	f.console.Say("  Combustível: %s", s.Car.FuelType)
	f.console.Say("  Diária: R$ %.2f", s.Car.DailyRate)
	f.console.Say("  Número de dias: %d", s.Days)
	f.console.Say("  Valor total: R$ %.2f", s.Total)
}

// sendNotification fires the optional confirmation; failures are logged and
// never reach the user.
func (f *SelectionFlow) sendNotification(ctx context.Context, s RentalSelection) {
	err := f.notifier.NotifyBooking(ctx, notify.Booking{
		Reference: s.Reference,
		Brand:     s.Car.Brand,
		Model:     s.Car.Model,
		Category:  s.Car.Category,
		Seats:     s.Car.Seats,
		FuelType:  s.Car.FuelType,
		DailyRate: s.Car.DailyRate,
		Days:      s.Days,
		Total:     s.Total,
	})
	if err != nil {
		f.logger.Warn("booking notification failed", map[string]interface{}{
			"reference": s.Reference,
			"error":     err.Error(),
		})
	}
}

// PrintCarList prints the filtered cars the way the listing state does.
func PrintCarList(console *Console, cars []inventory.Car) {
	for _, car := range cars {
		console.Say("ID: %d, %s %s - Tipo: %s, Diária: R$ %.2f, Passageiros: %d, Combustível: %s",
			car.ID, car.Brand, car.Model, car.Category, car.DailyRate, car.Seats, car.FuelType)
	}
}

func findCar(cars []inventory.Car, id int) (inventory.Car, bool) {
	for _, car := range cars {
		if car.ID == id {
			return car, true
		}
	}
	return inventory.Car{}, false
}

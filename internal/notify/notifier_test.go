// internal/notify/notifier_test.go
package notify

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carassist/internal/common/config"
	"carassist/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

type mockSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (m *mockSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.inputs = append(m.inputs, params)
	return &ses.SendEmailOutput{}, m.err
}

type mockSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (m *mockSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.inputs = append(m.inputs, params)
	return &sns.PublishOutput{}, m.err
}

func testBooking() Booking {
	return Booking{
		Reference: "ref-123",
		Brand:     "Honda",
		Model:     "Civic",
		Category:  "Sedan",
		Seats:     5,
		FuelType:  "Gasolina",
		DailyRate: 120.0,
		Days:      3,
		Total:     360.0,
	}
}

func testNotificationConfig() config.NotificationConfig {
	return config.NotificationConfig{
		Enabled:      true,
		AWSRegion:    "us-east-1",
		SenderEmail:  "reservas@carmax.example",
		BookingEmail: "cliente@example.com",
		BookingPhone: "+5511999990000",
	}
}

// ==========================
// AWSNotifier Tests
// ==========================

func TestAWSNotifier_SendsEmailAndSMS(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	notifier := NewAWSNotifierWithClients(testNotificationConfig(), sesMock, snsMock, logger.NewTestLogger(t))

	err := notifier.NotifyBooking(context.Background(), testBooking())
	require.NoError(t, err)

	require.Len(t, sesMock.inputs, 1)
	email := sesMock.inputs[0]
	assert.Equal(t, "reservas@carmax.example", *email.Source)
	assert.Equal(t, []string{"cliente@example.com"}, email.Destination.ToAddresses)
	assert.Equal(t, "Reserva confirmada - Honda Civic", *email.Message.Subject.Data)
	assert.Contains(t, *email.Message.Body.Text.Data, "Reserva ref-123 confirmada.")
	assert.Contains(t, *email.Message.Body.Text.Data, "Total: R$ 360.00")

	require.Len(t, snsMock.inputs, 1)
	sms := snsMock.inputs[0]
	assert.Equal(t, "+5511999990000", *sms.PhoneNumber)
	assert.Contains(t, *sms.Message, "Carro: Honda Civic (Sedan)")
}

func TestAWSNotifier_EmailOnly(t *testing.T) {
	cfg := testNotificationConfig()
	cfg.BookingPhone = ""
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	notifier := NewAWSNotifierWithClients(cfg, sesMock, snsMock, logger.NewTestLogger(t))

	err := notifier.NotifyBooking(context.Background(), testBooking())
	require.NoError(t, err)
	assert.Len(t, sesMock.inputs, 1)
	assert.Empty(t, snsMock.inputs)
}

func TestAWSNotifier_SMSOnly(t *testing.T) {
	cfg := testNotificationConfig()
	cfg.BookingEmail = ""
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	notifier := NewAWSNotifierWithClients(cfg, sesMock, snsMock, logger.NewTestLogger(t))

	err := notifier.NotifyBooking(context.Background(), testBooking())
	require.NoError(t, err)
	assert.Empty(t, sesMock.inputs)
	assert.Len(t, snsMock.inputs, 1)
}

func TestAWSNotifier_NoRecipientsIsNoop(t *testing.T) {
	cfg := testNotificationConfig()
	cfg.BookingEmail = ""
	cfg.BookingPhone = ""
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	notifier := NewAWSNotifierWithClients(cfg, sesMock, snsMock, logger.NewTestLogger(t))

	err := notifier.NotifyBooking(context.Background(), testBooking())
	require.NoError(t, err)
	assert.Empty(t, sesMock.inputs)
	assert.Empty(t, snsMock.inputs)
}

func TestAWSNotifier_SESFailureSkipsSMS(t *testing.T) {
	sesMock := &mockSES{err: assert.AnError}
	snsMock := &mockSNS{}
	notifier := NewAWSNotifierWithClients(testNotificationConfig(), sesMock, snsMock, logger.NewTestLogger(t))

	err := notifier.NotifyBooking(context.Background(), testBooking())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ses send failed")
	assert.Empty(t, snsMock.inputs)
}

func TestAWSNotifier_SNSFailure(t *testing.T) {
	snsMock := &mockSNS{err: assert.AnError}
	notifier := NewAWSNotifierWithClients(testNotificationConfig(), &mockSES{}, snsMock, logger.NewTestLogger(t))

	err := notifier.NotifyBooking(context.Background(), testBooking())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sns publish failed")
}

func TestNoopNotifier(t *testing.T) {
	assert.NoError(t, NoopNotifier{}.NotifyBooking(context.Background(), testBooking()))
}

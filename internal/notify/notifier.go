// internal/notify/notifier.go
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"carassist/internal/common/config"
	"carassist/internal/common/logger"
)

// Booking carries the confirmed reservation details for the notification.
type Booking struct {
	Reference string
	Brand     string
	Model     string
	Category  string
	Seats     int
	FuelType  string
	DailyRate float64
	Days      int
	Total     float64
}

// Notifier delivers a booking confirmation out of band. The booking itself
// is never persisted; a notifier failure must not block the console summary.
type Notifier interface {
	NotifyBooking(ctx context.Context, booking Booking) error
}

// SESService and SNSService narrow the AWS clients for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// AWSNotifier sends the confirmation by SES email and/or SNS SMS, depending
// on which recipients are configured.
type AWSNotifier struct {
	cfg    config.NotificationConfig
	ses    SESService
	sns    SNSService
	logger logger.Logger
}

func NewAWSNotifier(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*AWSNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &AWSNotifier{
		cfg:    cfg,
		ses:    ses.NewFromConfig(awsCfg),
		sns:    sns.NewFromConfig(awsCfg),
		logger: log.WithFields(map[string]interface{}{"component": "notify"}),
	}, nil
}

// NewAWSNotifierWithClients wires pre-built clients; used by tests.
func NewAWSNotifierWithClients(cfg config.NotificationConfig, sesClient SESService, snsClient SNSService, log logger.Logger) *AWSNotifier {
	return &AWSNotifier{cfg: cfg, ses: sesClient, sns: snsClient, logger: log}
}

func (n *AWSNotifier) NotifyBooking(ctx context.Context, booking Booking) error {
	body := renderBookingMessage(booking)

	if n.cfg.BookingEmail != "" {
		_, err := n.ses.SendEmail(ctx, &ses.SendEmailInput{
			Source: aws.String(n.cfg.SenderEmail),
			Destination: &types.Destination{
				ToAddresses: []string{n.cfg.BookingEmail},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data: aws.String(fmt.Sprintf("Reserva confirmada - %s %s", booking.Brand, booking.Model)),
				},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		})
		if err != nil {
			return fmt.Errorf("ses send failed: %w", err)
		}
		n.logger.Info("booking email sent", map[string]interface{}{"reference": booking.Reference})
	}

	if n.cfg.BookingPhone != "" {
		_, err := n.sns.Publish(ctx, &sns.PublishInput{
			PhoneNumber: aws.String(n.cfg.BookingPhone),
			Message:     aws.String(body),
		})
		if err != nil {
			return fmt.Errorf("sns publish failed: %w", err)
		}
		n.logger.Info("booking sms sent", map[string]interface{}{"reference": booking.Reference})
	}

	return nil
}

func renderBookingMessage(b Booking) string {
	return fmt.Sprintf(
		"Reserva %s confirmada.\nCarro: %s %s (%s)\nAssentos: %d\nCombustível: %s\nDiária: R$ %.2f\nDias: %d\nTotal: R$ %.2f\n",
		b.Reference, b.Brand, b.Model, b.Category, b.Seats, b.FuelType, b.DailyRate, b.Days, b.Total,
	)
}

// NoopNotifier is used when notifications are disabled.
type NoopNotifier struct{}

func (NoopNotifier) NotifyBooking(context.Context, Booking) error { return nil }

package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"text/template"

	"appointment-gateway/internal/domain/notification"
	"appointment-gateway/internal/pkg/config"
	"appointment-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

const FailureSubject = "Appointment Issue"

var failedAppointmentTmpl = template.Must(template.New("failed_appointment").Parse(`
Dear Service Desk,

the following appointment failed to be created. Please check and verify.
Requested Appointment:
{{.Payload}}
Error occurred:
{{.Message}}

Best Regards,

GaaS
`))

type mailNotifier struct {
	mailer Mailer
	from   string
	to     string
	logger *slog.Logger
}

func NewFailureNotifier(mailer Mailer, cfg config.MailingConfig, logger *slog.Logger) FailureNotifier {
	return &mailNotifier{
		mailer: mailer,
		from:   cfg.Sender,
		to:     cfg.Receiver,
		logger: logger,
	}
}

func (n *mailNotifier) Notify(ctx context.Context, payload any, message string) {
	notificationID := uuid.NewString()

	body, err := RenderFailure(payload, message)
	if err != nil {
		n.logger.Error("failed to render failure notification",
			slog.String("notification_id", notificationID),
			slog.String("error", err.Error()))
		return
	}

	req := notification.PinpointRequest{
		Provider: notification.ProviderAppointment,
		Email: notification.Email{
			From:     n.from,
			To:       n.to,
			Subject:  FailureSubject,
			TextBody: body,
		},
	}
	if err := n.mailer.NotifyByPinpoint(ctx, req); err != nil {
		n.logger.Error("failed to send failure notification",
			slog.String("notification_id", notificationID),
			slog.String("error", err.Error()))
		return
	}

	n.logger.Info("failure notification sent",
		slog.String("notification_id", notificationID),
		slog.String("reason", message))
}

// RenderFailure renders the service desk mail body for a failed request.
func RenderFailure(payload any, message string) (string, error) {
	formatted, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errs.Wrap(err, "failed to format payload")
	}

	var buf bytes.Buffer
	err = failedAppointmentTmpl.Execute(&buf, struct {
		Payload string
		Message string
	}{Payload: string(formatted), Message: message})
	if err != nil {
		return "", errs.Wrap(err, "failed to render template")
	}
	return buf.String(), nil
}

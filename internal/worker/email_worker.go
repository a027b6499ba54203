package worker

// Processes reservation notification emails from QueueEmail.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"restopanel/internal/infra"
)

// EmailWorker delivers EmailJob payloads through SMTP.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends one notification email. Without SMTP configuration the job
// is logged and dropped so mock deployments stay silent but functional.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var job EmailJob
	if err := json.Unmarshal(raw, &job); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if job.To == "" {
		log.Warn().Msg("email_worker: empty recipient, skipping")
		return
	}
	if !w.mailer.Configured() {
		log.Info().Str("to", job.To).Str("subject", job.Subject).Msg("email_worker: smtp not configured, dropping")
		return
	}

	if err := w.mailer.Send(job.To, job.Subject, job.Body, ""); err != nil {
		log.Error().Err(err).Str("to", job.To).Msg("email_worker: failed to send email")
		return
	}
	log.Info().Str("to", job.To).Msg("email_worker: notification sent")
}

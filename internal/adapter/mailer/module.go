package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/academiq/academiq/internal/config"
	"github.com/academiq/academiq/internal/usecase"
)

// Module exposes the notifier implementation to the fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) (usecase.Notifier, error) {
	if p.Config.SMTPHost == "" || p.Config.AdminEmail == "" {
		// Configuration problems surface here, once, instead of being
		// swallowed on every request.
		p.Logger.Warn("notifications disabled: SMTP_HOST and ADMIN_EMAIL must both be set")
		return DisabledNotifier{}, nil
	}

	return NewSMTPNotifier(
		p.Config.SMTPHost,
		p.Config.SMTPPort,
		p.Config.SMTPUsername,
		p.Config.SMTPPassword,
		p.Config.FromEmail,
		p.Config.AdminEmail,
		p.Config.NotifyTimeout,
		p.Logger,
	)
}

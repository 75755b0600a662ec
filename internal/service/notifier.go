package service

import (
	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/templates"

	"go.uber.org/zap"
)

// NotificationPusher forwards a stored notification to the user's live
// sessions.
type NotificationPusher interface {
	PushNotification(email string, n models.Notification)
}

// Notifier runs the side effects that follow a committed write. Every method
// swallows and logs its own failure; callers never branch on the outcome.
// Nil collaborators are skipped.
type Notifier struct {
	mailer  Mailer
	alerter AdminAlerter
	pusher  NotificationPusher
	logger  *zap.Logger
}

func NewNotifier(mailer Mailer, alerter AdminAlerter, pusher NotificationPusher, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{mailer: mailer, alerter: alerter, pusher: pusher, logger: logger}
}

func (n *Notifier) SendMail(to string, mail *templates.Email) {
	if n == nil || n.mailer == nil || mail == nil {
		return
	}
	if err := n.mailer.Send(to, mail.Subject, mail.HTML); err != nil {
		n.logger.Warn("email delivery failed", zap.String("to", to), zap.String("subject", mail.Subject), zap.Error(err))
		return
	}
	n.logger.Info("email sent", zap.String("to", to), zap.String("subject", mail.Subject))
}

func (n *Notifier) AlertAdmins(message string) {
	if n == nil || n.alerter == nil {
		return
	}
	if err := n.alerter.AlertAdmins(message); err != nil {
		n.logger.Warn("admin alert failed", zap.Error(err))
	}
}

func (n *Notifier) Push(email string, notification *models.Notification) {
	if n == nil || n.pusher == nil || notification == nil {
		return
	}
	n.pusher.PushNotification(email, *notification)
}

// RenderFailed logs a template error; the message is skipped.
func (n *Notifier) RenderFailed(name string, err error) {
	if n == nil {
		return
	}
	n.logger.Error("failed to render email", zap.String("template", name), zap.Error(err))
}

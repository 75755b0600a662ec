package service

import (
	"errors"
	"testing"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/templates"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotifierLogsDeliveryFailures(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mailer := &recordingMailer{err: errors.New("535 auth failed")}
	n := NewNotifier(mailer, nil, nil, zap.New(core))

	n.SendMail("jane@example.com", &templates.Email{Subject: "hi", HTML: "<p>hi</p>"})
	n.AlertAdmins("ignored")
	n.Push("jane@example.com", &models.Notification{ID: "n1"})

	entries := logs.FilterMessage("email delivery failed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "jane@example.com", entries[0].ContextMap()["to"])
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() {
		n.SendMail("a@b.c", &templates.Email{})
		n.AlertAdmins("x")
		n.Push("a@b.c", &models.Notification{})
		n.RenderFailed("x", errors.New("y"))
	})
}

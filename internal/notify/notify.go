// Package notify доставляет события переходов состояния во внешний чат-транспорт.
package notify

import (
	"context"
	"errors"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/sirupsen/logrus"
)

// Notifier совпадает с service.Notifier, объявлен здесь, чтобы не тянуть сервисный слой.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// LogNotifier пишет уведомления в лог. Используется, когда брокер не настроен.
type LogNotifier struct {
	l *logrus.Entry
}

func NewLogNotifier(l *logrus.Logger) *LogNotifier {
	return &LogNotifier{l: l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "log",
	})}
}

func (n *LogNotifier) Notify(_ context.Context, msg domain.Notification) error {
	n.l.WithFields(logrus.Fields{
		"kind":      msg.Kind,
		"recipient": msg.RecipientID,
		"entity":    msg.Entity,
		"entityID":  msg.EntityID,
	}).Info("notification")
	return nil
}

// Multi рассылает уведомление всем получателям. Ошибка одного не мешает остальным.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, msg domain.Notification) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

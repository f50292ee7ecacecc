// Package notifier публикует события обращений к профессионалам.
package notifier

import (
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/khussac/proconnect-api/internal/lib/rabbitmq"
	"github.com/khussac/proconnect-api/internal/lib/sl"
)

// ContactEvent событие сформированной ссылки для связи.
type ContactEvent struct {
	ProfessionalID int       `json:"professionalId"`
	Service        string    `json:"service,omitempty"`
	RequestedAt    time.Time `json:"requestedAt"`
}

// Notifier отправляет события обращений.
type Notifier interface {
	ContactRequested(event ContactEvent)
}

// Rabbit публикует события в RabbitMQ.
type Rabbit struct {
	ch       *amqp.Channel
	exchange string
	log      *slog.Logger
}

// NewRabbit создает издателя событий поверх открытого канала.
func NewRabbit(ch *amqp.Channel, exchange string, log *slog.Logger) *Rabbit {
	return &Rabbit{ch: ch, exchange: exchange, log: log}
}

// ContactRequested публикует событие обращения. Ошибка публикации не
// прерывает выдачу ссылки клиенту и только логируется.
func (r *Rabbit) ContactRequested(event ContactEvent) {
	queues := rabbitmq.GetContactQueues()
	if err := rabbitmq.PublishMessage(r.ch, r.exchange, queues[0].RoutingKey, event); err != nil {
		r.log.Warn("failed to publish contact event",
			slog.Int("professional_id", event.ProfessionalID), sl.Err(err))
	}
}

// Noop отбрасывает события, используется при отключенном брокере.
type Noop struct{}

// ContactRequested реализует Notifier.
func (Noop) ContactRequested(ContactEvent) {}

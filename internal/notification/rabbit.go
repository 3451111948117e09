package notification

import (
	"context"
	"log"
	"time"

	"github.com/asapgetaway/travel-booking/internal/service"
	"github.com/asapgetaway/travel-booking/pkg/rabbitmq"
)

// RabbitNotifier implements service.Notifier by publishing mail jobs to the
// notifications exchange. A nil publisher (RabbitMQ unreachable at startup)
// degrades to log-and-skip so booking operations keep working.
type RabbitNotifier struct {
	publisher *rabbitmq.Publisher
}

func NewRabbitNotifier(publisher *rabbitmq.Publisher) *RabbitNotifier {
	return &RabbitNotifier{publisher: publisher}
}

type mailJob struct {
	To     string            `json:"to"`
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
	SentAt time.Time         `json:"sent_at"`
}

func (n *RabbitNotifier) Send(ctx context.Context, to string, kind service.NotificationKind, params map[string]string) bool {
	if n.publisher == nil {
		log.Printf("[Notifier] disabled, dropping %s to %s", kind, to)
		return false
	}
	if to == "" {
		log.Printf("[Notifier] no address for %s, dropping", kind)
		return false
	}
	if err := ctx.Err(); err != nil {
		log.Printf("[Notifier] context done, dropping %s to %s", kind, to)
		return false
	}

	job := mailJob{
		To:     to,
		Kind:   string(kind),
		Params: params,
		SentAt: time.Now(),
	}
	if err := n.publisher.Publish("notify."+string(kind), job); err != nil {
		log.Printf("[Notifier] failed to publish %s to %s: %v", kind, to, err)
		return false
	}
	return true
}

package handlers

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"robomua/aiysha-bot/internal/bot"
	"robomua/aiysha-bot/internal/metrics"
	"robomua/aiysha-bot/internal/whatsapp"
)

const reEngageBody = "Looks like my last message didn’t make it through. I’m still here whenever you’re ready to continue your beauty journey! ✨"

// Dispatcher routes one inbound event to its intent handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev bot.Event) ([]whatsapp.Payload, error)
}

// Deliverer sends an ordered payload sequence, best effort.
type Deliverer interface {
	Deliver(ctx context.Context, payloads []whatsapp.Payload)
}

// Worker drains the webhook queue with exactly one consumer, processing
// events end-to-end in arrival order. That single consumer is what makes the
// session store safe without further locking; widening it requires sharding
// the store first.
type Worker struct {
	queue      chan whatsapp.WebhookPayload
	dispatcher Dispatcher
	sender     Deliverer
	log        *zap.Logger
}

func NewWorker(buffer int, dispatcher Dispatcher, sender Deliverer, log *zap.Logger) *Worker {
	return &Worker{
		queue:      make(chan whatsapp.WebhookPayload, buffer),
		dispatcher: dispatcher,
		sender:     sender,
		log:        log,
	}
}

// Enqueue hands one payload to the worker without ever blocking the webhook
// handler: the platform expects its POST acknowledged immediately, and it
// redelivers anything we report dropped. Returns false when the queue is full.
func (w *Worker) Enqueue(payload whatsapp.WebhookPayload) bool {
	select {
	case w.queue <- payload:
		return true
	default:
		metrics.EventsDropped.Inc()
		return false
	}
}

// Run blocks until ctx is canceled.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload := <-w.queue:
			w.process(ctx, payload)
		}
	}
}

// process owns the per-event error boundary: a failed or panicking event is
// logged and dropped, the queue keeps moving.
func (w *Worker) process(ctx context.Context, payload whatsapp.WebhookPayload) {
	defer func() {
		if r := recover(); r != nil {
			metrics.EventsFailed.Inc()
			w.log.Error("panic while processing event", zap.Any("panic", r))
		}
	}()

	if len(payload.Entry) == 0 || len(payload.Entry[0].Changes) == 0 {
		metrics.EventsFailed.Inc()
		w.log.Error("malformed webhook payload: no entry changes")
		return
	}
	value := payload.Entry[0].Changes[0].Value

	if len(value.Statuses) > 0 {
		w.processStatuses(ctx, value.Statuses)
		return
	}
	if len(value.Messages) == 0 || len(value.Contacts) == 0 {
		metrics.EventsFailed.Inc()
		w.log.Error("webhook value carries neither statuses nor messages")
		return
	}

	msg := value.Messages[0]
	ev := bot.Event{
		From:      msg.From,
		MessageID: msg.ID,
		Name:      value.Contacts[0].Profile.Name,
		NumberID:  value.Metadata.PhoneNumberID,
		Text:      whatsapp.MessageText(msg),
	}

	log := w.log.With(
		zap.String("event_id", uuid.NewString()),
		zap.String("from", ev.From),
		zap.String("type", msg.Type),
	)
	log.Info("processing message")

	payloads, err := w.dispatcher.Dispatch(ctx, ev)
	if err != nil {
		metrics.EventsFailed.Inc()
		log.Error("error processing message", zap.Error(err))
		return
	}
	w.sender.Deliver(ctx, payloads)
}

// processStatuses reacts to delivery-status callbacks: a failed outbound send
// (an expired session window, usually) earns the user a re-engagement text.
func (w *Worker) processStatuses(ctx context.Context, statuses []whatsapp.Status) {
	for _, status := range statuses {
		if status.Status != "failed" {
			continue
		}
		w.log.Warn("outbound message failed, re-engaging",
			zap.String("recipient", status.RecipientID),
			zap.String("message_id", status.ID))
		w.sender.Deliver(ctx, []whatsapp.Payload{
			whatsapp.TextMessage(status.RecipientID, reEngageBody),
		})
	}
}

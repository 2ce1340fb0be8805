package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/aidex-platform/aidex-server/internal/entity"
)

type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	notificationsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		notificationsTopic: topic,
	}
}

type NotificationEvent struct {
	Type       string   `json:"type"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// SendRequestAccepted notifies the requester that a donor picked up their
// donation request. Fire and forget: a lost notification never fails the
// accept itself.
func (p *Producer) SendRequestAccepted(ctx context.Context, req entity.DonationRequest, donor entity.User) {
	event := NotificationEvent{
		Type:    "email",
		Subject: "A donor accepted your blood donation request",
		Message: fmt.Sprintf("%s (%s) accepted your request for %s at %s on %s %s.",
			donor.Name, donor.Email, req.BloodGroup, req.Hospital, req.DonationDate, req.DonationTime),
		Recipients: []string{req.RequesterEmail},
	}

	p.send(ctx, req.ID.String(), event)
}

// SendFundRecorded confirms a completed contribution to the payer.
func (p *Producer) SendFundRecorded(ctx context.Context, fund entity.Fund) {
	event := NotificationEvent{
		Type:       "email",
		Subject:    "Thank you for your contribution",
		Message:    fmt.Sprintf("Your contribution of %s has been recorded. Transaction: %s.", fund.Amount.String(), fund.TransactionID),
		Recipients: []string{fund.Email},
	}

	p.send(ctx, fund.TransactionID, event)
}

func (p *Producer) send(ctx context.Context, key string, event NotificationEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.notificationsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, args ...any) {
	l.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...))
}

// Package events defines the topics and payloads published on the
// in-process bus. Two things happen in this application that other
// components care about: a bank gets linked, and a transfer completes.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/horizonbank/horizon/internal/pubsub"
)

// Bus topics.
const (
	TopicBankLinked      = "bank.linked"
	TopicTransferCreated = "transfer.created"
)

// BankLinked is published after a public token has been exchanged and the
// backend holds a permanent credential for the new accounts.
type BankLinked struct {
	EventID  string    `json:"event_id"`
	UserID   string    `json:"user_id"`
	LinkedAt time.Time `json:"linked_at"`
}

// TransferCreated is published after a transfer and its ledger entry have
// both been recorded.
type TransferCreated struct {
	EventID       string    `json:"event_id"`
	UserID        string    `json:"user_id"`
	SourceID      string    `json:"source_id"`
	DestinationID string    `json:"destination_id"`
	Amount        string    `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublishBankLinked emits a BankLinked event for the given user.
func PublishBankLinked(ctx context.Context, pub pubsub.Publisher, userID string) error {
	payload, err := json.Marshal(BankLinked{
		EventID:  uuid.NewString(),
		UserID:   userID,
		LinkedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return pub.Publish(ctx, pubsub.Message{
		Topic:   TopicBankLinked,
		UserID:  userID,
		Payload: payload,
	})
}

// PublishTransferCreated emits a TransferCreated event.
func PublishTransferCreated(ctx context.Context, pub pubsub.Publisher, evt TransferCreated) error {
	evt.EventID = uuid.NewString()
	evt.CreatedAt = time.Now().UTC()
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return pub.Publish(ctx, pubsub.Message{
		Topic:   TopicTransferCreated,
		UserID:  evt.UserID,
		Payload: payload,
	})
}

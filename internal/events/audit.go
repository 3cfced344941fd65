package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/horizonbank/horizon/internal/pubsub"
)

// RegisterAuditLog subscribes a structured-log audit trail to both event
// topics. It is the permanent record of account linking and transfer
// activity on this instance.
func RegisterAuditLog(ctx context.Context, sub pubsub.Subscriber) error {
	if err := sub.Subscribe(ctx, TopicBankLinked, auditBankLinked); err != nil {
		return err
	}
	return sub.Subscribe(ctx, TopicTransferCreated, auditTransferCreated)
}

func auditBankLinked(ctx context.Context, msg pubsub.Message) error {
	var evt BankLinked
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return err
	}
	slog.Info("Bank linked", "event_id", evt.EventID, "user_id", evt.UserID, "linked_at", evt.LinkedAt)
	return nil
}

func auditTransferCreated(ctx context.Context, msg pubsub.Message) error {
	var evt TransferCreated
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return err
	}
	slog.Info("Transfer created",
		"event_id", evt.EventID,
		"user_id", evt.UserID,
		"source", evt.SourceID,
		"destination", evt.DestinationID,
		"amount", evt.Amount,
	)
	return nil
}

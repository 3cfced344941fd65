package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/horizonbank/horizon/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankLinkedRoundTrip(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	t.Cleanup(func() { bridge.Close() })

	received := make(chan pubsub.Message, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bridge.Subscribe(ctx, TopicBankLinked, func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, PublishBankLinked(ctx, bridge, "7"))

	select {
	case msg := <-received:
		assert.Equal(t, TopicBankLinked, msg.Topic)
		assert.Equal(t, "7", msg.UserID)

		var evt BankLinked
		require.NoError(t, json.Unmarshal(msg.Payload, &evt))
		assert.Equal(t, "7", evt.UserID)
		assert.NotEmpty(t, evt.EventID)
		assert.WithinDuration(t, time.Now().UTC(), evt.LinkedAt, time.Minute)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bank.linked event")
	}
}

func TestTransferCreatedRoundTrip(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	t.Cleanup(func() { bridge.Close() })

	received := make(chan TransferCreated, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bridge.Subscribe(ctx, TopicTransferCreated, func(ctx context.Context, msg pubsub.Message) error {
		var evt TransferCreated
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		received <- evt
		return nil
	}))

	require.NoError(t, PublishTransferCreated(ctx, bridge, TransferCreated{
		UserID:        "7",
		SourceID:      "aaa",
		DestinationID: "bbb",
		Amount:        "25.00",
	}))

	select {
	case evt := <-received:
		assert.Equal(t, "aaa", evt.SourceID)
		assert.Equal(t, "bbb", evt.DestinationID)
		assert.Equal(t, "25.00", evt.Amount)
		assert.NotEmpty(t, evt.EventID, "publisher assigns the event id")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for transfer.created event")
	}
}

// Two independent subscriptions on the same topic both see every message.
func TestFanOutToMultipleSubscribers(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	t.Cleanup(func() { bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)
	require.NoError(t, bridge.Subscribe(ctx, TopicBankLinked, func(ctx context.Context, msg pubsub.Message) error {
		first <- struct{}{}
		return nil
	}))
	require.NoError(t, bridge.Subscribe(ctx, TopicBankLinked, func(ctx context.Context, msg pubsub.Message) error {
		second <- struct{}{}
		return nil
	}))

	require.NoError(t, PublishBankLinked(ctx, bridge, "7"))

	for name, ch := range map[string]chan struct{}{"first": first, "second": second} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("%s subscriber never saw the event", name)
		}
	}
}

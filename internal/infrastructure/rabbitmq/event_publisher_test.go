package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/event"
)

func TestPublishBatch_EmptyInput_TouchesNoTransport(t *testing.T) {
	// A zero-value publisher has no channel; an empty batch must still succeed
	// without ever reaching for it.
	p := &EventPublisher{}

	err := p.PublishBatch(context.Background(), nil)

	assert.NoError(t, err)
}

func TestEnvelope_WireShape(t *testing.T) {
	e := event.NewCreated("u1", "John", "j@x.com", "123", "555")

	body, err := json.Marshal(envelope{
		EventType:  string(e.Kind()),
		OccurredOn: e.OccurredAt().UTC().Format(time.RFC3339Nano),
		Data:       e,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "deliveryman.created", decoded["eventType"])
	assert.NotEmpty(t, decoded["occurredOn"])

	data, ok := decoded["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u1", data["deliveryManId"])
	assert.Equal(t, "John", data["name"])
	assert.Equal(t, "j@x.com", data["email"])
}

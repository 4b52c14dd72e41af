package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/suggestion-board/board/types"
)

// Publisher sends raw payloads to a named channel. *mq.MQ satisfies it.
type Publisher interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
}

// ActivityRecorder publishes an ActivityEvent for every board mutation.
// A nil recorder records nothing. Publish failures are logged and dropped so
// they never fail the request that caused them.
type ActivityRecorder struct {
	publisher Publisher
	channel   string
	now       func() time.Time
}

func NewActivityRecorder(publisher Publisher, channel string) *ActivityRecorder {
	return &ActivityRecorder{publisher: publisher, channel: channel, now: time.Now}
}

func (a *ActivityRecorder) Record(ctx context.Context, kind types.ActivityKind, userID, suggestionID int) {
	if a == nil || a.publisher == nil {
		return
	}

	event := types.ActivityEvent{
		ID:           uuid.NewString(),
		Kind:         kind,
		UserID:       userID,
		SuggestionID: suggestionID,
		OccurredAt:   a.now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		slog.WarnContext(ctx, "encode activity event", "kind", kind, "error", err)
		return
	}

	if _, err := a.publisher.Publish(ctx, a.channel, data, map[string]string{"kind": string(kind)}); err != nil {
		slog.WarnContext(ctx, "publish activity event", "kind", kind, "channel", a.channel, "error", err)
	}
}

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

const welcomeType = "welcome"

// Subscribe dials the /ws feed at url and calls fn for every event until
// the connection drops or ctx is cancelled. The welcome frame is skipped.
func Subscribe(ctx context.Context, url string, fn func(Event)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read event: %w", err)
		}
		var e Event
		if err := json.Unmarshal(msg, &e); err != nil {
			continue
		}
		if e.Type == welcomeType {
			continue
		}
		fn(e)
	}
}

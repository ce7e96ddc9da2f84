// Package llm is the boundary to the hosted completion service.
package llm

import (
	"context"

	"palaver/internal/store"
)

// Client produces one reply for an ordered message sequence. The sequence is
// sent as-is: callers are responsible for substituting the effective system
// message before the call.
type Client interface {
	Complete(ctx context.Context, messages []store.Message) (string, error)
}

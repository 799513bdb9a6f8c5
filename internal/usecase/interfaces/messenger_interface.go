package interfaces

import (
	"context"

	"autocare/internal/domain/entities"
)

// IMessenger delivers an unsolicited prompt to a user through the external
// chat transport. Replies to inbound updates do not go through here; they
// are returned synchronously by the session coordinator.
type IMessenger interface {
	SendPrompt(ctx context.Context, userID string, prompt entities.Prompt) error
}

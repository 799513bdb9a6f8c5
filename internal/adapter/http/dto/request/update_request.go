package request

import (
	"errors"
	"strings"

	"autocare/internal/domain/entities"
)

var ErrEmptyUpdate = errors.New("update carries no input")

// UpdateRequest is the inbound chat update forwarded by the messenger
// gateway. Exactly one user turn: free text, a button press, or a photo.
type UpdateRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Text     string `json:"text"`
	ButtonID string `json:"button_id"`
	PhotoRef string `json:"photo_ref"`
}

// Payload translates the wire fields into the engine's input. Whitespace-only
// text is treated as absent.
func (r UpdateRequest) Payload() (entities.Payload, error) {
	p := entities.Payload{
		Text:     strings.TrimSpace(r.Text),
		ButtonID: strings.TrimSpace(r.ButtonID),
		PhotoRef: strings.TrimSpace(r.PhotoRef),
	}
	if p.Text == "" && p.ButtonID == "" && p.PhotoRef == "" {
		return entities.Payload{}, ErrEmptyUpdate
	}
	return p, nil
}

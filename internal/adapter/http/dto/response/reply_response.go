package response

import (
	"encoding/base64"

	"autocare/internal/domain/entities"
)

type ButtonResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type DocumentResponse struct {
	Name    string `json:"name"`
	MIME    string `json:"mime"`
	Content string `json:"content"` // base64
}

// ReplyResponse is the bot's reply to an update: the text to show, optional
// buttons, and an optional document attachment.
type ReplyResponse struct {
	Text     string            `json:"text"`
	Buttons  []ButtonResponse  `json:"buttons,omitempty"`
	Document *DocumentResponse `json:"document,omitempty"`
}

func FromPrompt(p entities.Prompt) ReplyResponse {
	r := ReplyResponse{Text: p.Text}
	for _, b := range p.Buttons {
		r.Buttons = append(r.Buttons, ButtonResponse{ID: b.ID, Label: b.Label})
	}
	if p.Document != nil {
		r.Document = &DocumentResponse{
			Name:    p.Document.Name,
			MIME:    p.Document.MIME,
			Content: base64.StdEncoding.EncodeToString(p.Document.Content),
		}
	}
	return r
}

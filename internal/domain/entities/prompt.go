package entities

// Button is one inline action the transport should render with a prompt.
type Button struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Document is a downloadable artifact attached to a prompt (e.g. the CSV
// export). The transport decides how to deliver it.
type Document struct {
	Name    string `json:"name"`
	MIME    string `json:"mime"`
	Content []byte `json:"content"`
}

// Prompt is one outbound message: text plus optional buttons and an
// optional document. An all-zero Prompt means "send nothing".
type Prompt struct {
	Text     string    `json:"text"`
	Buttons  []Button  `json:"buttons,omitempty"`
	Document *Document `json:"document,omitempty"`
}

// IsZero reports whether the prompt carries nothing to send.
func (p Prompt) IsZero() bool {
	return p.Text == "" && len(p.Buttons) == 0 && p.Document == nil
}

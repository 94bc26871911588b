package dto

// MessageRequest represents the API request for settling a bot announcement
type MessageRequest struct {
	Text      string `json:"text" binding:"required"`
	Timestamp string `json:"timestamp" binding:"required"`
}

// MessageResponse represents the API response for a settled announcement
type MessageResponse struct {
	RunID       string   `json:"runId"`
	MessageType string   `json:"messageType"`
	Game        string   `json:"game,omitempty"`
	Players     []string `json:"players,omitempty"`
	Amount      string   `json:"amount,omitempty"`
	Duplicate   bool     `json:"duplicate"`
}

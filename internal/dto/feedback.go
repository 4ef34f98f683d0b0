package dto

// FeedbackRequest carries the note text for create and update
type FeedbackRequest struct {
	Description string `json:"description"`
}

// FeedbackResponse represents a feedback note
type FeedbackResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// FeedbackListResponse envelope
type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
}

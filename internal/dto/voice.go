package dto

// ChatRequest is a typed message for the assistant
type ChatRequest struct {
	Message string `json:"message"`
}

// AssistantResponse is the reply relayed from the automation webhook.
// Fallback is true when every webhook URL failed and a local reply was used.
type AssistantResponse struct {
	Message  string `json:"message"`
	Success  bool   `json:"success"`
	Fallback bool   `json:"fallback"`
}

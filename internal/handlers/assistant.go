package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"FITTRACK_BACK-END/internal/dto"
	"FITTRACK_BACK-END/internal/utils"
	"FITTRACK_BACK-END/internal/webhook"
)

const (
	audioFormField  = "audio"
	multipartMemory = 8 << 20
	multipartSlack  = 1 << 20
	maxChatMessage  = 4000
)

// Assistant forwards user input to the automation workflow
type Assistant interface {
	SendVoice(ctx context.Context, msg webhook.VoiceMessage) webhook.Reply
	SendChat(ctx context.Context, text string) webhook.Reply
}

// AssistantHandler relays voice recordings and chat messages
type AssistantHandler struct {
	assistant     Assistant
	maxAudioBytes int64
}

// NewAssistantHandler creates a new AssistantHandler instance
func NewAssistantHandler(assistant Assistant, maxAudioBytes int64) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, maxAudioBytes: maxAudioBytes}
}

// Voice forwards an uploaded recording
// @Summary Send a voice recording
// @Description Forwards the recording to the voice workflow. When the workflow is unreachable a local reply is returned with fallback=true.
// @Tags assistant
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param audio formData file true "Recorded audio"
// @Success 200 {object} dto.AssistantResponse "Assistant reply"
// @Failure 400 {object} dto.ErrorResponse "Missing audio"
// @Failure 413 {object} dto.ErrorResponse "Recording too large"
// @Router /api/voice [post]
func (h *AssistantHandler) Voice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxAudioBytes+multipartSlack)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeAudioTooLarge(w)
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid upload", "Expected multipart form with an audio field")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(audioFormField)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing audio", "Form field \"audio\" is required")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, h.maxAudioBytes+1))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid upload", "Could not read audio")
		return
	}
	if int64(len(audio)) > h.maxAudioBytes {
		h.writeAudioTooLarge(w)
		return
	}
	if len(audio) == 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing audio", "Recording is empty")
		return
	}

	reply := h.assistant.SendVoice(r.Context(), webhook.VoiceMessage{
		Audio:     audio,
		Filename:  header.Filename,
		MimeType:  header.Header.Get("Content-Type"),
		UserID:    userID.String(),
		Username:  utils.GetUsernameFromContext(r.Context()),
		Timestamp: time.Now(),
	})
	if reply.Fallback {
		log.Printf("voice: no webhook answered for user %s, sent local reply", userID)
	}
	writeAssistantReply(w, reply)
}

// Chat forwards a typed message
// @Summary Chat with the assistant
// @Description Forwards the message to the chat workflow. When the workflow is unreachable a keyword-matched local reply is returned with fallback=true.
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.AssistantResponse "Assistant reply"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /api/chat [post]
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	var req dto.ChatRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	message := strings.TrimSpace(req.Message)
	switch {
	case message == "":
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "Message is required")
		return
	case utf8.RuneCountInString(message) > maxChatMessage:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "Message is too long")
		return
	}

	writeAssistantReply(w, h.assistant.SendChat(r.Context(), message))
}

func writeAssistantReply(w http.ResponseWriter, reply webhook.Reply) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.AssistantResponse{
		Message:  reply.Message,
		Success:  true,
		Fallback: reply.Fallback,
	})
}

func (h *AssistantHandler) writeAudioTooLarge(w http.ResponseWriter) {
	utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Recording too large",
		fmt.Sprintf("Audio must be at most %d bytes", h.maxAudioBytes))
}

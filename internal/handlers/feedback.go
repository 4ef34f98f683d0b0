package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"FITTRACK_BACK-END/internal/dto"
	"FITTRACK_BACK-END/internal/models"
	"FITTRACK_BACK-END/internal/repository"
	"FITTRACK_BACK-END/internal/utils"
)

const (
	maxFeedbackLength = 5000
	feedbackBasePath  = "/api/feedback/"
)

// FeedbackHandler handles user feedback notes
type FeedbackHandler struct {
	feedback FeedbackStore
}

// NewFeedbackHandler creates a new FeedbackHandler instance
func NewFeedbackHandler(feedback FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Feedback dispatches /api/feedback by method
func (h *FeedbackHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListFeedback(w, r)
	case http.MethodPost:
		h.CreateFeedback(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// FeedbackByID dispatches /api/feedback/{id} by method
func (h *FeedbackHandler) FeedbackByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.UpdateFeedback(w, r)
	case http.MethodDelete:
		h.DeleteFeedback(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ListFeedback returns the caller's notes
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FeedbackListResponse "Feedback notes"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/feedback [get]
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	items, err := h.feedback.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("feedback: list: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load feedback", "Please try again later")
		return
	}

	out := make([]dto.FeedbackResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFeedbackResponse(f))
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.FeedbackListResponse{Feedback: out})
}

// CreateFeedback stores a new note
// @Summary Create feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FeedbackRequest true "Feedback text"
// @Success 201 {object} dto.FeedbackResponse "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /api/feedback [post]
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	description, ok := decodeDescription(w, r)
	if !ok {
		return
	}

	f := &models.Feedback{
		UserID:      userID,
		Username:    utils.GetUsernameFromContext(r.Context()),
		Description: description,
	}
	if err := h.feedback.Create(r.Context(), f); err != nil {
		log.Printf("feedback: create: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to save feedback", "Please try again later")
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, toFeedbackResponse(*f))
}

// UpdateFeedback edits one of the caller's notes
// @Summary Update feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feedback ID"
// @Param request body dto.FeedbackRequest true "Feedback text"
// @Success 200 {object} dto.FeedbackResponse "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /api/feedback/{id} [put]
func (h *FeedbackHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := ownedID(w, r, feedbackBasePath)
	if !ok {
		return
	}

	description, ok := decodeDescription(w, r)
	if !ok {
		return
	}

	f, err := h.feedback.Update(r.Context(), userID, id, description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Feedback not found", "No feedback with that id")
			return
		}
		log.Printf("feedback: update: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update feedback", "Please try again later")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toFeedbackResponse(*f))
}

// DeleteFeedback removes one of the caller's notes
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feedback ID"
// @Success 200 {object} dto.MessageResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /api/feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := ownedID(w, r, feedbackBasePath)
	if !ok {
		return
	}

	if err := h.feedback.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Feedback not found", "No feedback with that id")
			return
		}
		log.Printf("feedback: delete: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete feedback", "Please try again later")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Feedback deleted"})
}

func decodeDescription(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req dto.FeedbackRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return "", false
	}
	description := strings.TrimSpace(req.Description)
	switch {
	case description == "":
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "Description is required")
		return "", false
	case utf8.RuneCountInString(description) > maxFeedbackLength:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", "Description must be at most 5000 characters")
		return "", false
	}
	return description, true
}

func toFeedbackResponse(f models.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:          f.ID.String(),
		Username:    f.Username,
		Description: f.Description,
		CreatedAt:   utils.FormatTimestamp(f.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(f.UpdatedAt),
	}
}

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/service"
)

type FeedbackHandler struct {
	svc service.Storefront
}

func NewFeedbackHandler(svc service.Storefront) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

type FeedbackRequestDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "name and message are required")
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		respondError(w, http.StatusBadRequest, "invalid_rating", "rating must be between 0 and 5")
		return
	}

	h.svc.SubmitFeedback(domain.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	})

	respondJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}

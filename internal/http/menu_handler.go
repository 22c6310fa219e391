package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/service"
)

type MenuHandler struct {
	svc service.Storefront
}

func NewMenuHandler(svc service.Storefront) *MenuHandler {
	return &MenuHandler{svc: svc}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	items, err := h.svc.Menu(r.Context(), category, query)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "item_id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	details, err := h.svc.ItemDetails(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, details)
}

func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/service"
)

type CheckoutHandler struct {
	svc service.Storefront
}

func NewCheckoutHandler(svc service.Storefront) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type PlaceOrderRequestDTO struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// Quote reports what checking out right now would cost: subtotal,
// delivery fee and the display total.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.svc.Quote(getSessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		respondError(w, http.StatusBadRequest, "invalid_address", "delivery address is required")
		return
	}
	if req.PaymentMethod == "" {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "payment_method is required")
		return
	}

	order, err := h.svc.PlaceOrder(r.Context(), getSessionIDFromContext(r.Context()), req.Address, req.PaymentMethod)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toOrderDTO(*order))
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/service"
)

type DashboardHandler struct {
	svc service.Storefront
}

func NewDashboardHandler(svc service.Storefront) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

type DashboardDTO struct {
	TodaysRevenue     decimal.Decimal   `json:"todaysRevenue"`
	TotalRevenue      decimal.Decimal   `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal   `json:"averageOrderValue"`
	OrderCount        int               `json:"orderCount"`
	DistinctCustomers int               `json:"distinctCustomers"`
	PendingOrders     []OrderDTO        `json:"pendingOrders"`
	CompletedOrders   []OrderDTO        `json:"completedOrders"`
	Feedback          []domain.Feedback `json:"feedback"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Dashboard(getSessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, DashboardDTO{
		TodaysRevenue:     stats.TodaysRevenue,
		TotalRevenue:      stats.TotalRevenue,
		AverageOrderValue: stats.AverageOrderValue,
		OrderCount:        stats.OrderCount,
		DistinctCustomers: stats.DistinctCustomers,
		PendingOrders:     toOrderDTOs(stats.PendingOrders),
		CompletedOrders:   toOrderDTOs(stats.CompletedOrders),
		Feedback:          stats.Feedback,
	})
}

// UpdateStatus advances an order through pending -> preparing ->
// delivered. Owner sessions only; the service enforces that.
func (h *DashboardHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id is required")
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_status", "status must be pending, preparing or delivered")
		return
	}

	if err := h.svc.AdvanceOrder(getSessionIDFromContext(r.Context()), orderID, status); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

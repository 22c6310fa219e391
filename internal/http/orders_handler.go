package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/service"
)

type OrdersHandler struct {
	svc service.Storefront
}

func NewOrdersHandler(svc service.Storefront) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

type OrderDTO struct {
	ID            string            `json:"id"`
	Items         []domain.CartItem `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Status        string            `json:"status"`
	Date          string            `json:"date"`
	Address       string            `json:"address"`
	PaymentMethod string            `json:"paymentMethod"`
}

func toOrderDTO(order domain.Order) OrderDTO {
	return OrderDTO{
		ID:            order.ID,
		Items:         order.Items,
		Total:         order.Total,
		Status:        string(order.Status),
		Date:          order.CreatedDate.Format("2006-01-02"),
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod,
	}
}

func toOrderDTOs(orders []domain.Order) []OrderDTO {
	result := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderDTO(o))
	}
	return result
}

// List returns the calling customer's order history, newest first.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Orders(getSessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderDTOs(orders))
}

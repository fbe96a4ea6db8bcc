package controller

import (
	"encoding/json"
	"net/http"

	"github.com/stitchlink/stitchlink-backend/internal/service"
)

type OrderController struct {
	Service *service.CustomerService
}

// ListOrders returns the flattened order rows. payment_status selects the
// tab (All/Paid/Unpaid/Partial), q searches within it; the two combine as
// an AND.
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	paymentTab := r.URL.Query().Get("payment_status")
	query := r.URL.Query().Get("q")

	orders, err := c.Service.ListOrders(p.ID, paymentTab, query)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": orders})
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cinos-cafe/order-svc/internal/domain"
	"cinos-cafe/order-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Orders service.OrderServiceInterface
	Logger *zap.Logger
}

func NewHandler(orderSvc service.OrderServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Orders: orderSvc,
		Logger: logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/orders/quote", h.quoteOrder).Methods("POST")
	r.HandleFunc("/api/orders/receipt", h.orderReceipt).Methods("POST")
	r.HandleFunc("/api/orders/qrcode", h.orderQRCode).Methods("POST")
}

type menuItemResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type menuResponse struct {
	Bases   []menuItemResponse `json:"bases"`
	Sizes   []menuItemResponse `json:"sizes"`
	Flavors []menuItemResponse `json:"flavors"`
}

type quoteLineResponse struct {
	Description string   `json:"description"`
	Base        string   `json:"base"`
	Size        string   `json:"size"`
	Flavors     []string `json:"flavors"`
	Cost        string   `json:"cost"`
}

type quoteResponse struct {
	ID       string              `json:"id"`
	Drinks   []quoteLineResponse `json:"drinks"`
	TaxRate  string              `json:"tax_rate"`
	Subtotal string              `json:"subtotal"`
	Tax      string              `json:"tax"`
	Total    string              `json:"total"`
	Receipt  string              `json:"receipt"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu := h.Orders.Menu()
	writeJSON(w, http.StatusOK, menuResponse{
		Bases:   toMenuItems(menu.Bases),
		Sizes:   toMenuItems(menu.Sizes),
		Flavors: toMenuItems(menu.Flavors),
	})
}

func (h *Handler) quoteOrder(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}
	quote, err := h.Orders.Quote(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(quote))
}

func (h *Handler) orderReceipt(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}
	receipt, err := h.Orders.Receipt(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(receipt + "\n"))
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}
	png, err := h.Orders.QRCode(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) decodeOrder(w http.ResponseWriter, r *http.Request) (domain.OrderRequest, bool) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrQRUnavailable):
		http.Error(w, err.Error(), http.StatusNotImplemented)
	default:
		h.Logger.Error("order request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func toMenuItems(items []domain.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, menuItemResponse{Name: item.Name, Price: item.Price.StringFixed(2)})
	}
	return out
}

func toQuoteResponse(quote *domain.Quote) quoteResponse {
	lines := make([]quoteLineResponse, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, quoteLineResponse{
			Description: line.Description,
			Base:        line.Base,
			Size:        line.Size,
			Flavors:     line.Flavors,
			Cost:        line.Cost.StringFixed(2),
		})
	}
	return quoteResponse{
		ID:       quote.ID.String(),
		Drinks:   lines,
		TaxRate:  quote.TaxRate.String(),
		Subtotal: quote.Totals.Subtotal.StringFixed(2),
		Tax:      quote.Totals.Tax.StringFixed(2),
		Total:    quote.Totals.Total.StringFixed(2),
		Receipt:  quote.Receipt,
	}
}

// internal/service/cart/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"sebshop/internal/service/cart/application"
	"sebshop/internal/service/cart/domain"
	catalogdomain "sebshop/internal/service/catalog/domain"
	"sebshop/internal/service/pricing"
)

// cartMutations 按操作类型统计购物车写请求。
var cartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sebshop_cart_mutations_total",
	Help: "Total number of cart mutation requests by operation.",
}, []string{"operation"})

// CartHandler 封装了 cart 服务的 HTTP 处理器
type CartHandler struct {
	service *application.CartService
}

// NewCartHandler 创建一个新的 HTTP 处理器实例
func NewCartHandler(service *application.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由
func (h *CartHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/cart", h.handleGetCart)
	mux.HandleFunc("/api/cart/add", h.handleAddItem)
	mux.HandleFunc("/api/cart/update", h.handleUpdateQuantity)
	mux.HandleFunc("/api/cart/remove", h.handleRemoveItem)
	mux.HandleFunc("/api/cart/clear", h.handleClear)
}

// cartView 是返回给前端的购物车视图，带上条目数和含运费的小结。
type cartView struct {
	SessionID string            `json:"sessionId"`
	Items     []domain.LineItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Summary   pricing.Breakdown `json:"summary"`
}

func (h *CartHandler) writeCart(w http.ResponseWriter, cart *domain.Cart) {
	view := cartView{
		SessionID: cart.SessionID,
		Items:     cart.Items,
		ItemCount: cart.ItemCount(),
		Summary:   pricing.SummaryQuote(cart.Items),
	}
	if view.Items == nil {
		view.Items = []domain.LineItem{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *CartHandler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}

	cart, err := h.service.GetCart(ctx, sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w, cart)
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}

	var req application.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cartMutations.WithLabelValues("add").Inc()

	cart, err := h.service.AddItem(ctx, sessionID, req)
	if err != nil {
		http.Error(w, err.Error(), cartErrorStatus(err))
		return
	}
	h.writeCart(w, cart)
}

func (h *CartHandler) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}

	var req struct {
		ProductID int64  `json:"productId"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cartMutations.WithLabelValues("update").Inc()

	key := domain.ItemKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	cart, err := h.service.UpdateQuantity(ctx, sessionID, key, req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w, cart)
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}

	var req struct {
		ProductID int64  `json:"productId"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cartMutations.WithLabelValues("remove").Inc()

	key := domain.ItemKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	cart, err := h.service.RemoveItem(ctx, sessionID, key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w, cart)
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}

	cartMutations.WithLabelValues("clear").Inc()

	if err := h.service.Clear(ctx, sessionID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	cart, err := h.service.GetCart(ctx, sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeCart(w, cart)
}

func cartErrorStatus(err error) int {
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

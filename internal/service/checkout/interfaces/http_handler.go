// internal/service/checkout/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"sebshop/internal/service/checkout/application"
	"sebshop/internal/service/checkout/domain"
)

// ordersPlaced 按结果统计下单请求。
var ordersPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sebshop_orders_placed_total",
	Help: "Total number of place-order requests by result.",
}, []string{"result"})

// CheckoutHandler 封装了 checkout 服务的 HTTP 处理器
type CheckoutHandler struct {
	service *application.CheckoutService
}

// NewCheckoutHandler 创建一个新的 HTTP 处理器实例
func NewCheckoutHandler(service *application.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由
func (h *CheckoutHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/checkout/place_order", h.handlePlaceOrder)
	mux.HandleFunc("/api/checkout/address", h.handleSavedAddress)
	mux.HandleFunc("/api/checkout/my_orders", h.handleMyOrders)
}

func (h *CheckoutHandler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}
	userID := r.URL.Query().Get("userId")

	var req application.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.service.PlaceOrder(ctx, sessionID, userID, &req)
	if err != nil {
		ordersPlaced.WithLabelValues("rejected").Inc()
		http.Error(w, err.Error(), placeOrderStatus(err))
		return
	}
	ordersPlaced.WithLabelValues("accepted").Inc()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(application.ToResponse(order))
}

// placeOrderStatus 把下单的领域错误翻译成 HTTP 状态码。
// 校验类错误都是客户端可修复的，返回 400；其余按环境错误处理。
func placeOrderStatus(err error) int {
	var validationErr *domain.ValidationError
	var paymentErr *domain.PaymentValidationError
	switch {
	case errors.Is(err, domain.ErrEmptyCart),
		errors.As(err, &validationErr),
		errors.As(err, &paymentErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleSavedAddress 返回用户上次的收货地址，结账页自动填充用；没有时返回 null。
func (h *CheckoutHandler) handleSavedAddress(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	address, err := h.service.SavedAddress(ctx, r.URL.Query().Get("userId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(address)
}

func (h *CheckoutHandler) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	orders, err := h.service.OrdersOf(ctx, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

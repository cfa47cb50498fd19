// internal/service/wishlist/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"sebshop/internal/service/wishlist/application"
)

// WishlistHandler 封装了 wishlist 服务的 HTTP 处理器
type WishlistHandler struct {
	service *application.WishlistService
}

// NewWishlistHandler 创建一个新的 HTTP 处理器实例
func NewWishlistHandler(service *application.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由
func (h *WishlistHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/wishlist", h.handleList)
	mux.HandleFunc("/api/wishlist/toggle", h.handleToggle)
}

func (h *WishlistHandler) handleList(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	productIDs, err := h.service.List(ctx, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if productIDs == nil {
		productIDs = []int64{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(productIDs)
}

func (h *WishlistHandler) handleToggle(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	productID, err := strconv.ParseInt(r.URL.Query().Get("productId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	added, err := h.service.Toggle(ctx, userID, productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"productId":  productID,
		"inWishlist": added,
	})
}

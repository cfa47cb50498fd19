// internal/service/catalog/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"sebshop/internal/service/catalog/application"
	"sebshop/internal/service/catalog/domain"
)

// CatalogHandler 封装了店面商品列表的 HTTP 处理器，只暴露读路径。
// 写路径（增删改、上下架）挂在管理后台的路由下。
type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler 创建一个新的 HTTP 处理器实例
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/products", h.handleListProducts)
	mux.HandleFunc("/api/products/detail", h.handleGetProduct)
}

// handleListProducts 返回上架中的商品，支持 category 过滤与 sort 排序。
func (h *CatalogHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	category := r.URL.Query().Get("category")
	sortKey := application.SortKey(r.URL.Query().Get("sort"))

	products, err := h.service.ListActive(ctx, category, sortKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *CatalogHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	propagator := otel.GetTextMapPropagator()
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.service.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

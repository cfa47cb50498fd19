// internal/service/admin/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"sebshop/internal/service/admin/application"
	admindomain "sebshop/internal/service/admin/domain"
	authapp "sebshop/internal/service/auth/application"
	catalogapp "sebshop/internal/service/catalog/application"
	catalogdomain "sebshop/internal/service/catalog/domain"
)

// authTokenHeader 携带会话令牌的请求头。
const authTokenHeader = "X-Auth-Token"

// AdminHandler 封装管理后台的 HTTP 处理器。
// 所有路由都要求会话对应的用户具有 admin 角色。
type AdminHandler struct {
	service *application.AdminService
	catalog *catalogapp.CatalogService
	auth    *authapp.AuthService
}

// NewAdminHandler 创建一个新的 HTTP 处理器实例
func NewAdminHandler(service *application.AdminService, catalog *catalogapp.CatalogService, auth *authapp.AuthService) *AdminHandler {
	return &AdminHandler{service: service, catalog: catalog, auth: auth}
}

// RegisterRoutes 在 ServeMux 上注册所有路由
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/admin/stats", h.requireAdmin(h.handleStats))
	mux.HandleFunc("/api/admin/orders", h.requireAdmin(h.handleOrders))
	mux.HandleFunc("/api/admin/recent_orders", h.requireAdmin(h.handleRecentOrders))
	mux.HandleFunc("/api/admin/settings", h.requireAdmin(h.handleSettings))
	mux.HandleFunc("/api/admin/products", h.requireAdmin(h.handleListProducts))
	mux.HandleFunc("/api/admin/products/create", h.requireAdmin(h.handleCreateProduct))
	mux.HandleFunc("/api/admin/products/update", h.requireAdmin(h.handleUpdateProduct))
	mux.HandleFunc("/api/admin/products/delete", h.requireAdmin(h.handleDeleteProduct))
	mux.HandleFunc("/api/admin/products/toggle_stock", h.requireAdmin(h.handleToggleStock))
}

// requireAdmin 校验会话令牌并要求 admin 角色，同时完成追踪上下文提取。
func (h *AdminHandler) requireAdmin(next func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propagator := otel.GetTextMapPropagator()
		ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

		user, err := h.auth.CurrentUser(ctx, r.Header.Get(authTokenHeader))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if user == nil {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		if !user.IsAdmin() {
			http.Error(w, "admin role required", http.StatusForbidden)
			return
		}
		next(w, r.WithContext(ctx))
	}
}

func (h *AdminHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *AdminHandler) handleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.AllOrders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *AdminHandler) handleRecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.RecentOrders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// handleSettings GET 返回站点设置，POST 覆盖保存。
func (h *AdminHandler) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var settings admindomain.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.service.SaveSettings(r.Context(), &settings); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)
	default:
		settings, err := h.service.GetSettings(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)
	}
}

func (h *AdminHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *AdminHandler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var product catalogdomain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.catalog.CreateProduct(r.Context(), product)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

func (h *AdminHandler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product catalogdomain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.catalog.UpdateProduct(r.Context(), product)
	if err != nil {
		http.Error(w, err.Error(), productErrorStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *AdminHandler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) handleToggleStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.catalog.ToggleStock(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), productErrorStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

func productErrorStatus(err error) int {
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// internal/service/catalog/infrastructure/mapper.go
package infrastructure

import (
	"strings"

	"sebshop/internal/service/catalog/domain"
)

// ToDomainProduct 把数据库模型转换为领域模型。
func ToDomainProduct(m *ProductModel) *domain.Product {
	return &domain.Product{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Price:     m.Price,
		Stock:     m.Stock,
		Image:     m.Image,
		Badge:     m.Badge,
		Sizes:     splitList(m.Sizes),
		Colors:    splitList(m.Colors),
		InStock:   m.InStock,
		CreatedAt: m.CreatedAt,
	}
}

// ToProductModel 把领域模型转换为数据库模型。
func ToProductModel(p *domain.Product) *ProductModel {
	return &ProductModel{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		Image:     p.Image,
		Badge:     p.Badge,
		Sizes:     strings.Join(p.Sizes, ","),
		Colors:    strings.Join(p.Colors, ","),
		InStock:   p.InStock,
		CreatedAt: p.CreatedAt,
	}
}

// splitList 解析逗号分隔的文本，空白段被丢弃。
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// internal/service/catalog/infrastructure/gorm_model.go
package infrastructure

import "time"

// ProductModel 对应数据库中的 product 表。
// ID 沿用业务侧生成的毫秒时间戳，不使用自增主键。
// Sizes / Colors 以逗号分隔的文本存储，管理后台的录入格式本来就是这样。
type ProductModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Category  string `gorm:"size:64;index"`
	Price     float64
	Stock     int
	Image     string `gorm:"type:mediumtext"`
	Badge     string `gorm:"size:64"`
	Sizes     string `gorm:"type:text"`
	Colors    string `gorm:"type:text"`
	InStock   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定 GORM 应该使用的表名。
func (ProductModel) TableName() string {
	return "product"
}

// internal/service/catalog/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"sebshop/internal/service/catalog/domain"
)

// GormProductRepository 是 ProductRepository 的 GORM 实现。
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormDB 建立 MySQL 连接并自动迁移商品表。
func NewGormDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect mysql")
	}
	if err := db.AutoMigrate(&ProductModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate product table")
	}
	return db, nil
}

// NewGormProductRepository 创建一个新的 GORM 仓储实例。
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID 按 ID 查找商品。
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var model ProductModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return ToDomainProduct(&model), nil
}

// FindAll 返回全部商品，按创建时间排序保持录入顺序。
func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var models []ProductModel
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&models).Error; err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(models))
	for i := range models {
		products = append(products, *ToDomainProduct(&models[i]))
	}
	return products, nil
}

// Create 写入一个新商品。
func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(ToProductModel(product)).Error
}

// Update 整体覆盖更新商品。
func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	model := ToProductModel(product)
	// Save 会更新所有字段，包括 false/空值，符合"编辑表单整体提交"的语义
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete 删除商品；不存在时 GORM 返回 nil，与"删除不存在的行不是错误"一致。
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ProductModel{}, "id = ?", id).Error
}

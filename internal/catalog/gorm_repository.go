// internal/catalog/gorm_repository.go
package catalog

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"signcraft/internal/apperr"
)

// GormRepository 是 Repository 的 GORM 实现。
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository 创建一个新的 GORM 商品仓储实例。
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// FindProductByID 按主键做点查。
func (r *GormRepository) FindProductByID(ctx context.Context, id string) (*Product, error) {
	var model ProductModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("product %s", id)
		}
		return nil, errors.Wrap(err, "failed to load product")
	}
	return ToDomainProduct(&model)
}

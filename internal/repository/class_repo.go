package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NyathiBlesing/S-M-S/internal/model"
)

// ClassRepository 班级数据访问接口
type ClassRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
}

// classRepo ClassRepository 的 GORM 实现
type classRepo struct {
	db *gorm.DB
}

// NewClassRepo 创建 ClassRepository 实例
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).
		Where("class_id = ?", id).
		First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) List(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.WithContext(ctx).
		Order("class_id").
		Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

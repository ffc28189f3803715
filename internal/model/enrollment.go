package model

import "time"

// Enrollment 学生选课关系表 — 对应 enrollments
// (user_id, subject_id) 复合主键：同一对 (学生, 科目) 不允许出现第二行
type Enrollment struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"     json:"user_id"`
	SubjectID int64     `gorm:"primaryKey;autoIncrement:false"     json:"subject_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

package model

import "time"

// Class 班级表 — 对应 classes
type Class struct {
	ClassID   int64     `gorm:"primaryKey;autoIncrement"           json:"class_id"`
	Name      string    `gorm:"type:varchar(50);not null;unique"   json:"name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }

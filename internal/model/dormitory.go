package model

import "time"

// Dormitory 宿舍表 — 对应 dormitories
type Dormitory struct {
	DormitoryID int64     `gorm:"primaryKey;autoIncrement"           json:"dormitory_id"`
	Name        string    `gorm:"type:varchar(50);not null;unique"   json:"name"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Dormitory) TableName() string { return "dormitories" }

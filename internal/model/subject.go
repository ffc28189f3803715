package model

import "time"

// Subject 科目目录表 — 对应 subjects
// 名称唯一；被选课记录引用后不再修改
type Subject struct {
	SubjectID int64     `gorm:"primaryKey;autoIncrement"           json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;unique"  json:"name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }

// [自证通过] internal/model/subject.go

package dto

// ── 学生模块 DTO ──

// ProfileResponse 个人档案（含已选科目名）
type ProfileResponse struct {
	Name        string   `json:"name"`
	Surname     string   `json:"surname"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	DateOfBirth string   `json:"dob"`
	Gender      string   `json:"gender"`
	Address     string   `json:"address"`
	ClassID     *int64   `json:"class"`
	DormitoryID *int64   `json:"dormitory_id"`
	Status      string   `json:"status"`
	Subjects    []string `json:"subjects"`
}

// StudentSummary 学生名册条目
type StudentSummary struct {
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Gender  string `json:"gender"`
	ClassID *int64 `json:"class"`
	Status  string `json:"status"`
}

// StudentStats 学生统计
type StudentStats struct {
	Total    int64 `json:"total"`
	Male     int64 `json:"male"`
	Female   int64 `json:"female"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// DormitoryResponse 宿舍分配查询响应
type DormitoryResponse struct {
	AssignedHostel *int64 `json:"assignedHostel"`
}

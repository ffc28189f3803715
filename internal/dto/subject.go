package dto

// ── 科目模块 DTO ──

// SubjectResponse 科目目录条目
type SubjectResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SubmitSubjectRequest 新增科目请求
type SubmitSubjectRequest struct {
	Subject string `json:"subject"`
}

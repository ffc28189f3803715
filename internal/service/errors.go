package service

// ValidationError 客户端可纠正的输入错误（映射为 HTTP 400）
// Reason 原样作为响应中的 error 字段返回
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError 创建校验错误
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

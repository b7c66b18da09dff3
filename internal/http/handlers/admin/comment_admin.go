package admin

import (
	"errors"
	"strconv"

	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/http/handlers/shared"
	"github.com/escriba/internal/http/response"
	"github.com/escriba/internal/i18n"
	"github.com/escriba/internal/repository"
	"github.com/escriba/internal/service"

	"github.com/gin-gonic/gin"
)

// BulkModerateRequest 批量审核请求体
type BulkModerateRequest struct {
	Action string `json:"action" binding:"required"`
	IDs    []uint `json:"ids" binding:"required"`
}

// ListComments 后台评论列表，支持审核状态、文章、作者与时间筛选
func (h *Handler) ListComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	page, pageSize = shared.NormalizePagination(page, pageSize, constants.AdminDefaultPageSize, constants.AdminMaxPageSize)

	filter := repository.CommentListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		OrderBy:  "created_at DESC",
	}
	if v := c.Query("approved"); v != "" {
		if approved, err := strconv.ParseBool(v); err == nil {
			filter.Approved = &approved
		}
	}
	if v := c.Query("post_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			postID := uint(id)
			filter.PostID = &postID
		}
	}
	if v := c.Query("author_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			authorID := uint(id)
			filter.AuthorID = &authorID
		}
	}
	filter.CreatedFrom = parseDateQuery(c.Query("created_from"), false)
	filter.CreatedTo = parseDateQuery(c.Query("created_to"), true)

	comments, total, err := h.CommentService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.comment_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, comments, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: shared.TotalPages(total, pageSize),
	})
}

// BulkActions 返回批量动作列表，用于后台下拉渲染
func (h *Handler) BulkActions(c *gin.Context) {
	actions := service.BulkActions()
	items := make([]gin.H, 0, len(actions))
	for _, action := range actions {
		items = append(items, gin.H{"name": action.Name, "approved": action.Approved})
	}
	response.Success(c, gin.H{"actions": items})
}

// BulkModerate 批量审核评论，消息携带实际更新条数
func (h *Handler) BulkModerate(c *gin.Context) {
	var req BulkModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	affected, action, err := h.CommentService.BulkModerate(req.Action, req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBulkAction):
			respondError(c, response.CodeBadRequest, "error.bulk_action_invalid", nil)
		case errors.Is(err, service.ErrEmptySelection):
			respondError(c, response.CodeBadRequest, "error.comment_ids_required", nil)
		default:
			respondError(c, response.CodeInternal, "error.comment_moderate_failed", err)
		}
		return
	}

	msg := i18n.Sprintf(i18n.ResolveLocale(c), action.MessageKey, affected)
	response.SuccessWithMsg(c, msg, gin.H{"affected": affected})
}

// DeleteComment 后台删除评论
func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CommentService.DeleteAdmin(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.comment_moderate_failed", err)
		return
	}
	response.Success(c, nil)
}

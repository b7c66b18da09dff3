package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/http/handlers/shared"
	"github.com/escriba/internal/http/response"
	"github.com/escriba/internal/i18n"
	"github.com/escriba/internal/repository"
	"github.com/escriba/internal/service"

	"github.com/gin-gonic/gin"
)

// PostRequest 后台文章创建与更新请求体
type PostRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug"`
	Content  string `json:"content" binding:"required"`
	Status   string `json:"status" binding:"required"`
	AuthorID uint   `json:"author_id"`
}

// ListPosts 后台文章列表，支持状态、作者、时间与关键词筛选
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	page, pageSize = shared.NormalizePagination(page, pageSize, constants.AdminDefaultPageSize, constants.AdminMaxPageSize)

	filter := repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		OrderBy:  "created_at DESC",
	}
	if v := c.Query("author_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			authorID := uint(id)
			filter.AuthorID = &authorID
		}
	}
	filter.CreatedFrom = parseDateQuery(c.Query("created_from"), false)
	filter.CreatedTo = parseDateQuery(c.Query("created_to"), true)

	posts, total, err := h.PostService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, posts, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: shared.TotalPages(total, pageSize),
	})
}

// GetPost 后台文章详情
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	post, err := h.PostService.GetAdminByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"post": post})
}

// CreatePost 后台创建文章，slug 留空时由标题派生
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if req.AuthorID == 0 {
		respondError(c, response.CodeBadRequest, "error.validation_failed", nil)
		return
	}

	post, err := h.PostService.Create(service.CreatePostInput{
		Title:    req.Title,
		Slug:     req.Slug,
		Content:  req.Content,
		Status:   req.Status,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		h.respondPostError(c, err, "error.post_create_failed")
		return
	}
	response.Success(c, gin.H{"post": post})
}

// UpdatePost 后台更新文章，可显式改 slug
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.PostService.UpdateAdmin(id, service.UpdatePostInput{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		h.respondPostError(c, err, "error.post_update_failed")
		return
	}
	response.Success(c, gin.H{"post": post})
}

// DeletePost 后台删除文章，评论级联删除
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.PostService.DeleteAdmin(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_delete_failed", err)
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "msg.post_deleted"), nil)
}

func (h *Handler) respondPostError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeConflict, "error.slug_exists", nil)
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTitleTooLong),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrInvalidPostStatus):
		respondError(c, response.CodeBadRequest, "error.validation_failed", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return 0, false
	}
	return uint(id), true
}

// parseDateQuery 解析 YYYY-MM-DD，endOfDay 时取当日末尾
func parseDateQuery(value string, endOfDay bool) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

package public

import (
	"errors"
	"strconv"
	"time"

	"github.com/escriba/internal/forms"
	"github.com/escriba/internal/http/handlers/shared"
	"github.com/escriba/internal/http/response"
	"github.com/escriba/internal/i18n"
	"github.com/escriba/internal/models"
	"github.com/escriba/internal/service"

	"github.com/gin-gonic/gin"
)

// PostView 公共文章视图
type PostView struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content,omitempty"`
	Status    string    `json:"status,omitempty"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	URL       string    `json:"url"`
}

// CommentView 公共评论视图
type CommentView struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest 创建与编辑文章请求体
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// CreateCommentRequest 评论请求体
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func postURL(slug string) string {
	return "/api/v1/posts/" + slug
}

func toPostView(post *models.Post, withContent bool) PostView {
	view := PostView{
		ID:        post.ID,
		Title:     post.Title,
		Slug:      post.Slug,
		Author:    authorName(post.Author),
		CreatedAt: post.CreatedAt,
		URL:       postURL(post.Slug),
	}
	if withContent {
		view.Content = post.Content
		view.Status = post.Status
	}
	return view
}

func authorName(author *models.User) string {
	if author == nil {
		return ""
	}
	if author.DisplayName != "" {
		return author.DisplayName
	}
	return author.Email
}

// ListPosts 公共文章列表，仅已发布，按创建时间倒序
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize := h.Config.Blog.PublicPageSize
	page, pageSize = shared.NormalizePagination(page, pageSize, pageSize, pageSize)

	posts, total, err := h.PostService.ListPublic(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, toPostView(&posts[i], false))
	}
	response.SuccessWithPage(c, views, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: shared.TotalPages(total, pageSize),
	})
}

// GetPost 公共文章详情：已发布文章、已审核评论与评论表单
func (h *Handler) GetPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.PostService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	comments, err := h.CommentService.ListApprovedByPost(post.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.comment_fetch_failed", err)
		return
	}
	commentViews := make([]CommentView, 0, len(comments))
	for i := range comments {
		commentViews = append(commentViews, CommentView{
			ID:        comments[i].ID,
			Author:    authorName(comments[i].Author),
			Content:   comments[i].Content,
			CreatedAt: comments[i].CreatedAt,
		})
	}

	response.Success(c, gin.H{
		"post":         toPostView(post, true),
		"comments":     commentViews,
		"comment_form": forms.CommentForm(postURL(post.Slug)),
	})
}

// NewPostForm 返回文章创建表单描述
func (h *Handler) NewPostForm(c *gin.Context) {
	response.Success(c, gin.H{"form": forms.PostForm("/api/v1/posts/new")})
}

// CreatePost 登录用户创建文章，slug 由标题派生
func (h *Handler) CreatePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondLoginRequired(c)
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.PostService.Create(service.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Status:   req.Status,
		AuthorID: userID,
	})
	if err != nil {
		h.respondPostValidationError(c, req, "/api/v1/posts/new", err, "error.post_create_failed")
		return
	}
	response.Success(c, gin.H{
		"post":     toPostView(post, true),
		"redirect": postURL(post.Slug),
	})
}

// EditPostForm 返回编辑表单及当前值，仅作者可见
func (h *Handler) EditPostForm(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondLoginRequired(c)
		return
	}

	slug := c.Param("slug")
	post, err := h.PostService.GetEditableBySlug(slug, userID)
	if err != nil {
		h.respondEditableError(c, err)
		return
	}

	response.Success(c, gin.H{
		"form": forms.PostForm(postURL(post.Slug) + "/edit"),
		"values": gin.H{
			"title":   post.Title,
			"content": post.Content,
			"status":  post.Status,
		},
	})
}

// UpdatePost 作者更新文章，slug 保持不变
func (h *Handler) UpdatePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondLoginRequired(c)
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	slug := c.Param("slug")
	post, err := h.PostService.Update(slug, userID, service.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrForbidden) {
			h.respondEditableError(c, err)
			return
		}
		h.respondPostValidationError(c, req, postURL(slug)+"/edit", err, "error.post_update_failed")
		return
	}
	response.Success(c, gin.H{
		"post":     toPostView(post, true),
		"redirect": postURL(post.Slug),
	})
}

// DeletePostConfirm 删除确认载荷，仅作者可见
func (h *Handler) DeletePostConfirm(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondLoginRequired(c)
		return
	}

	slug := c.Param("slug")
	post, err := h.PostService.GetEditableBySlug(slug, userID)
	if err != nil {
		h.respondEditableError(c, err)
		return
	}
	response.Success(c, gin.H{
		"post":   toPostView(post, false),
		"action": postURL(post.Slug) + "/delete",
	})
}

// DeletePost 作者删除文章，评论级联删除
func (h *Handler) DeletePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondLoginRequired(c)
		return
	}

	slug := c.Param("slug")
	if err := h.PostService.Delete(slug, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrForbidden) {
			h.respondEditableError(c, err)
			return
		}
		respondError(c, response.CodeInternal, "error.post_delete_failed", err)
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "msg.post_deleted"), gin.H{
		"redirect": "/api/v1/posts",
	})
}

// CreateComment 登录用户在已发布文章下评论，进入待审核队列
func (h *Handler) CreateComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondLoginRequired(c)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	slug := c.Param("slug")
	comment, err := h.CommentService.CreateComment(slug, userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		case errors.Is(err, service.ErrCommentRequired), errors.Is(err, service.ErrCommentTooLong):
			respondErrorWithData(c, response.CodeBadRequest, "error.validation_failed", gin.H{
				"form":   forms.CommentForm(postURL(slug)),
				"values": gin.H{"content": req.Content},
			})
		default:
			respondError(c, response.CodeInternal, "error.comment_create_failed", err)
		}
		return
	}

	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "msg.comment_pending"), gin.H{
		"comment_id": comment.ID,
		"redirect":   postURL(slug),
	})
}

func (h *Handler) respondEditableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
	case errors.Is(err, service.ErrForbidden):
		respondError(c, response.CodeForbidden, "error.forbidden", nil)
	default:
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
	}
}

// respondPostValidationError 校验失败时回传表单、字段错误与已填值，不落库
func (h *Handler) respondPostValidationError(c *gin.Context, req CreatePostRequest, action string, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTitleTooLong),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrInvalidPostStatus):
		respondErrorWithData(c, response.CodeBadRequest, "error.validation_failed", gin.H{
			"form":   forms.PostForm(action),
			"errors": postFieldErrors(err),
			"values": gin.H{"title": req.Title, "content": req.Content, "status": req.Status},
		})
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeConflict, "error.slug_exists", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

func postFieldErrors(err error) gin.H {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		return gin.H{"title": "required"}
	case errors.Is(err, service.ErrTitleTooLong):
		return gin.H{"title": "too_long"}
	case errors.Is(err, service.ErrContentRequired):
		return gin.H{"content": "required"}
	case errors.Is(err, service.ErrInvalidPostStatus):
		return gin.H{"status": "invalid"}
	default:
		return gin.H{}
	}
}

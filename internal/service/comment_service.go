package service

import (
	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/models"
	"github.com/escriba/internal/queue"
	"github.com/escriba/internal/repository"

	"go.uber.org/zap"
)

// CommentService 评论业务逻辑
type CommentService struct {
	repo     repository.CommentRepository
	postRepo repository.PostRepository
	queue    *queue.Client
	log      *zap.SugaredLogger
}

// NewCommentService 创建评论服务
func NewCommentService(repo repository.CommentRepository, postRepo repository.PostRepository, queueClient *queue.Client, log *zap.SugaredLogger) *CommentService {
	return &CommentService{repo: repo, postRepo: postRepo, queue: queueClient, log: log}
}

// CommentBulkAction 可枚举的批量审核动作
type CommentBulkAction struct {
	Name       string
	Approved   bool
	MessageKey string
}

// commentBulkActions 全部受支持的批量动作
var commentBulkActions = []CommentBulkAction{
	{Name: constants.CommentBulkActionApprove, Approved: true, MessageKey: "msg.comments_approved"},
	{Name: constants.CommentBulkActionDisapprove, Approved: false, MessageKey: "msg.comments_disapproved"},
}

// BulkActions 返回动作列表，用于后台下拉渲染
func BulkActions() []CommentBulkAction {
	actions := make([]CommentBulkAction, len(commentBulkActions))
	copy(actions, commentBulkActions)
	return actions
}

// ResolveBulkAction 按名称解析动作，未知名称返回 ErrInvalidBulkAction
func ResolveBulkAction(name string) (CommentBulkAction, error) {
	for _, action := range commentBulkActions {
		if action.Name == name {
			return action, nil
		}
	}
	return CommentBulkAction{}, ErrInvalidBulkAction
}

// CreateComment 在已发布文章下新建评论，初始为未审核并触发通知任务
func (s *CommentService) CreateComment(postSlug string, authorID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, ErrCommentRequired
	}
	if len(content) > constants.CommentContentMaxLength {
		return nil, ErrCommentTooLong
	}

	post, err := s.postRepo.GetBySlug(postSlug, true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		PostID:   post.ID,
		AuthorID: authorID,
		Content:  content,
		Approved: false,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}

	if s.queue != nil && s.queue.Enabled() {
		if err := s.queue.EnqueueCommentNotify(queue.CommentNotifyPayload{CommentID: comment.ID}); err != nil {
			// 通知失败不影响评论创建
			s.log.Warnw("comment_notify_enqueue_failed", "comment_id", comment.ID, "error", err)
		}
	}
	return comment, nil
}

// ListApprovedByPost 某文章全部已审核评论
func (s *CommentService) ListApprovedByPost(postID uint) ([]models.Comment, error) {
	return s.repo.ListApprovedByPost(postID)
}

// ListAdmin 后台评论列表
func (s *CommentService) ListAdmin(filter repository.CommentListFilter) ([]models.Comment, int64, error) {
	return s.repo.List(filter)
}

// BulkModerate 批量审核，返回实际更新的行数与解析出的动作
func (s *CommentService) BulkModerate(actionName string, ids []uint) (int64, CommentBulkAction, error) {
	action, err := ResolveBulkAction(actionName)
	if err != nil {
		return 0, CommentBulkAction{}, err
	}
	if len(ids) == 0 {
		return 0, action, ErrEmptySelection
	}
	affected, err := s.repo.BulkSetApproved(ids, action.Approved)
	if err != nil {
		return 0, action, err
	}
	return affected, action, nil
}

// DeleteAdmin 后台删除评论
func (s *CommentService) DeleteAdmin(id uint) error {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

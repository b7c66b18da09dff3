package worker

import (
	"context"
	"encoding/json"

	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/logger"
	"github.com/escriba/internal/provider"
	"github.com/escriba/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 任务处理器集合
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建任务处理器
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 注册全部任务处理函数
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskCommentNotify, c.handleCommentNotify)
}

// handleCommentNotify 通知文章作者有新评论待审核。
// 评论或文章已被删除时跳过任务而不是重试。
func (c *Consumer) handleCommentNotify(ctx context.Context, task *asynq.Task) error {
	var payload queue.CommentNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Errorw("comment_notify_bad_payload", "error", err)
		return nil
	}

	comment, err := c.CommentRepo.GetByID(payload.CommentID)
	if err != nil {
		return err
	}
	if comment == nil {
		logger.Debugw("comment_notify_skipped", "comment_id", payload.CommentID, "reason", "comment_deleted")
		return nil
	}

	post, err := c.PostRepo.GetByID(comment.PostID)
	if err != nil {
		return err
	}
	if post == nil || post.Author == nil {
		logger.Debugw("comment_notify_skipped", "comment_id", payload.CommentID, "reason", "post_or_author_missing")
		return nil
	}

	commenter := ""
	if comment.Author != nil {
		commenter = comment.Author.DisplayName
		if commenter == "" {
			commenter = comment.Author.Email
		}
	}

	if err := c.EmailService.SendCommentNotification(post.Author.Email, post.Title, commenter, comment.Content); err != nil {
		logger.Warnw("comment_notify_send_failed", "comment_id", comment.ID, "error", err)
		return err
	}
	logger.Infow("comment_notify_sent", "comment_id", comment.ID, "post_id", post.ID)
	return nil
}

package queue

import (
	"encoding/json"

	"github.com/escriba/internal/constants"

	"github.com/hibiken/asynq"
)

// CommentNotifyPayload 评论通知任务载荷
type CommentNotifyPayload struct {
	CommentID uint `json:"comment_id"`
}

// NewCommentNotifyTask 构建评论通知任务
func NewCommentNotifyTask(payload CommentNotifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskCommentNotify, data), nil
}

package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/escriba/internal/config"

	"go.uber.org/zap"
)

// EmailService SMTP 邮件通知，未启用时仅记录日志
type EmailService struct {
	cfg config.EmailConfig
	log *zap.SugaredLogger
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg config.EmailConfig, log *zap.SugaredLogger) *EmailService {
	return &EmailService{cfg: cfg, log: log}
}

// Enabled 邮件通道是否可用
func (s *EmailService) Enabled() bool {
	return s.cfg.Enabled && s.cfg.Host != "" && s.cfg.From != ""
}

// SendCommentNotification 通知文章作者有新评论待审核
func (s *EmailService) SendCommentNotification(to, postTitle, commenter, content string) error {
	subject := fmt.Sprintf("Novo comentário em %q", postTitle)
	body := fmt.Sprintf("%s comentou:\n\n%s\n\nO comentário aguarda aprovação.", commenter, content)

	if !s.Enabled() {
		s.log.Infow("comment_notification_logged", "to", to, "post_title", postTitle)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

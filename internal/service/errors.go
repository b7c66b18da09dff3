package service

import "errors"

// 业务哨兵错误，处理器按 errors.Is 映射为响应码
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("operation not allowed")
	ErrSlugExists         = errors.New("slug already exists")
	ErrInvalidPostStatus  = errors.New("invalid post status")
	ErrTitleRequired      = errors.New("title required")
	ErrTitleTooLong       = errors.New("title too long")
	ErrContentRequired    = errors.New("content required")
	ErrCommentRequired    = errors.New("comment content required")
	ErrCommentTooLong     = errors.New("comment content too long")
	ErrInvalidBulkAction  = errors.New("invalid bulk action")
	ErrEmptySelection     = errors.New("empty selection")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrOldPasswordWrong   = errors.New("old password mismatch")
)

package models

import (
	"time"

	"gorm.io/gorm"
)

// User 前台注册用户，可发表文章与评论
type User struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	Email              string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"size:255;not null" json:"-"`
	DisplayName        string     `gorm:"size:100" json:"display_name"`
	Locale             string     `gorm:"size:16" json:"locale"`
	Status             string     `gorm:"size:16;default:'active'" json:"status"`
	TokenVersion       uint64     `gorm:"default:0" json:"-"`
	TokenInvalidBefore *time.Time `json:"-"`
	LastLoginAt        *time.Time `json:"last_login_at"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 表名
func (User) TableName() string {
	return "users"
}

package models

import "time"

// Admin 后台管理员
type Admin struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	Username           string     `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash       string     `gorm:"size:255;not null" json:"-"`
	IsSuper            bool       `gorm:"default:false" json:"is_super"`
	TokenVersion       uint64     `gorm:"default:0" json:"-"`
	TokenInvalidBefore *time.Time `json:"-"`
	LastLoginAt        *time.Time `json:"last_login_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TableName 表名
func (Admin) TableName() string {
	return "admins"
}

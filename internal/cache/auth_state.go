package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/escriba/internal/models"
)

// 认证状态缓存，登录校验的快路径
const authStateCacheTTL = 10 * time.Minute

// UserAuthState 用户令牌校验所需的最小状态
type UserAuthState struct {
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	Status             string `json:"status"`
}

// AdminAuthState 管理员令牌校验所需的最小状态
type AdminAuthState struct {
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	IsSuper            bool   `json:"is_super"`
}

// BuildUserAuthState 从用户实体构建缓存状态
func BuildUserAuthState(user *models.User) UserAuthState {
	state := UserAuthState{
		TokenVersion: user.TokenVersion,
		Status:       user.Status,
	}
	if user.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = user.TokenInvalidBefore.Unix()
	}
	return state
}

// BuildAdminAuthState 从管理员实体构建缓存状态
func BuildAdminAuthState(admin *models.Admin) AdminAuthState {
	state := AdminAuthState{
		TokenVersion: admin.TokenVersion,
		IsSuper:      admin.IsSuper,
	}
	if admin.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = admin.TokenInvalidBefore.Unix()
	}
	return state
}

// GetUserAuthState 读取用户认证状态缓存
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool) {
	var state UserAuthState
	found, err := GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !found {
		return nil, false
	}
	return &state, true
}

// SetUserAuthState 写入用户认证状态缓存
func SetUserAuthState(ctx context.Context, userID uint, state UserAuthState) {
	_ = SetJSON(ctx, userAuthStateKey(userID), state, authStateCacheTTL)
}

// GetAdminAuthState 读取管理员认证状态缓存
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool) {
	var state AdminAuthState
	found, err := GetJSON(ctx, adminAuthStateKey(adminID), &state)
	if err != nil || !found {
		return nil, false
	}
	return &state, true
}

// SetAdminAuthState 写入管理员认证状态缓存
func SetAdminAuthState(ctx context.Context, adminID uint, state AdminAuthState) {
	_ = SetJSON(ctx, adminAuthStateKey(adminID), state, authStateCacheTTL)
}

// DelUserAuthState 清除用户认证状态缓存
func DelUserAuthState(ctx context.Context, userID uint) {
	_ = Del(ctx, userAuthStateKey(userID))
}

func userAuthStateKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

func adminAuthStateKey(adminID uint) string {
	return fmt.Sprintf("auth:admin:%d", adminID)
}

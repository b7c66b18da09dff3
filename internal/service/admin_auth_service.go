package service

import (
	"time"

	"github.com/escriba/internal/config"
	"github.com/escriba/internal/models"
	"github.com/escriba/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService 后台管理员认证
type AdminAuthService struct {
	repo   repository.AdminRepository
	jwtCfg config.JWTConfig
}

// NewAdminAuthService 创建管理员认证服务
func NewAdminAuthService(repo repository.AdminRepository, jwtCfg config.JWTConfig) *AdminAuthService {
	return &AdminAuthService{repo: repo, jwtCfg: jwtCfg}
}

// Login 校验管理员凭据并签发 JWT
func (s *AdminAuthService) Login(username, password string, rememberMe bool) (string, *models.Admin, error) {
	admin, err := s.repo.GetByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if admin == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := s.repo.Update(admin); err != nil {
		return "", nil, err
	}

	expireHours := s.jwtCfg.ExpireHours
	if rememberMe && s.jwtCfg.RememberMeExpireHours > 0 {
		expireHours = s.jwtCfg.RememberMeExpireHours
	}
	if expireHours <= 0 {
		expireHours = 24
	}

	claims := jwt.MapClaims{
		"admin_id":      admin.ID,
		"username":      admin.Username,
		"is_super":      admin.IsSuper,
		"token_version": admin.TokenVersion,
		"iat":           now.Unix(),
		"exp":           now.Add(time.Duration(expireHours) * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// UpdatePassword 修改密码并递增 token 版本使旧令牌失效
func (s *AdminAuthService) UpdatePassword(adminID uint, oldPassword, newPassword string) error {
	admin, err := s.repo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrOldPasswordWrong
	}
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin.PasswordHash = string(hash)
	admin.TokenVersion++
	return s.repo.Update(admin)
}

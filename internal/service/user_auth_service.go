package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/escriba/internal/config"
	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/i18n"
	"github.com/escriba/internal/models"
	"github.com/escriba/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserAuthService 前台用户注册与登录
type UserAuthService struct {
	repo   repository.UserRepository
	jwtCfg config.JWTConfig
	policy config.PasswordPolicyConfig
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(repo repository.UserRepository, jwtCfg config.JWTConfig, policy config.PasswordPolicyConfig) *UserAuthService {
	return &UserAuthService{repo: repo, jwtCfg: jwtCfg, policy: policy}
}

// RegisterInput 注册入参
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Locale      string
}

// Register 注册新用户
func (s *UserAuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, ErrInvalidEmail
	}

	count, err := s.repo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	if err := ValidatePassword(s.policy, input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	locale := i18n.Normalize(input.Locale)
	if locale == "" {
		locale = i18n.DefaultLocale
	}
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = email[:strings.Index(email, "@")]
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Locale:       locale,
		Status:       constants.UserStatusActive,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验凭据并签发 JWT
func (s *UserAuthService) Login(email, password string, rememberMe bool) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status != constants.UserStatusActive {
		return "", nil, ErrUserDisabled
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.repo.Update(user); err != nil {
		return "", nil, err
	}

	token, err := s.signToken(user, rememberMe, now)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetByID 取当前用户，禁用或不存在返回相应哨兵错误
func (s *UserAuthService) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserAuthService) signToken(user *models.User, rememberMe bool, issuedAt time.Time) (string, error) {
	expireHours := s.jwtCfg.ExpireHours
	if rememberMe && s.jwtCfg.RememberMeExpireHours > 0 {
		expireHours = s.jwtCfg.RememberMeExpireHours
	}
	if expireHours <= 0 {
		expireHours = 72
	}

	claims := jwt.MapClaims{
		"user_id":       user.ID,
		"email":         user.Email,
		"token_version": user.TokenVersion,
		"iat":           issuedAt.Unix(),
		"exp":           issuedAt.Add(time.Duration(expireHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}

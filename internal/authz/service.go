package authz

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// defaultRBACModel 后台 RBAC 模型，对象用 keyMatch2 匹配路由
const defaultRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

const (
	rolePrefix = "role:"
	// roleAnchor 占位主体，保证空角色也能被持久化
	roleAnchor = "role:__anchor__"
)

// Policy 单条权限策略
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

// Service 基于 casbin 的后台授权服务
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建授权服务，策略存储在数据库 casbin_rule 表
func NewService(db *gorm.DB) (*Service, error) {
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", "casbin_rule")
	if err != nil {
		return nil, fmt.Errorf("create casbin adapter: %w", err)
	}
	m, err := model.NewModelFromString(defaultRBACModel)
	if err != nil {
		return nil, fmt.Errorf("parse rbac model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

// SubjectForAdmin 管理员主体标识
func SubjectForAdmin(adminID uint) string {
	return fmt.Sprintf("admin:%d", adminID)
}

// NormalizeObject 将完整路由归一化为策略对象，去掉 API 版本前缀
func NormalizeObject(path string) string {
	obj := strings.TrimPrefix(path, "/api/v1")
	if obj == "" {
		obj = "/"
	}
	return obj
}

// NormalizeAction 动作统一大写
func NormalizeAction(method string) string {
	return strings.ToUpper(strings.TrimSpace(method))
}

// NormalizeRole 角色统一携带前缀
func NormalizeRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return ""
	}
	if strings.HasPrefix(role, rolePrefix) {
		return role
	}
	return rolePrefix + role
}

// Enforce 通用权限判定
func (s *Service) Enforce(subject, object, action string) (bool, error) {
	return s.enforcer.Enforce(subject, NormalizeObject(object), NormalizeAction(action))
}

// EnforceAdmin 判定管理员能否访问某路由
func (s *Service) EnforceAdmin(adminID uint, object, action string) (bool, error) {
	return s.Enforce(SubjectForAdmin(adminID), object, action)
}

// EnsureRole 确保角色存在
func (s *Service) EnsureRole(role string) error {
	normalized := NormalizeRole(role)
	if normalized == "" {
		return fmt.Errorf("empty role")
	}
	if _, err := s.enforcer.AddGroupingPolicy(roleAnchor, normalized); err != nil {
		return err
	}
	return s.enforcer.SavePolicy()
}

// GrantRolePolicy 为角色授予策略
func (s *Service) GrantRolePolicy(role string, policy Policy) error {
	normalized := NormalizeRole(role)
	if normalized == "" {
		return fmt.Errorf("empty role")
	}
	if _, err := s.enforcer.AddPolicy(normalized, NormalizeObject(policy.Object), NormalizeAction(policy.Action)); err != nil {
		return err
	}
	return s.enforcer.SavePolicy()
}

// RevokeRolePolicy 撤销角色策略
func (s *Service) RevokeRolePolicy(role string, policy Policy) error {
	normalized := NormalizeRole(role)
	if normalized == "" {
		return fmt.Errorf("empty role")
	}
	if _, err := s.enforcer.RemovePolicy(normalized, NormalizeObject(policy.Object), NormalizeAction(policy.Action)); err != nil {
		return err
	}
	return s.enforcer.SavePolicy()
}

// GetRolePolicies 查询角色全部策略
func (s *Service) GetRolePolicies(role string) ([]Policy, error) {
	normalized := NormalizeRole(role)
	rules, err := s.enforcer.GetFilteredPolicy(0, normalized)
	if err != nil {
		return nil, err
	}
	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		policies = append(policies, Policy{Subject: rule[0], Object: rule[1], Action: rule[2]})
	}
	return policies, nil
}

// SetAdminRoles 重置管理员的角色集合
func (s *Service) SetAdminRoles(adminID uint, roles []string) error {
	subject := SubjectForAdmin(adminID)
	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(0, subject); err != nil {
		return err
	}
	for _, role := range roles {
		normalized := NormalizeRole(role)
		if normalized == "" {
			continue
		}
		if _, err := s.enforcer.AddGroupingPolicy(subject, normalized); err != nil {
			return err
		}
	}
	return s.enforcer.SavePolicy()
}

// GetAdminRoles 查询管理员的角色集合
func (s *Service) GetAdminRoles(adminID uint) ([]string, error) {
	return s.enforcer.GetRolesForUser(SubjectForAdmin(adminID))
}

package authz

// RoleSeed 内置角色定义
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds 后台内置角色：编辑管理文章，版主管理评论，审计员只读
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "editor",
			Policies: []Policy{
				{Object: "/admin/posts", Action: "*"},
				{Object: "/admin/posts/:id", Action: "*"},
			},
		},
		{
			Role: "moderator",
			Policies: []Policy{
				{Object: "/admin/comments", Action: "*"},
				{Object: "/admin/comments/:id", Action: "*"},
				{Object: "/admin/comments/bulk", Action: "*"},
			},
		},
		{
			Role: "readonly_auditor",
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
			},
		},
	}
}

// BootstrapBuiltinRoles 幂等写入内置角色与策略
func (s *Service) BootstrapBuiltinRoles() error {
	for _, seed := range BuiltinRoleSeeds() {
		role := NormalizeRole(seed.Role)
		if _, err := s.enforcer.AddGroupingPolicy(roleAnchor, role); err != nil {
			return err
		}
		for _, policy := range seed.Policies {
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), NormalizeAction(policy.Action)); err != nil {
				return err
			}
		}
	}
	return s.enforcer.SavePolicy()
}

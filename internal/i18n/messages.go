package i18n

// messages 各语言文案表
var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":             "invalid request",
		"error.validation_failed":       "validation failed",
		"error.internal":                "internal server error",
		"error.unauthorized":            "unauthorized",
		"error.forbidden":               "you do not have permission to perform this action",
		"error.login_required":          "login required",
		"error.auth_header_missing":     "missing authorization header",
		"error.auth_header_invalid":     "invalid authorization header",
		"error.token_invalid":           "invalid or expired token",
		"error.token_revoked":           "token has been revoked",
		"error.invalid_credentials":     "invalid email or password",
		"error.user_disabled":           "account is disabled",
		"error.email_invalid":           "invalid email address",
		"error.email_exists":            "email is already registered",
		"error.weak_password":           "password does not meet the security policy",
		"error.register_failed":         "failed to register user",
		"error.login_failed":            "failed to log in",
		"error.user_fetch_failed":       "failed to load user",
		"error.post_not_found":          "post not found",
		"error.post_fetch_failed":       "failed to load posts",
		"error.post_create_failed":      "failed to create post",
		"error.post_update_failed":      "failed to update post",
		"error.post_delete_failed":      "failed to delete post",
		"error.slug_exists":             "slug is already in use",
		"error.post_status_invalid":     "invalid post status",
		"error.comment_create_failed":   "failed to submit comment",
		"error.comment_fetch_failed":    "failed to load comments",
		"error.comment_moderate_failed": "failed to moderate comments",
		"error.comment_ids_required":    "at least one comment must be selected",
		"error.bulk_action_invalid":     "unknown moderation action",
		"error.admin_not_found":         "administrator not found",
		"error.old_password_invalid":    "current password is incorrect",
		"error.password_update_failed":  "failed to update password",
		"error.rate_limited":            "too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":  "rate limiter is unavailable",

		"msg.comment_pending":      "comment submitted and awaiting approval",
		"msg.comments_approved":    "%d comments approved",
		"msg.comments_disapproved": "%d comments disapproved",
		"msg.post_deleted":         "post deleted",
		"msg.password_updated":     "password updated",
	},
	LocalePT: {
		"error.bad_request":             "requisição inválida",
		"error.validation_failed":       "falha de validação",
		"error.internal":                "erro interno do servidor",
		"error.unauthorized":            "não autorizado",
		"error.forbidden":               "você não tem permissão para executar esta ação",
		"error.login_required":          "é necessário entrar",
		"error.auth_header_missing":     "cabeçalho de autorização ausente",
		"error.auth_header_invalid":     "cabeçalho de autorização inválido",
		"error.token_invalid":           "token inválido ou expirado",
		"error.token_revoked":           "token revogado",
		"error.invalid_credentials":     "e-mail ou senha inválidos",
		"error.user_disabled":           "conta desativada",
		"error.email_invalid":           "endereço de e-mail inválido",
		"error.email_exists":            "e-mail já cadastrado",
		"error.weak_password":           "a senha não atende à política de segurança",
		"error.register_failed":         "falha ao cadastrar usuário",
		"error.login_failed":            "falha ao entrar",
		"error.user_fetch_failed":       "falha ao carregar usuário",
		"error.post_not_found":          "post não encontrado",
		"error.post_fetch_failed":       "falha ao carregar posts",
		"error.post_create_failed":      "falha ao criar post",
		"error.post_update_failed":      "falha ao atualizar post",
		"error.post_delete_failed":      "falha ao excluir post",
		"error.slug_exists":             "slug já está em uso",
		"error.post_status_invalid":     "status de post inválido",
		"error.comment_create_failed":   "falha ao enviar comentário",
		"error.comment_fetch_failed":    "falha ao carregar comentários",
		"error.comment_moderate_failed": "falha ao moderar comentários",
		"error.comment_ids_required":    "selecione ao menos um comentário",
		"error.bulk_action_invalid":     "ação de moderação desconhecida",
		"error.admin_not_found":         "administrador não encontrado",
		"error.old_password_invalid":    "senha atual incorreta",
		"error.password_update_failed":  "falha ao atualizar a senha",
		"error.rate_limited":            "muitas requisições, tente novamente em %d segundos",
		"error.rate_limit_unavailable":  "limitador de requisições indisponível",

		"msg.comment_pending":      "comentário enviado e aguardando aprovação",
		"msg.comments_approved":    "%d comentários aprovados",
		"msg.comments_disapproved": "%d comentários reprovados",
		"msg.post_deleted":         "post excluído",
		"msg.password_updated":     "senha atualizada",
	},
}

package constants

// 文章状态常量
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// 文章字段约束常量
const (
	PostTitleMaxLength = 200
	PostSlugMaxLength  = 200
)

// 评论字段约束常量
const (
	CommentContentMaxLength = 1000
)

// 评论批量操作常量
const (
	CommentBulkActionApprove    = "approve"
	CommentBulkActionDisapprove = "disapprove"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 分页常量
const (
	PublicPostPageSize   = 5 // 公开列表固定每页 5 篇
	AdminDefaultPageSize = 20
	AdminMaxPageSize     = 100
)

// 队列常量
const (
	QueueDefault      = "default"
	TaskCommentNotify = "comment:notify"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "esc"
)

// 站点语言常量
const (
	LocalePtBR = "pt-BR"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocalePtBR, LocaleEnUS}

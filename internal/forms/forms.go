package forms

import "github.com/escriba/internal/constants"

// Field 表单字段描述，供前端渲染
type Field struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
	MaxLength   int      `json:"max_length,omitempty"`
	Rows        int      `json:"rows,omitempty"`
	Options     []Option `json:"options,omitempty"`
}

// Option 选择型字段的可选值
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Form 完整表单描述
type Form struct {
	Name   string  `json:"name"`
	Action string  `json:"action"`
	Method string  `json:"method"`
	Fields []Field `json:"fields"`
}

// statusOptions 文章状态可选值
func statusOptions() []Option {
	return []Option{
		{Value: constants.PostStatusDraft, Label: "Draft"},
		{Value: constants.PostStatusPublished, Label: "Published"},
	}
}

// PostForm 文章创建与编辑表单
func PostForm(action string) Form {
	return Form{
		Name:   "post",
		Action: action,
		Method: "POST",
		Fields: []Field{
			{Name: "title", Type: "text", Label: "Title", Required: true, MaxLength: constants.PostTitleMaxLength},
			{Name: "content", Type: "textarea", Label: "Content", Required: true, Rows: 12},
			{Name: "status", Type: "select", Label: "Status", Required: true, Options: statusOptions()},
		},
	}
}

// CommentForm 文章详情页的评论表单
func CommentForm(action string) Form {
	return Form{
		Name:   "comment",
		Action: action,
		Method: "POST",
		Fields: []Field{
			{
				Name:        "content",
				Type:        "textarea",
				Label:       "Comment",
				Placeholder: "Share your thoughts",
				Required:    true,
				MaxLength:   constants.CommentContentMaxLength,
				Rows:        4,
			},
		},
	}
}

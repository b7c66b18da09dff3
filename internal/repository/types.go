package repository

import "time"

// PostListFilter 文章列表筛选条件
type PostListFilter struct {
	Page          int
	PageSize      int
	Status        string
	AuthorID      *uint
	Search        string
	OnlyPublished bool
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	OrderBy       string
}

// CommentListFilter 评论列表筛选条件
type CommentListFilter struct {
	Page        int
	PageSize    int
	PostID      *uint
	AuthorID    *uint
	Approved    *bool
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	OrderBy     string
}

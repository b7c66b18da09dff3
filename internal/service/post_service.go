package service

import (
	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/models"
	"github.com/escriba/internal/repository"
)

// PostService 文章业务逻辑
type PostService struct {
	repo repository.PostRepository
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePostInput 创建文章入参
type CreatePostInput struct {
	Title    string
	Content  string
	Status   string
	Slug     string
	AuthorID uint
}

// UpdatePostInput 更新文章入参，slug 不随标题变化
type UpdatePostInput struct {
	Title   string
	Content string
	Status  string
	Slug    string
}

// ListPublic 公共文章列表：仅已发布，按创建时间倒序
func (s *PostService) ListPublic(page, pageSize int) ([]models.Post, int64, error) {
	return s.repo.List(repository.PostListFilter{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
		OrderBy:       "created_at DESC",
	})
}

// GetPublicBySlug 公共文章详情：草稿与未知 slug 一律 ErrNotFound
func (s *PostService) GetPublicBySlug(slug string) (*models.Post, error) {
	post, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// GetEditableBySlug 取作者可编辑的文章。
// 非作者访问已发布文章返回 ErrForbidden；草稿对非作者不暴露存在性，返回 ErrNotFound。
func (s *PostService) GetEditableBySlug(slug string, userID uint) (*models.Post, error) {
	post, err := s.repo.GetBySlug(slug, false)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.AuthorID != userID {
		if post.Status == constants.PostStatusPublished {
			return nil, ErrForbidden
		}
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章。slug 为空时由标题派生并自动消歧，显式 slug 冲突返回 ErrSlugExists。
func (s *PostService) Create(input CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(input.Title, input.Content, input.Status); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		derived, err := ensureUniqueSlug(Slugify(input.Title), func(candidate string) (int64, error) {
			return s.repo.CountBySlug(candidate, nil)
		})
		if err != nil {
			return nil, err
		}
		slug = derived
	} else {
		taken, err := s.repo.CountBySlug(slug, nil)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, ErrSlugExists
		}
	}

	post := &models.Post{
		Title:    input.Title,
		Slug:     slug,
		Content:  input.Content,
		Status:   input.Status,
		AuthorID: input.AuthorID,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update 作者更新自己的文章，slug 保持不变
func (s *PostService) Update(slug string, userID uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.GetEditableBySlug(slug, userID)
	if err != nil {
		return nil, err
	}
	if err := validatePostFields(input.Title, input.Content, input.Status); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.Status = input.Status
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete 作者删除自己的文章，评论级联删除
func (s *PostService) Delete(slug string, userID uint) error {
	post, err := s.GetEditableBySlug(slug, userID)
	if err != nil {
		return err
	}
	return s.repo.Delete(post.ID)
}

// ListAdmin 后台文章列表，支持状态、作者、时间与关键词筛选
func (s *PostService) ListAdmin(filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.repo.List(filter)
}

// GetAdminByID 后台按主键取文章
func (s *PostService) GetAdminByID(id uint) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// UpdateAdmin 后台更新文章，可显式改 slug，留空时保持原值
func (s *PostService) UpdateAdmin(id uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}
	if err := validatePostFields(input.Title, input.Content, input.Status); err != nil {
		return nil, err
	}

	if input.Slug != "" && input.Slug != post.Slug {
		taken, err := s.repo.CountBySlug(input.Slug, &post.ID)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, ErrSlugExists
		}
		post.Slug = input.Slug
	}

	post.Title = input.Title
	post.Content = input.Content
	post.Status = input.Status
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteAdmin 后台删除文章
func (s *PostService) DeleteAdmin(id uint) error {
	post, err := s.GetAdminByID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(post.ID)
}

func validatePostFields(title, content, status string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > constants.PostTitleMaxLength {
		return ErrTitleTooLong
	}
	if content == "" {
		return ErrContentRequired
	}
	if status != constants.PostStatusDraft && status != constants.PostStatusPublished {
		return ErrInvalidPostStatus
	}
	return nil
}

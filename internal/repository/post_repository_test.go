package repository

import (
	"fmt"
	"testing"

	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM posts")
	db.Exec("DELETE FROM users")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", DisplayName: "tester", Status: constants.UserStatusActive}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID uint, slug, status string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:    "post " + slug,
		Slug:     slug,
		Content:  "content",
		Status:   status,
		AuthorID: authorID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func TestPostRepositoryListOnlyPublished(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "author@example.com")

	createTestPost(t, db, user.ID, "published-one", constants.PostStatusPublished)
	createTestPost(t, db, user.ID, "draft-one", constants.PostStatusDraft)

	posts, total, err := repo.List(PostListFilter{OnlyPublished: true, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("want total 1 got %d", total)
	}
	if len(posts) != 1 || posts[0].Slug != "published-one" {
		t.Fatalf("draft leaked into published list: %+v", posts)
	}
}

func TestPostRepositoryListOrderAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "author@example.com")

	for i := 1; i <= 7; i++ {
		createTestPost(t, db, user.ID, fmt.Sprintf("post-%d", i), constants.PostStatusPublished)
	}

	posts, total, err := repo.List(PostListFilter{OnlyPublished: true, Page: 2, PageSize: 5, OrderBy: "id DESC"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 7 {
		t.Fatalf("want total 7 got %d", total)
	}
	if len(posts) != 2 {
		t.Fatalf("want 2 posts on page 2 got %d", len(posts))
	}
	if posts[0].Slug != "post-2" || posts[1].Slug != "post-1" {
		t.Fatalf("unexpected page order: %s, %s", posts[0].Slug, posts[1].Slug)
	}
}

func TestPostRepositoryGetBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "author@example.com")
	createTestPost(t, db, user.ID, "my-draft", constants.PostStatusDraft)

	post, err := repo.GetBySlug("my-draft", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if post != nil {
		t.Fatalf("draft should be invisible when onlyPublished, got %+v", post)
	}

	post, err = repo.GetBySlug("my-draft", false)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if post == nil {
		t.Fatalf("want draft post got nil")
	}
	if post.Author == nil || post.Author.Email != "author@example.com" {
		t.Fatalf("author not preloaded: %+v", post.Author)
	}

	post, err = repo.GetBySlug("missing", false)
	if err != nil {
		t.Fatalf("get missing slug failed: %v", err)
	}
	if post != nil {
		t.Fatalf("want nil for missing slug got %+v", post)
	}
}

func TestPostRepositoryCountBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "author@example.com")
	post := createTestPost(t, db, user.ID, "taken", constants.PostStatusPublished)

	count, err := repo.CountBySlug("taken", nil)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("want count 1 got %d", count)
	}

	count, err = repo.CountBySlug("taken", &post.ID)
	if err != nil {
		t.Fatalf("count with exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("excluding own id should yield 0, got %d", count)
	}
}

func TestPostRepositoryDeleteCascadesComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "author@example.com")
	post := createTestPost(t, db, user.ID, "with-comments", constants.PostStatusPublished)
	other := createTestPost(t, db, user.ID, "keep", constants.PostStatusPublished)

	for i := 0; i < 3; i++ {
		comment := &models.Comment{PostID: post.ID, AuthorID: user.ID, Content: "hi"}
		if err := db.Create(comment).Error; err != nil {
			t.Fatalf("create comment failed: %v", err)
		}
	}
	keep := &models.Comment{PostID: other.ID, AuthorID: user.ID, Content: "stay"}
	if err := db.Create(keep).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var commentCount int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount)
	if commentCount != 0 {
		t.Fatalf("comments not cascaded, %d left", commentCount)
	}
	db.Model(&models.Comment{}).Where("post_id = ?", other.ID).Count(&commentCount)
	if commentCount != 1 {
		t.Fatalf("other post comments should survive, got %d", commentCount)
	}
}

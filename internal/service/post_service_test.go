package service

import (
	"errors"
	"testing"

	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/models"
	"github.com/escriba/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupServiceDB(t *testing.T) *gorm.DB {
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

func createServiceUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", Status: constants.UserStatusActive}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func newPostService(db *gorm.DB) *PostService {
	return NewPostService(repository.NewPostRepository(db))
}

func TestPostServiceCreateDerivesSlug(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db)
	author := createServiceUser(t, db, "a@example.com")

	post, err := svc.Create(CreatePostInput{
		Title:    "Meu Primeiro Post",
		Content:  "conteúdo",
		Status:   constants.PostStatusPublished,
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Slug != "meu-primeiro-post" {
		t.Fatalf("want slug meu-primeiro-post got %s", post.Slug)
	}

	second, err := svc.Create(CreatePostInput{
		Title:    "Meu Primeiro Post",
		Content:  "outro",
		Status:   constants.PostStatusDraft,
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("create duplicate title failed: %v", err)
	}
	if second.Slug != "meu-primeiro-post-2" {
		t.Fatalf("want disambiguated slug got %s", second.Slug)
	}
}

func TestPostServiceCreateExplicitSlugConflict(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db)
	author := createServiceUser(t, db, "a@example.com")

	if _, err := svc.Create(CreatePostInput{Title: "One", Content: "x", Status: constants.PostStatusDraft, Slug: "fixed", AuthorID: author.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := svc.Create(CreatePostInput{Title: "Two", Content: "y", Status: constants.PostStatusDraft, Slug: "fixed", AuthorID: author.ID})
	if !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists got %v", err)
	}
}

func TestPostServiceCreateValidation(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db)
	author := createServiceUser(t, db, "a@example.com")

	if _, err := svc.Create(CreatePostInput{Content: "x", Status: constants.PostStatusDraft, AuthorID: author.ID}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("want ErrTitleRequired got %v", err)
	}
	if _, err := svc.Create(CreatePostInput{Title: "t", Status: constants.PostStatusDraft, AuthorID: author.ID}); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("want ErrContentRequired got %v", err)
	}
	if _, err := svc.Create(CreatePostInput{Title: "t", Content: "c", Status: "archived", AuthorID: author.ID}); !errors.Is(err, ErrInvalidPostStatus) {
		t.Fatalf("want ErrInvalidPostStatus got %v", err)
	}
}

func TestPostServiceGetPublicBySlugHidesDrafts(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db)
	author := createServiceUser(t, db, "a@example.com")

	if _, err := svc.Create(CreatePostInput{Title: "Draft", Content: "x", Status: constants.PostStatusDraft, AuthorID: author.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := svc.GetPublicBySlug("draft")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft should be invisible publicly, got %v", err)
	}
}

func TestPostServiceEditableAuthorization(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db)
	author := createServiceUser(t, db, "a@example.com")
	stranger := createServiceUser(t, db, "b@example.com")

	published, err := svc.Create(CreatePostInput{Title: "Published", Content: "x", Status: constants.PostStatusPublished, AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	draft, err := svc.Create(CreatePostInput{Title: "Hidden Draft", Content: "x", Status: constants.PostStatusDraft, AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetEditableBySlug(published.Slug, author.ID); err != nil {
		t.Fatalf("author should edit own post: %v", err)
	}
	if _, err := svc.GetEditableBySlug(published.Slug, stranger.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden for non-author on published, got %v", err)
	}
	if _, err := svc.GetEditableBySlug(draft.Slug, stranger.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft must not leak existence to non-author, got %v", err)
	}
}

func TestPostServiceUpdateKeepsSlug(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db)
	author := createServiceUser(t, db, "a@example.com")

	post, err := svc.Create(CreatePostInput{Title: "Original Title", Content: "x", Status: constants.PostStatusPublished, AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(post.Slug, author.ID, UpdatePostInput{
		Title:   "Completely New Title",
		Content: "y",
		Status:  constants.PostStatusPublished,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "original-title" {
		t.Fatalf("slug must not change on update, got %s", updated.Slug)
	}
	if updated.Title != "Completely New Title" {
		t.Fatalf("title not updated: %s", updated.Title)
	}
}

func TestPostServiceDelete(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db)
	author := createServiceUser(t, db, "a@example.com")
	stranger := createServiceUser(t, db, "b@example.com")

	post, err := svc.Create(CreatePostInput{Title: "Doomed", Content: "x", Status: constants.PostStatusPublished, AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(post.Slug, stranger.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-author delete should be forbidden, got %v", err)
	}
	if err := svc.Delete(post.Slug, author.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if _, err := svc.GetPublicBySlug(post.Slug); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted post should be gone, got %v", err)
	}
}

func TestPostServiceUpdateAdminSlugChange(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db)
	author := createServiceUser(t, db, "a@example.com")

	post, err := svc.Create(CreatePostInput{Title: "Editable", Content: "x", Status: constants.PostStatusDraft, AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other, err := svc.Create(CreatePostInput{Title: "Other", Content: "x", Status: constants.PostStatusDraft, AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdateAdmin(post.ID, UpdatePostInput{Title: "Editable", Content: "x", Status: constants.PostStatusDraft, Slug: other.Slug})
	if !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists on slug collision, got %v", err)
	}

	updated, err := svc.UpdateAdmin(post.ID, UpdatePostInput{Title: "Editable", Content: "x", Status: constants.PostStatusDraft, Slug: "renamed"})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Slug != "renamed" {
		t.Fatalf("want renamed slug got %s", updated.Slug)
	}
}

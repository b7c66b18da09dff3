package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/escriba/internal/config"
	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/models"
	"github.com/escriba/internal/provider"
	"github.com/escriba/internal/service"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Mode: "debug"},
		JWT:     config.JWTConfig{SecretKey: "test-admin-secret-0123456789abcdef", ExpireHours: 1},
		UserJWT: config.JWTConfig{SecretKey: "test-user-secret-0123456789abcdef", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8},
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
		Blog: config.BlogConfig{PublicPageSize: constants.PublicPostPageSize},
	}
}

func setupTestRouter(t *testing.T) (*gin.Engine, *provider.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := models.InitDB("sqlite", "file::memory:?cache=shared", models.DBPoolConfig{}); err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	models.DB.Exec("DELETE FROM comments")
	models.DB.Exec("DELETE FROM posts")
	models.DB.Exec("DELETE FROM users")
	models.DB.Exec("DELETE FROM admins")

	cfg := testConfig()
	container := provider.NewContainer(cfg)
	return SetupRouter(cfg, container), container
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload failed: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response failed: %v, body=%s", err, w.Body.String())
	}
	return body
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/v1/auth/register", "", gin.H{
		"email":        email,
		"password":     "sufficient-secret-1",
		"display_name": "tester",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "sufficient-secret-1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("no token in login response")
	}
	return token
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t)
	w := doJSON(t, r, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
}

func TestNewRouteNotCapturedBySlug(t *testing.T) {
	r, container := setupTestRouter(t)
	token := registerAndLogin(t, r, "author@example.com")

	// 存在 slug 恰为 "new" 的已发布文章
	w := doJSON(t, r, "POST", "/api/v1/posts/new", token, gin.H{
		"title":   "New",
		"content": "body",
		"status":  constants.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create post failed: %d %s", w.Code, w.Body.String())
	}
	post, err := container.PostService.GetPublicBySlug("new")
	if err != nil || post == nil {
		t.Fatalf("post with slug new should exist: %v", err)
	}

	// GET /posts/new 必须命中创建表单，而不是该文章详情
	w = doJSON(t, r, "GET", "/api/v1/posts/new", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("form route failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if _, ok := data["form"]; !ok {
		t.Fatalf("expected form payload, got %v", data)
	}
	if _, ok := data["post"]; ok {
		t.Fatalf("slug route captured the literal segment")
	}

	// 未认证访问创建表单返回 401 而非 404
	w = doJSON(t, r, "GET", "/api/v1/posts/new", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401 for anonymous form access got %d", w.Code)
	}
}

func TestPublicListPageSizeAndDraftInvisibility(t *testing.T) {
	r, container := setupTestRouter(t)
	token := registerAndLogin(t, r, "author@example.com")

	for i := 1; i <= 6; i++ {
		w := doJSON(t, r, "POST", "/api/v1/posts/new", token, gin.H{
			"title":   fmt.Sprintf("Post %d", i),
			"content": "body",
			"status":  constants.PostStatusPublished,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("create post %d failed: %d %s", i, w.Code, w.Body.String())
		}
	}
	if _, err := container.PostService.Create(service.CreatePostInput{
		Title: "Hidden Draft", Content: "x", Status: constants.PostStatusDraft, AuthorID: 1,
	}); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	w := doJSON(t, r, "GET", "/api/v1/posts", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d", w.Code)
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	list := data["list"].([]interface{})
	if len(list) != 5 {
		t.Fatalf("public page size must be 5, got %d", len(list))
	}
	pagination := data["pagination"].(map[string]interface{})
	if int(pagination["total"].(float64)) != 6 {
		t.Fatalf("draft leaked into public total: %v", pagination["total"])
	}

	w = doJSON(t, r, "GET", "/api/v1/posts/hidden-draft", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("draft detail must 404, got %d", w.Code)
	}
}

func TestCommentFlowRequiresLoginAndModeration(t *testing.T) {
	r, _ := setupTestRouter(t)
	authorToken := registerAndLogin(t, r, "author@example.com")
	readerToken := registerAndLogin(t, r, "reader@example.com")

	w := doJSON(t, r, "POST", "/api/v1/posts/new", authorToken, gin.H{
		"title":   "Open Thread",
		"content": "talk",
		"status":  constants.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create post failed: %d", w.Code)
	}

	// 匿名评论被拒
	w = doJSON(t, r, "POST", "/api/v1/posts/open-thread", "", gin.H{"content": "anon"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous comment should 401, got %d", w.Code)
	}

	// 登录用户评论进入待审核
	w = doJSON(t, r, "POST", "/api/v1/posts/open-thread", readerToken, gin.H{"content": "nice post"})
	if w.Code != http.StatusOK {
		t.Fatalf("comment failed: %d %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	redirect := body["data"].(map[string]interface{})["redirect"].(string)
	if redirect != "/api/v1/posts/open-thread" {
		t.Fatalf("comment should redirect back to detail, got %s", redirect)
	}

	// 未审核评论不出现在详情页
	w = doJSON(t, r, "GET", "/api/v1/posts/open-thread", "", nil)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	comments := data["comments"].([]interface{})
	if len(comments) != 0 {
		t.Fatalf("pending comment must stay hidden, got %d", len(comments))
	}
	if _, ok := data["comment_form"]; !ok {
		t.Fatalf("detail should carry comment form")
	}
}

func TestEditAuthorizationStatuses(t *testing.T) {
	r, _ := setupTestRouter(t)
	authorToken := registerAndLogin(t, r, "author@example.com")
	strangerToken := registerAndLogin(t, r, "stranger@example.com")

	w := doJSON(t, r, "POST", "/api/v1/posts/new", authorToken, gin.H{
		"title":   "Mine",
		"content": "body",
		"status":  constants.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create post failed: %d", w.Code)
	}

	w = doJSON(t, r, "GET", "/api/v1/posts/mine/edit", strangerToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-author edit should 403, got %d", w.Code)
	}

	w = doJSON(t, r, "POST", "/api/v1/posts/mine/edit", authorToken, gin.H{
		"title":   "Renamed Title",
		"content": "body2",
		"status":  constants.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("author edit failed: %d %s", w.Code, w.Body.String())
	}
	post := decodeBody(t, w)["data"].(map[string]interface{})["post"].(map[string]interface{})
	if post["slug"].(string) != "mine" {
		t.Fatalf("slug must survive edits, got %s", post["slug"])
	}

	w = doJSON(t, r, "POST", "/api/v1/posts/mine/delete", strangerToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-author delete should 403, got %d", w.Code)
	}
	w = doJSON(t, r, "POST", "/api/v1/posts/mine/delete", authorToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("author delete failed: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, "GET", "/api/v1/posts/mine", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted post should 404, got %d", w.Code)
	}
}

func TestAdminModerationFlow(t *testing.T) {
	r, container := setupTestRouter(t)
	if err := models.InitDefaultAdmin("root", "super-secret-pass"); err != nil {
		t.Fatalf("init admin failed: %v", err)
	}

	readerToken := registerAndLogin(t, r, "reader@example.com")
	authorToken := registerAndLogin(t, r, "author@example.com")
	w := doJSON(t, r, "POST", "/api/v1/posts/new", authorToken, gin.H{
		"title":   "Thread",
		"content": "body",
		"status":  constants.PostStatusPublished,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create post failed: %d", w.Code)
	}
	var commentIDs []uint
	for i := 0; i < 2; i++ {
		w = doJSON(t, r, "POST", "/api/v1/posts/thread", readerToken, gin.H{"content": fmt.Sprintf("c%d", i)})
		if w.Code != http.StatusOK {
			t.Fatalf("comment failed: %d", w.Code)
		}
		id := decodeBody(t, w)["data"].(map[string]interface{})["comment_id"].(float64)
		commentIDs = append(commentIDs, uint(id))
	}

	// 管理员登录
	w = doJSON(t, r, "POST", "/api/v1/admin/login", "", gin.H{
		"username": "root",
		"password": "super-secret-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login failed: %d %s", w.Code, w.Body.String())
	}
	adminToken := decodeBody(t, w)["data"].(map[string]interface{})["token"].(string)

	// 待审核筛选
	w = doJSON(t, r, "GET", "/api/v1/admin/comments?approved=false", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin comment list failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if int(data["pagination"].(map[string]interface{})["total"].(float64)) != 2 {
		t.Fatalf("want 2 pending comments, got %v", data["pagination"])
	}

	// 批量通过
	w = doJSON(t, r, "POST", "/api/v1/admin/comments/bulk", adminToken, gin.H{
		"action": constants.CommentBulkActionApprove,
		"ids":    commentIDs,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("bulk approve failed: %d %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if int(body["data"].(map[string]interface{})["affected"].(float64)) != 2 {
		t.Fatalf("want 2 affected, got %v", body["data"])
	}

	// 审核通过后前台可见
	post, err := container.PostService.GetPublicBySlug("thread")
	if err != nil {
		t.Fatalf("get post failed: %v", err)
	}
	visible, err := container.CommentService.ListApprovedByPost(post.ID)
	if err != nil {
		t.Fatalf("list approved failed: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("approved comments should be visible, got %d", len(visible))
	}

	// 未知动作被拒
	w = doJSON(t, r, "POST", "/api/v1/admin/comments/bulk", adminToken, gin.H{
		"action": "purge",
		"ids":    commentIDs,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown bulk action should 400, got %d", w.Code)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r, _ := setupTestRouter(t)
	w := doJSON(t, r, "GET", "/api/v1/admin/posts", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("admin route without token should 401, got %d", w.Code)
	}
}

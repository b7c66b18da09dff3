package main

import (
	"github.com/escriba/internal/config"
	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/logger"
	"github.com/escriba/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// 开发环境示例数据，按 slug 与邮箱幂等写入
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{}); err != nil {
		stdLog.Fatalf("init database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("migrate database: %v", err)
	}
	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Fatalf("init default admin: %v", err)
	}

	author := seedUser(stdLog.Fatalf, "ana@example.com", "Ana", "seed-password-1")
	reader := seedUser(stdLog.Fatalf, "bruno@example.com", "Bruno", "seed-password-2")

	posts := []models.Post{
		{
			Title:    "Meu Primeiro Post",
			Slug:     "meu-primeiro-post",
			Content:  "Bem-vindo ao blog. Este é o primeiro post publicado.",
			Status:   constants.PostStatusPublished,
			AuthorID: author.ID,
		},
		{
			Title:    "Rascunho em Andamento",
			Slug:     "rascunho-em-andamento",
			Content:  "Este texto ainda não está pronto para o mundo.",
			Status:   constants.PostStatusDraft,
			AuthorID: author.ID,
		},
	}
	for i := range posts {
		seedPost(stdLog.Fatalf, &posts[i])
	}

	var published models.Post
	if err := models.DB.Where("slug = ?", "meu-primeiro-post").First(&published).Error; err != nil {
		stdLog.Fatalf("load seeded post: %v", err)
	}
	seedComment(stdLog.Fatalf, published.ID, reader.ID, "Ótimo texto, parabéns!", true)
	seedComment(stdLog.Fatalf, published.ID, reader.ID, "Aguardando moderação...", false)

	stdLog.Printf("seed complete")
}

func seedUser(fatalf func(format string, v ...interface{}), email, name, password string) *models.User {
	var existing models.User
	if err := models.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return &existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fatalf("hash password: %v", err)
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  name,
		Locale:       constants.LocalePtBR,
		Status:       constants.UserStatusActive,
	}
	if err := models.DB.Create(user).Error; err != nil {
		fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedPost(fatalf func(format string, v ...interface{}), post *models.Post) {
	var count int64
	models.DB.Model(&models.Post{}).Where("slug = ?", post.Slug).Count(&count)
	if count > 0 {
		return
	}
	if err := models.DB.Create(post).Error; err != nil {
		fatalf("seed post %s: %v", post.Slug, err)
	}
}

func seedComment(fatalf func(format string, v ...interface{}), postID, authorID uint, content string, approved bool) {
	var count int64
	models.DB.Model(&models.Comment{}).
		Where("post_id = ? AND author_id = ? AND content = ?", postID, authorID, content).
		Count(&count)
	if count > 0 {
		return
	}
	comment := &models.Comment{PostID: postID, AuthorID: authorID, Content: content, Approved: approved}
	if err := models.DB.Create(comment).Error; err != nil {
		fatalf("seed comment: %v", err)
	}
}

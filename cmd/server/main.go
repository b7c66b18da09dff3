package main

import (
	"flag"
	"os"
	"strings"

	"github.com/escriba/internal/app"
	"github.com/escriba/internal/config"
	"github.com/escriba/internal/logger"
	"github.com/escriba/internal/models"

	"github.com/gin-gonic/gin"
)

const banner = `
  ______               _ _
 |  ____|             (_) |
 | |__   ___  ___ _ __ _| |__   __ _
 |  __| / __|/ __| '__| | '_ \ / _' |
 | |____\__ \ (__| |  | | |_) | (_| |
 |______|___/\___|_|  |_|_.__/ \__,_|
`

func main() {
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all | api | worker")
	flag.Parse()

	os.Stdout.WriteString(banner + "\n")

	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
		checkSecret(stdLog.Fatalf, "jwt.secret", cfg.JWT.SecretKey)
		checkSecret(stdLog.Fatalf, "user_jwt.secret", cfg.UserJWT.SecretKey)
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:    cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:    cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.Pool.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.Pool.ConnMaxIdleTime,
	}); err != nil {
		stdLog.Fatalf("init database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("migrate database: %v", err)
	}
	if err := models.InitDefaultAdmin(
		os.Getenv("ESCRIBA_DEFAULT_ADMIN_USERNAME"),
		os.Getenv("ESCRIBA_DEFAULT_ADMIN_PASSWORD"),
	); err != nil {
		stdLog.Fatalf("init default admin: %v", err)
	}

	logger.Infow("server_booting", "mode", mode, "addr", cfg.Server.Addr())
	if err := app.Run(app.Options{Config: cfg, Mode: mode}); err != nil {
		stdLog.Fatalf("run: %v", err)
	}
}

// checkSecret 生产模式拒绝弱密钥
func checkSecret(fatalf func(format string, v ...interface{}), name, secret string) {
	lowered := strings.ToLower(secret)
	if len(secret) < 32 ||
		strings.Contains(lowered, "change-me") ||
		strings.Contains(lowered, "secret") ||
		strings.Contains(lowered, "example") {
		fatalf("%s is weak or default, set a random value of at least 32 characters", name)
	}
}

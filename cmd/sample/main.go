// Command sample runs a minimal site protected by Telegram login: the login
// endpoint exchanges a widget redirect for a session token and /api/me echoes
// the authenticated identity.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RazorNd/telegram-login/auth"
	"github.com/RazorNd/telegram-login/authctx"
	"github.com/RazorNd/telegram-login/config"
	"github.com/RazorNd/telegram-login/logger"
	"github.com/RazorNd/telegram-login/login"
	"github.com/RazorNd/telegram-login/server"
	"github.com/RazorNd/telegram-login/session"

	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "config.yml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.GetGlobalLogger().Fatal("Failed to load configuration", map[string]any{
			logger.FieldError: err.Error(),
		})
	}

	log := logger.New(&cfg.Logging, "telegram-login-sample")
	logger.SetGlobalLogger(log)
	log.Info("Configuration loaded", map[string]any{"config": cfg.Describe()})

	validator := login.NewComposite(
		login.NewHashValidator(cfg.BotToken),
		&login.ExpirationValidator{Window: cfg.ExpirationWindow, Now: time.Now},
	)
	authenticator := auth.NewAuthenticator(validator)

	sessions, err := session.NewService(&cfg.Session)
	if err != nil {
		log.Fatal("Failed to create session service", map[string]any{
			logger.FieldError: err.Error(),
		})
	}

	srv := server.New(cfg.Server, authenticator, sessions, log)
	srv.Protected("/api").GET("/me", me)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		log.Fatal("Failed to start server", map[string]any{
			logger.FieldError: err.Error(),
		})
	}

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", map[string]any{
			logger.FieldError: err.Error(),
		})
	}
}

// me returns the session claims of the authenticated user.
func me(c *gin.Context) {
	claims := authctx.MustGet[*session.Claims](c.Request.Context())
	server.RespondOK(c, gin.H{
		"telegram_id": claims.TelegramID,
		"username":    claims.Username,
		"authorities": claims.Authorities,
	})
}

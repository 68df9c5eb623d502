package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gestao_tarefas_backend/internals/configs"
	database "gestao_tarefas_backend/internals/databases"
	authService "gestao_tarefas_backend/internals/features/auth/service"
	routes "gestao_tarefas_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	// 🔌 DB connect + migrations
	db := database.ConnectDB(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Falha nas migrations: %v", err)
	}

	keepAlive, err := database.StartKeepAlive(db, cfg.KeepAliveCron)
	if err != nil {
		log.Printf("⚠️ keep-alive não agendado: %v", err)
	}

	tokens, err := authService.NewTokenService(cfg.SecretKey, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatalf("❌ Configuração JWT inválida: %v", err)
	}
	auth := authService.NewAuthService(db, tokens)

	app := routes.NewApp(cfg)
	routes.SetupRoutes(app, db, cfg, auth)

	go func() {
		log.Printf("🚀 %s v%s ouvindo em :%s (%s)", cfg.APITitle, cfg.APIVersion, cfg.Port, cfg.AppEnv)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + fecha pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("👋 Encerrando aplicação...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	if keepAlive != nil {
		<-keepAlive.Stop().Done()
	}
	database.Close(db)
}

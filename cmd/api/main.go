package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diagramadoria/internal/api/handlers"
	"diagramadoria/internal/api/server"
	"diagramadoria/internal/config"
	"diagramadoria/internal/logger"
	"diagramadoria/internal/service"
	storageGorm "diagramadoria/internal/storage/gorm"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found")
	}
	envConfig := config.NewEnvConfig()
	envConfig.PrintConfigWithHiddenSecrets()

	logger.Setup(envConfig)

	txManager, err := storageGorm.NewTxManager(envConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	appService := service.New(txManager)
	appHandler := handlers.NewHandler(appService, envConfig.JWTSecret)
	apiServer := server.NewServer(envConfig, appHandler)

	go apiServer.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Msg(fmt.Sprintf("signal received: %s — starting graceful shutdown", s))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	apiServer.Shutdown(ctx)

	log.Info().Msg("service shutdown gracefully")
}

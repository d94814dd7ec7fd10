package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/config"
	"github.com/FrankSCarvalho/sistema-pdv/internal/infra"
	"github.com/FrankSCarvalho/sistema-pdv/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração")
	}

	db, err := infra.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao abrir o banco de dados")
	}

	cb := infra.NewCircuitBreaker(infra.CBConfigPadrao())
	atualizador := infra.NewAtualizador(cfg.UpdateURL, cfg.AppVersion, cb)

	r := router.New(cfg, db, atualizador)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Encerramento gracioso em SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("sistema-pdv ouvindo em :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("erro no servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando servidor…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("encerramento forçado")
	}
	log.Info().Msg("servidor finalizado")
}

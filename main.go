package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "farekiosk/internal/config"
	router "farekiosk/internal/http"
	"farekiosk/internal/services"
	"farekiosk/internal/shell"
	"farekiosk/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const usage = `usage: farekiosk [shell|serve]

  shell   interactive fare kiosk on the terminal (default)
  serve   HTTP quote API on APP_ADDR
`

func main() {
	cfg, err := intconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := utils.InitLogger(cfg.Env.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error initializing logger: %v\n", err)
		os.Exit(1)
	}

	mode := "shell"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	signer, err := newSigner(cfg, mode)
	if err != nil {
		log.Fatalf("voucher signer: %v", err)
	}

	switch mode {
	case "shell":
		runShell(cfg, signer)
	case "serve":
		runServer(cfg, signer)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

// newSigner falls back to a per-process secret when VOUCHER_SECRET is unset.
// Only serve mode warns; in the shell stderr shares the kiosk screen.
func newSigner(cfg intconfig.Config, mode string) (*services.VoucherSigner, error) {
	secret := cfg.Env.VoucherSecret
	if secret == "" {
		secret = uuid.NewString()
		entry := log.WithField("mode", mode)
		if mode == "serve" {
			entry.Warn("VOUCHER_SECRET not set, verification codes are only valid for this process")
		} else {
			entry.Debug("VOUCHER_SECRET not set, using a per-process secret")
		}
	}
	return services.NewVoucherSigner(secret, cfg.Kiosk.VoucherTTL)
}

func runShell(cfg intconfig.Config, signer *services.VoucherSigner) {
	vouchers := services.VoucherService{Signer: signer, KioskName: cfg.Kiosk.Name}
	if err := shell.New(os.Stdin, os.Stdout, cfg.Kiosk, vouchers).Run(); err != nil {
		log.WithError(err).Error("kiosk session ended with error")
		os.Exit(1)
	}
}

func runServer(cfg intconfig.Config, signer *services.VoucherSigner) {
	if cfg.Env.GinMode != "" {
		gin.SetMode(cfg.Env.GinMode)
	}

	r := router.NewRouter(cfg, signer)

	srv := &http.Server{
		Addr:              cfg.Env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("fare kiosk api listening on %s", cfg.Env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Info("server stopped")
}

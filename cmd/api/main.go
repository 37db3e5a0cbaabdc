package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	productrepo "github.com/thirteen-hero/myCats-server/internal/product/repo"
	"github.com/thirteen-hero/myCats-server/internal/router"
	"github.com/thirteen-hero/myCats-server/internal/token"
	userrepo "github.com/thirteen-hero/myCats-server/internal/user/repo"
	"github.com/thirteen-hero/myCats-server/pkg/database"
	"github.com/thirteen-hero/myCats-server/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, err := utilities.Init(utilities.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting myCats-server")

	// init store
	cfg := database.ConfigFromEnv()
	client, db, err := database.Connect(cfg)
	if err != nil {
		sugar.Fatalf("mongo connect: %v", err)
	}

	// indexes are idempotent; the unique username index backs the register flow
	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userrepo.NewUserRepo(db).EnsureIndexes(idxCtx); err != nil {
		sugar.Fatalf("ensure user indexes: %v", err)
	}
	if err := productrepo.NewProductRepo(db).EnsureIndexes(idxCtx); err != nil {
		sugar.Fatalf("ensure product indexes: %v", err)
	}
	idxCancel()

	// signing secret and token lifetime are read once and never mutated
	tokenCfg := token.ConfigFromEnv()
	if tokenCfg.DefaultSecret {
		sugar.Warn("JWT_SECRET not set; using the built-in development secret, tokens are forgeable")
	}
	issuer := token.NewIssuer(tokenCfg)

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sugar.Info("service is running; press Ctrl+C to stop")

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "public"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = filepath.Join(staticDir, "upload")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8001"
	}

	// mount http server
	handler := router.RegisterRoutes(sugar, db, issuer, router.Options{
		StaticDir: staticDir,
		UploadDir: uploadDir,
	})
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// run server in background
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	sugar.Info("shutting down")

	// give a short grace period for cleanup
	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// shutdown http server first so in-flight requests finish
	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	// tear down the store connection
	if err := client.Disconnect(doneCtx); err != nil {
		sugar.Warnf("mongo disconnect failed: %v", err)
	}

	sugar.Info("goodbye")
}

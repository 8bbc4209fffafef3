package main

import (
	"context"
	"fmt"
	"log/slog"
	"media-lab/domain"
	"media-lab/infrastructure/storage"
	"media-lab/infrastructure/transport"
	"media-lab/internal"
	"media-lab/repositories"
	"media-lab/runtime"
	"media-lab/runtime/workers"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the engine lifecycle, and
// centralizes error reporting, so every defer (database cleanup included)
// executes before the process exits.
func run() error {
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := newLogger(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	partStore := storage.NewPartRepository(db, log)

	root := config.TransportRoot
	if root == "" {
		root = os.TempDir()
	}
	remote := transport.NewLocalTransport(root, config.DefaultPartSize, log)

	// The local refresh source hands back the stored copy; a real client
	// plugs its sync layer in here.
	var messages *repositories.MessageStore
	messages = repositories.NewMessageStore(func(ctx context.Context, folder domain.FolderID, id string) (domain.Message, error) {
		msg, ok := messages.GetMessage(folder, id)
		if !ok {
			return domain.Message{}, fmt.Errorf("message %s not found in folder %d", id, folder)
		}
		return msg, nil
	}, log)

	registry := runtime.NewTransferRegistry()
	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(
		log, sup, registry, remote, partStore, messages, messages, messages,
		config.LaneCount, config.LaneQueueSize, config.LaneThrottle,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.DefaultMapper, func() map[string]any {
		return map[string]any{
			"Downloading": len(orchestrator.DownloadingFiles()),
			"Streaming":   len(orchestrator.StreamingFiles()),
			"Sending":     len(orchestrator.SendingMessages()),
		}
	})
	log.Info("Inspector listening", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))

	orchestrator.Start(ctx)
	<-ctx.Done()
	orchestrator.Stop()
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

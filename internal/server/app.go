// Package server wires the share server together: configuration, database
// and object storage, the verification gate, the download pipeline, the
// cleanup sweep and the public gRPC endpoint. Shutdown is signal-driven
// and graceful.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/logging"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/config"
	gs "github.com/balahero03/Zero-Trust-Share-sub000/internal/server/grpc"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/notify"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/repositories/repomanager"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/services"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/server/storage"
)

// purgeBatchSize bounds one sweep of the expired-share cleanup.
const purgeBatchSize = 500

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	shareService      *services.ShareService
	gateService       *services.GateService
	downloadService   *services.DownloadService
	invitationService *services.InvitationService
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store := storage.NewS3Store(storage.S3Options{
		RootUser:     cfg.S3RootUser,
		RootPassword: cfg.S3RootPassword,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		PresignTTL:   15 * time.Minute,
	})

	sender := notify.NewRetryingSender(
		notify.NewWebhookSender(cfg.DeliveryGatewayURL, nil),
		uint64(cfg.DeliveryMaxRetries), 0)

	shares := services.NewShareService(db, rm, store, store, logger, cfg)
	gate := services.NewGateService(db, rm, sender, logger, cfg)
	downloads := services.NewDownloadService(db, rm, store, shares, gate, logger)
	invitations := services.NewInvitationService(db, rm, logger, cfg)

	return &App{
		config:            cfg,
		logger:            logger,
		db:                db,
		shareService:      shares,
		gateService:       gate,
		downloadService:   downloads,
		invitationService: invitations,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.shareService, app.gateService, app.downloadService, app.invitationService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.shareService.RunPurgeLoop(ctx, app.config.PurgeInterval, purgeBatchSize)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}

package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/matbakh-tech/go-backend/internal/cfg"
	v1Http "github.com/matbakh-tech/go-backend/internal/delivery/v1/http"
	"github.com/matbakh-tech/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/matbakh-tech/go-backend/internal/infrastructure/minio"
	"github.com/matbakh-tech/go-backend/internal/infrastructure/whatsapp"
	s3Repo "github.com/matbakh-tech/go-backend/internal/repository/minio"
	"github.com/matbakh-tech/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/matbakh-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/matbakh-tech/go-backend/internal/repository/redis"
	redisConv "github.com/matbakh-tech/go-backend/internal/repository/redis/converter"
	"github.com/matbakh-tech/go-backend/internal/usecase"
	"github.com/matbakh-tech/go-backend/pkg/clients"
	"github.com/matbakh-tech/go-backend/pkg/closer"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/logger"
	"github.com/matbakh-tech/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает хранилища, инфраструктуру и HTTP-сервер витрины.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker
	imagesInfra  *minioInfra.MinioInfrastructure

	shutdownCancel context.CancelFunc
	workerCancel   context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const op = "app.NewApp"

	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("database pool closed")
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(op, err)
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter())
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, pgdbConv.NewCategoryConverter())
	zoneRepo := pgdb.NewDeliveryZoneRepo(db.Pool, pgdbConv.NewDeliveryZoneConverter())
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.NewOutboxEventConverter())

	productConv := redisConv.NewProductConverter()
	cacheRepo := redis.NewCacheRepo(redisClient, productConv, cfg.Redis, log)
	cartRepo := redis.NewCartRepo(redisClient, redisConv.NewCartItemConverter(productConv), cfg.Redis, log)

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)

	dispatcher := whatsapp.NewDispatcher(cfg.Dispatch)

	catalogUC := usecase.NewCatalogUC(
		productRepo,
		categoryRepo,
		zoneRepo,
		outboxRepo,
		cacheRepo,
		imagesInfra,
		db.Pool,
		log,
	)

	cartUC := usecase.NewCartUC(
		cartRepo,
		productRepo,
		zoneRepo,
		outboxRepo,
		cacheRepo,
		db.Pool,
		dispatcher,
		cfg.Dispatch,
		log,
	)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg, log)
	router.Init(catalogUC, cartUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:            cfg,
		logger:         log,
		closer:         cl,
		httpSrv:        httpSrv,
		outboxWorker:   outboxWorker,
		imagesInfra:    imagesInfra,
		shutdownCancel: shutdownCancel,
	}, nil
}

// Run запускает HTTP-сервер и outbox worker и блокируется
// до сигнала завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.workerCancel = workerCancel
	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	a.stop()

	return appErr
}

// stop проводит ступенчатое завершение: сервер, worker, фоновые
// компенсации, затем клиенты в порядке LIFO.
func (a *App) stop() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	a.workerCancel()
	a.outboxWorker.Stop()
	a.logger.Infof("outbox worker stopped")

	if err := a.imagesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}
	a.shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource shutdown: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

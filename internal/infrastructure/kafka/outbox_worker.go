package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/matbakh-tech/go-backend/internal/usecase"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/jitter"
	"github.com/matbakh-tech/go-backend/pkg/logger"
)

const (
	notifyChannel = "outbox_pending"
	batchSize     = 10
	waitTimeout   = 30 * time.Second
)

// OutboxWorker выгружает зафиксированные события из таблицы outbox_events
// в Kafka. Новые события приходят через NOTIFY, остатки добираются при
// старте и по таймауту ожидания.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	dbConnStr string
	stop      chan struct{}
	wg        sync.WaitGroup
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		dbConnStr: dbConnStr,
		stop:      make(chan struct{}),
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		// События, оставшиеся с прошлого запуска.
		w.logger.Infof("draining pending outbox events on startup")
		w.drain(ctx)

		w.listen(ctx)
	}()
}

func (w *OutboxWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// listen держит отдельное соединение с LISTEN и выгружает события
// по каждому уведомлению. Потерянное соединение восстанавливается
// с задержкой и джиттером.
func (w *OutboxWorker) listen(ctx context.Context) {
	conn, err := w.subscribe(ctx)
	if err != nil {
		w.logger.Warnf("initial LISTEN connect failed: %v", err)
		return
	}
	defer conn.Close(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		waitCtx, cancel := context.WithTimeout(ctx, waitTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				// Страховка на случай потерянного NOTIFY.
				w.drain(ctx)
				continue
			}
			if errors.Is(err, context.Canceled) {
				continue
			}

			w.logger.Warnf("LISTEN connection lost: %v, reconnecting", err)
			conn.Close(ctx)
			time.Sleep(jitter.Duration(2*time.Second, jitter.DefaultJitter))

			conn, err = w.subscribe(ctx)
			if err != nil {
				w.logger.Warnf("reconnect failed: %v", err)
				time.Sleep(jitter.Duration(5*time.Second, jitter.DefaultJitter))
				conn, err = w.subscribe(ctx)
				if err != nil {
					w.logger.Errorf(err, "LISTEN connection could not be restored")
					return
				}
			}
			continue
		}

		if notif != nil && notif.Channel == notifyChannel {
			w.logger.Debugf("outbox notification received")
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) subscribe(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, w.dbConnStr)
	if err != nil {
		return nil, e.Wrap("connect for LISTEN", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Close(ctx)
		return nil, e.Wrap("LISTEN "+notifyChannel, err)
	}

	w.logger.Infof("subscribed to '%s' channel", notifyChannel)
	return conn, nil
}

// drain выгружает события партиями, пока таблица не опустеет.
func (w *OutboxWorker) drain(ctx context.Context) {
	for {
		events, err := w.repo.GetAndMarkAsProcessing(ctx, batchSize)
		if err != nil {
			w.logger.Warnf("outbox batch failed: %v", err)
			return
		}
		if len(events) == 0 {
			return
		}

		for _, event := range events {
			if err := w.publish(ctx, event); err != nil {
				// Событие останется в статусе processing и будет
				// подобрано после истечения processing_started_at.
				w.logger.Warnf("publish event %s failed: %v", event.EventID, err)
				continue
			}
			if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
				w.logger.Warnf("mark processed failed: %v", err)
			}
		}
	}
}

func (w *OutboxWorker) publish(ctx context.Context, event *usecase.OutboxEvent) error {
	err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.Key, event.Payload))
	if err != nil {
		if isRetryableError(err) {
			return e.Wrap("temporary kafka failure", err)
		}
		return e.Wrap("permanent kafka failure", err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, phrase := range []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}

	return false
}

// Package kafka содержит потребитель фида импорта меню.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/RoGogDBD/menucat/internal/config"
	"github.com/RoGogDBD/menucat/internal/models"
	"github.com/RoGogDBD/menucat/internal/repository"
	"github.com/RoGogDBD/menucat/internal/retry"
	"github.com/RoGogDBD/menucat/internal/validation"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"
)

// FeedEvent описывает событие фида импорта меню.
type FeedEvent struct {
	EventID string                `json:"event_id"`
	Item    models.MenuItemCreate `json:"item"`
}

// RunConsumer читает события фида и вставляет позиции меню в хранилище.
// Запись с невалидными полями пропускается, ошибка соединения с БД
// повторяется с экспоненциальной задержкой.
func RunConsumer(ctx context.Context, cfg config.KafkaConfig, store repository.MenuStore) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("kafka reader close error: %v", err)
		}
	}()

	validate := validation.New()
	policy := retry.Policy{
		MaxRetries:  cfg.MaxRetries,
		Backoff:     retry.NewBackoff(cfg.Backoff, cfg.BackoffCap, cfg.BackoffJitter),
		ShouldRetry: isRetriableStoreError,
	}

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			log.Printf("kafka read error: %v", err)
			return
		}

		var evt FeedEvent
		if err := json.Unmarshal(m.Value, &evt); err != nil {
			log.Printf("invalid feed message: %v", err)
			continue
		}

		if err := validate.Struct(&evt.Item); err != nil {
			log.Printf("validation failed for feed event %s: %v", evt.EventID, err)
			continue
		}
		if evt.Item.Price == nil {
			log.Printf("missing price in feed event %s", evt.EventID)
			continue
		}

		item := evt.Item.Item()
		err = retry.Do(ctx, policy, func() error {
			_, insertErr := store.Insert(ctx, &item)
			return insertErr
		}, func(err error, attempt int, wait time.Duration) {
			log.Printf("insert retry %d for feed event %s in %s: %v", attempt, evt.EventID, wait, err)
		})
		if err != nil {
			log.Printf("failed to save menu item from feed event %s: %v", evt.EventID, err)
			continue
		}

		log.Printf("successfully imported menu item %q from feed event %s", item.Name, evt.EventID)
	}
}

// isRetriableStoreError отмечает ошибки соединения Postgres (класс 08).
func isRetriableStoreError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08"
	}
	return false
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"

	"github.com/RoGogDBD/menucat/internal/config"
	kafkapkg "github.com/RoGogDBD/menucat/internal/kafka"
	"github.com/RoGogDBD/menucat/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var sampleItems = []models.MenuItemCreate{
	{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: price(8.5), Category: "main", Cuisine: "italian"},
	{Name: "Bruschetta", Description: "Grilled bread with tomatoes", Price: price(4.0), Category: "starter", Cuisine: "italian"},
	{Name: "Tiramisu", Description: "Coffee-flavoured dessert", Price: price(5.5), Category: "dessert", Cuisine: "italian"},
	{Name: "Tom Yum", Description: "Hot and sour soup", Price: price(7.0), Category: "starter", Cuisine: "thai"},
}

func price(v float64) *float64 {
	return &v
}

func main() {
	count := flag.Int("count", len(sampleItems), "Number of feed events to send")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("Kafka brokers or topic not configured")
	}

	w := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    cfg.Kafka.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("kafka writer close error: %v", err)
		}
	}()

	for i := 0; i < *count; i++ {
		evt := kafkapkg.FeedEvent{
			EventID: uuid.New().String(),
			Item:    sampleItems[i%len(sampleItems)],
		}

		evtJSON, err := json.Marshal(evt)
		if err != nil {
			log.Fatalf("Failed to marshal feed event: %v", err)
		}

		err = w.WriteMessages(context.Background(),
			kafka.Message{
				Key:   []byte(evt.EventID),
				Value: evtJSON,
			},
		)
		if err != nil {
			log.Fatalf("Failed to send message: %v", err)
		}

		log.Printf("Feed event %d sent successfully with event_id: %s", i+1, evt.EventID)
	}
}

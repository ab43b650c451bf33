//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Публикует тестовую запись о дальнем запросе в stream:parking:far-query,
// чтобы проверить cmd/worker без нагрузки на API.
//
//	go run scripts/test_publish.go -redis localhost:6379 -lat -34.70 -lon -58.50

type farQueryRecord struct {
	ID        uuid.UUID `json:"id"`
	Latitud   float64   `json:"latitud"`
	Longitud  float64   `json:"longitud"`
	CreatedAt time.Time `json:"created_at"`
}

const stream = "stream:parking:far-query"

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	lat := flag.Float64("lat", -34.70, "query latitude")
	lon := flag.Float64("lon", -58.50, "query longitude")
	group := flag.String("group", "parking-audit-workers", "consumer group to watch")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	record := farQueryRecord{
		ID:        uuid.New(),
		Latitud:   *lat,
		Longitud:  *lon,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Fatalf("Failed to marshal record: %v", err)
	}

	messageID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish record: %v", err)
	}

	fmt.Printf("Record published\n")
	fmt.Printf("   Stream: %s\n", stream)
	fmt.Printf("   Message ID: %s\n", messageID)
	fmt.Printf("   Record ID: %s\n", record.ID)
	fmt.Printf("   Coordinates: %.6f, %.6f\n", record.Latitud, record.Longitud)

	fmt.Printf("\nWaiting for group %q to ack the message...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout: message is still unacknowledged (is cmd/worker running?)")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, stream).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Name != *group {
					continue
				}
				if g.Pending == 0 && g.LastDeliveredID >= messageID {
					fmt.Println("Acknowledged: record persisted to notification_distances")
					return
				}
			}
		}
	}
}

package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the snapshot /health reports: the Mongo store behind the
// slot, doctor and appointment collections, and each redis database by the
// concern it backs (cache, auth tokens, pending OTPs).
type HealthStatus struct {
	SlotStore bool            `json:"slotStore"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the backing stores once a minute and keeps the
// result in memory, so /health answers instantly instead of fanning out on
// every request.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealth := make(map[string]bool, len(redisClients))
			for concern, client := range redisClients {
				redisHealth[concern] = client.Ping(ctx).Err() == nil
			}

			snapshot := HealthStatus{
				SlotStore: mongoClient.Ping(ctx, nil) == nil,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}

package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     []bool    `json:"redis"`
	Sheets    bool      `json:"sheets"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. sheetsPing should do a cheap read against the booking spreadsheet.
func StartHealthMonitor(redisClients []*redis.Client, sheetsPing func(context.Context) error) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var redisHealth []bool
			for _, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth = append(redisHealth, err == nil)
			}

			sheetsHealthy := true
			if sheetsPing != nil {
				pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				sheetsHealthy = sheetsPing(pingCtx) == nil
				cancel()
			}

			healthMu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealth,
				Sheets:    sheetsHealthy,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}

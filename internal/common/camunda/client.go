// internal/common/camunda/client.go
package camunda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lumina-workers/internal/common/config"
	"lumina-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// RetryConfig defines retry behavior for the initial broker connection.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = RetryConfig{
	MaxRetries: 5,
	BaseDelay:  2 * time.Second,
	MaxDelay:   30 * time.Second,
}

// Connect opens a zeebe client and waits until the gateway answers a
// topology request, backing off between attempts on transient errors.
func Connect(ctx context.Context, cfg config.CamundaConfig, retry RetryConfig, log logger.Logger) (zbc.Client, error) {
	client, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         cfg.BrokerAddress,
		UsePlaintextConnection: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zeebe client: %w", err)
	}

	requestTimeout := config.GetDuration(cfg.RequestTimeout)
	delay := retry.BaseDelay

	for attempt := 1; ; attempt++ {
		err = HealthCheck(ctx, client, requestTimeout)
		if err == nil {
			log.Info("connected to zeebe", map[string]interface{}{"address": cfg.BrokerAddress, "attempt": attempt})
			return client, nil
		}
		if !isRetryableZeebeError(err) || attempt >= retry.MaxRetries {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to zeebe broker at %s after %d attempts: %w", cfg.BrokerAddress, attempt, err)
		}

		log.Warn("zeebe not ready, retrying", map[string]interface{}{
			"attempt":    attempt,
			"maxRetries": retry.MaxRetries,
			"delay":      delay.String(),
			"error":      err,
		})

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > retry.MaxDelay {
			delay = retry.MaxDelay
		}
	}
}

// HealthCheck issues a topology request against the gateway.
func HealthCheck(ctx context.Context, client zbc.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}

func isRetryableZeebeError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, phrase := range []string{
		"connection refused",
		"connection reset",
		"timeout",
		"deadline exceeded",
		"unavailable",
		"unreachable",
		"broken pipe",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

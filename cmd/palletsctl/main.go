package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/palletsapi/internal/config"
	"github.com/gabapcia/palletsapi/internal/handlers/cli"
	"github.com/gabapcia/palletsapi/internal/infra/relay"
	"github.com/gabapcia/palletsapi/internal/infra/storage/redis"
	"github.com/gabapcia/palletsapi/internal/infra/substrate"
	"github.com/gabapcia/palletsapi/internal/pkg/logger"
	"github.com/gabapcia/palletsapi/internal/pkg/resilience/retry"
	"github.com/gabapcia/palletsapi/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/palletsapi/internal/pkg/transport/http"
	"github.com/gabapcia/palletsapi/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/palletsapi/internal/relayqueue"
	"github.com/gabapcia/palletsapi/watcher"
)

const userAgent = "palletsctl"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.Endpoint,
		Insecure:    cfg.Telemetry.Insecure,
		Enabled:     cfg.Telemetry.Enabled,
	})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	var opts []substrate.Option
	if cfg.SignerKey != "" {
		signer, err := substrate.NewSigner(cfg.SignerKey)
		if err != nil {
			return fmt.Errorf("signer key: %w", err)
		}
		opts = append(opts, substrate.WithSigner(signer))
	}

	dial := retry.New(
		retry.WithAttempts(cfg.Dial.Attempts),
		retry.WithDelay(cfg.Dial.Delay),
		retry.WithMaxDelay(cfg.Dial.MaxDelay),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "node dial failed, retrying", "url", cfg.NodeURL, "attempt", attempt+1, "error", err)
		}),
	)

	client, err := substrate.Dial(ctx, cfg.NodeURL, dial, opts...)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.NodeURL, err)
	}
	defer client.Close()

	deps := cli.Dependencies{
		Client:  client,
		Watcher: watcher.New(client),
	}

	store, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, redis.WithOutboxKey(cfg.Redis.OutboxKey))
	if err != nil {
		logger.Warn(ctx, "relay outbox unavailable", "addr", cfg.Redis.Addr, "error", err)
	} else {
		defer store.Close()
		deps.Outbox = relayqueue.New(store, forwarder(cfg.Forward, client), retry.New(retry.WithAttempts(cfg.Forward.Attempts)))
	}

	return cli.Run(ctx, deps)
}

// forwarder broadcasts through the node at cfg.URL, or through the connected
// node when none is configured.
func forwarder(cfg config.Forward, client *substrate.Client) relayqueue.Forwarder {
	if cfg.URL == "" {
		return client
	}

	return relay.NewClient(jsonrpc.NewClient(cfg.URL,
		transporthttp.WithTimeout(cfg.Timeout),
		transporthttp.WithRetryMax(cfg.RetryMax),
		transporthttp.WithUserAgent(userAgent),
	))
}

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/palletsapi/internal/relayqueue"
)

// outboxCommand groups the relay outbox commands.
//
//	palletsctl outbox pending
//	palletsctl outbox flush --batch 20
func outboxCommand(outbox relayqueue.Service) *cli.Command {
	return &cli.Command{
		Name:        "outbox",
		Description: "Inspect and flush the relay outbox.",
		Usage:       "Queued relay extrinsics are broadcast by flush, oldest first.",
		Commands: []*cli.Command{
			{
				Name:        "pending",
				Description: "Print the number of queued relay extrinsics.",
				Usage:       "Counts the outbox entries.",
				Action: func(ctx context.Context, c *cli.Command) error {
					if outbox == nil {
						return ErrOutboxUnavailable
					}

					n, err := outbox.Pending(ctx)
					if err != nil {
						return err
					}

					printf(c, "%d\n", n)
					return nil
				},
			},
			{
				Name:        "flush",
				Description: "Broadcast queued relay extrinsics.",
				Usage:       "Entries the node rejects are dropped; a transport failure stops the flush.",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:  "batch",
						Usage: "Maximum number of entries to broadcast",
						Value: relayqueue.DefaultBatchSize,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if outbox == nil {
						return ErrOutboxUnavailable
					}

					report, err := outbox.Flush(ctx, c.Int64("batch"))
					for _, f := range report.Forwarded {
						printf(c, "forwarded %s %s %s\n", f.Entry.ID, f.Entry.Operation, f.Hash.Hex())
					}
					for _, r := range report.Rejected {
						printf(c, "rejected %s %s: %v\n", r.Entry.ID, r.Entry.Operation, r.Err)
					}

					return err
				},
			},
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v3"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/relayqueue"
	"github.com/gabapcia/palletsapi/pallets/mining"
)

const operationReportResult = "report_result"

// reportResultCommand relays a committee signing result through the channel
// precompile. --encode-only prints the unsigned extrinsic instead of
// submitting it and --enqueue stores it in the relay outbox.
//
//	palletsctl report-result --pk 0x.. --sig 0x.. --cid 7 --fork-id 0 --hash 0x.. --signature 0x..
func reportResultCommand(w Watcher, outbox relayqueue.Service) *cli.Command {
	return &cli.Command{
		Name:        "report-result",
		Description: "Relay a committee signing result through the channel precompile.",
		Usage:       "Submits the relay, or encodes it with --encode-only, or queues it with --enqueue.",
		Flags: []cli.Flag{
			hexFlag("pk", "Committee public key"),
			hexFlag("sig", "Committee signature"),
			uintFlag("cid", "Committee id"),
			uintFlag("fork-id", "Fork id"),
			hexFlag("hash", "Signed message hash (32 bytes)"),
			hexFlag("signature", "Device signature over the report"),
			&cli.BoolFlag{
				Name:  "encode-only",
				Usage: "Print the unsigned extrinsic instead of submitting it",
			},
			&cli.BoolFlag{
				Name:  "enqueue",
				Usage: "Store the unsigned extrinsic in the relay outbox",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			args, err := reportResultArgs(c)
			if err != nil {
				return err
			}

			enqueue := c.Bool("enqueue")
			if enqueue && outbox == nil {
				return ErrOutboxUnavailable
			}

			out, err := w.ReportResultByEVM(ctx, args.pk, args.sig, args.cid, args.forkID, args.hash, args.signature, enqueue || c.Bool("encode-only"))
			if err != nil {
				return err
			}

			if enqueue {
				entry, err := outbox.Enqueue(ctx, operationReportResult, out)
				if err != nil {
					return err
				}

				printf(c, "%s\n", entry.ID)
				return nil
			}

			printf(c, "%s\n", hexutil.Encode(out))
			return nil
		},
	}
}

type reportResult struct {
	pk, sig   []byte
	cid       uint32
	forkID    uint8
	hash      chain.Hash
	signature []byte
}

func reportResultArgs(c *cli.Command) (reportResult, error) {
	var (
		args reportResult
		err  error
	)

	if args.pk, err = hexBytes(c, "pk"); err != nil {
		return args, err
	}
	if args.sig, err = hexBytes(c, "sig"); err != nil {
		return args, err
	}
	if args.cid, err = narrow[uint32](c, "cid"); err != nil {
		return args, err
	}
	if args.forkID, err = narrow[uint8](c, "fork-id"); err != nil {
		return args, err
	}
	if args.signature, err = hexBytes(c, "signature"); err != nil {
		return args, err
	}

	hash, err := hexBytes(c, "hash")
	if err != nil {
		return args, err
	}
	if len(hash) != len(args.hash) {
		return args, fmt.Errorf("--hash: want %d bytes, got %d", len(args.hash), len(hash))
	}
	copy(args.hash[:], hash)

	return args, nil
}

// joinServiceCommand relays a device's request to join the service.
//
//	palletsctl join-service --id 0x.. --msg 0x.. --signature 0x..
func joinServiceCommand(w Watcher) *cli.Command {
	return serviceCommand(w, "join-service", "Relay a device's request to join the service through the mining precompile.", mining.PurposeJoin)
}

// exitServiceCommand relays a device's request to leave the service.
//
//	palletsctl exit-service --id 0x.. --msg 0x.. --signature 0x..
func exitServiceCommand(w Watcher) *cli.Command {
	return serviceCommand(w, "exit-service", "Relay a device's request to leave the service through the mining precompile.", mining.PurposeExit)
}

func serviceCommand(w Watcher, name, description string, purpose mining.Purpose) *cli.Command {
	return &cli.Command{
		Name:        name,
		Description: description,
		Usage:       "Submits the relay and prints the transaction hash.",
		Flags: []cli.Flag{
			hexFlag("id", "Device id"),
			hexFlag("msg", "Signed message"),
			hexFlag("signature", "Device signature over the message"),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := hexBytes(c, "id")
			if err != nil {
				return err
			}
			msg, err := hexBytes(c, "msg")
			if err != nil {
				return err
			}
			signature, err := hexBytes(c, "signature")
			if err != nil {
				return err
			}

			hash, err := w.JoinOrExitServiceUnsignedByEVM(ctx, id, msg, signature, purpose)
			if err != nil {
				return err
			}

			printf(c, "%s\n", hash)
			return nil
		},
	}
}

// heartbeatCommand submits a device heartbeat for a session.
//
//	palletsctl heartbeat --version 1 --pk 0x.. --session 42 --signature 0x.. --proof 0x.. --enclave 0x..
func heartbeatCommand(w Watcher) *cli.Command {
	flags := append(identityFlags(),
		uintFlag("session", "Session the heartbeat answers"),
		hexFlag("signature", "Device signature over the payload"),
		hexFlag("proof", "Challenge proof"),
		hexFlag("enclave", "Enclave hash"),
	)

	return &cli.Command{
		Name:        "heartbeat",
		Description: "Submit the heartbeat of a working device.",
		Usage:       "Submits Mining.im_online and prints the extrinsic hash.",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			did, err := identity(c)
			if err != nil {
				return err
			}
			session, err := narrow[uint32](c, "session")
			if err != nil {
				return err
			}
			signature, err := hexBytes(c, "signature")
			if err != nil {
				return err
			}
			proof, err := hexBytes(c, "proof")
			if err != nil {
				return err
			}
			enclave, err := hexBytes(c, "enclave")
			if err != nil {
				return err
			}

			hash, err := w.CallHeartbeat(ctx, did, signature, proof, session, enclave)
			if err != nil {
				return err
			}

			printf(c, "%s\n", hash)
			return nil
		},
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v3"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/pallets/committee"
	"github.com/gabapcia/palletsapi/pallets/ethereum"
	"github.com/gabapcia/palletsapi/pallets/mining"
)

// ErrNotFound is returned when the queried storage entry is absent.
var ErrNotFound = errors.New("not found")

// chainIDCommand prints the EVM chain id.
//
//	palletsctl chain-id
func chainIDCommand(client chain.Client) *cli.Command {
	return &cli.Command{
		Name:        "chain-id",
		Description: "Print the chain id EVM transactions are signed for.",
		Usage:       "Reads EVMChainId.ChainId at the latest block.",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, ok, err := ethereum.EVMChainID(ctx, client, nil)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("evm chain id: %w", ErrNotFound)
			}

			printf(c, "%d\n", id)
			return nil
		},
	}
}

// blockNumberCommand prints the latest block number.
//
//	palletsctl block-number
func blockNumberCommand(w Watcher) *cli.Command {
	return &cli.Command{
		Name:        "block-number",
		Description: "Print the number of the latest block.",
		Usage:       "Reads the latest block header.",
		Action: func(ctx context.Context, c *cli.Command) error {
			n, err := w.QueryCurrentBlockNumber(ctx)
			if err != nil {
				return err
			}

			printf(c, "%d\n", n)
			return nil
		},
	}
}

// committeeCommand prints the SCALE encoded committee record.
//
//	palletsctl committee --cid 7
func committeeCommand(client chain.Client) *cli.Command {
	return &cli.Command{
		Name:        "committee",
		Description: "Print the SCALE encoded record of a committee.",
		Usage:       "Reads Committee.Committees for the given committee id.",
		Flags: []cli.Flag{
			uintFlag("cid", "Committee id"),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cid, err := narrow[uint32](c, "cid")
			if err != nil {
				return err
			}

			record, ok, err := committee.Committees(ctx, client, cid, nil)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("committee %d: %w", cid, ErrNotFound)
			}

			printf(c, "%s\n", hexutil.Encode(record))
			return nil
		},
	}
}

// deviceCommand prints the SCALE encoded device record.
//
//	palletsctl device --id 0x02ab...
func deviceCommand(client chain.Client) *cli.Command {
	return &cli.Command{
		Name:        "device",
		Description: "Print the SCALE encoded record of a registered device.",
		Usage:       "Reads Mining.DeviceInfo for the given device id.",
		Flags: []cli.Flag{
			hexFlag("id", "Device id"),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := hexBytes(c, "id")
			if err != nil {
				return err
			}

			info, ok, err := mining.DeviceInfo(ctx, client, id, nil)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("device %s: %w", hexutil.Encode(id), ErrNotFound)
			}

			printf(c, "%s\n", hexutil.Encode(info))
			return nil
		},
	}
}

// sessionChallengeCommand prints the session and challenge a working device
// must answer.
//
//	palletsctl session-challenge --version 1 --pk 0x02ab...
func sessionChallengeCommand(w Watcher) *cli.Command {
	return &cli.Command{
		Name:        "session-challenge",
		Description: "Print the current session and its challenge for a working device.",
		Usage:       "Fails when the device is not working in the current session.",
		Flags:       identityFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			did, err := identity(c)
			if err != nil {
				return err
			}

			sc, ok, err := w.QuerySessionAndChallenge(ctx, did)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("session challenge for %s: %w", hexutil.Encode(did.PK), ErrNotFound)
			}

			printf(c, "session: %d\nchallenge: %s\n", sc.Session, hexutil.Encode(sc.Challenge))
			return nil
		},
	}
}

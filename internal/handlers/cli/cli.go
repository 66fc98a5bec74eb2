package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v3"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/relayqueue"
	"github.com/gabapcia/palletsapi/pallets/facility"
	"github.com/gabapcia/palletsapi/pallets/mining"
	"github.com/gabapcia/palletsapi/watcher"
)

// ErrOutboxUnavailable is returned by outbox commands when no outbox is
// configured.
var ErrOutboxUnavailable = errors.New("relay outbox unavailable")

// Watcher is the device watcher surface driven by the relay and session
// commands. *watcher.Service implements it.
type Watcher interface {
	CallHeartbeat(ctx context.Context, did facility.DIdentity, signature, proof []byte, session uint32, enclave []byte) (string, error)
	QuerySessionAndChallenge(ctx context.Context, did facility.DIdentity) (watcher.SessionChallenge, bool, error)
	ReportResultByEVM(ctx context.Context, pk, sig []byte, cid uint32, forkID uint8, hash chain.Hash, signature []byte, callBytes bool) ([]byte, error)
	JoinOrExitServiceUnsignedByEVM(ctx context.Context, id, msg, signature []byte, purpose mining.Purpose) (string, error)
	QueryCurrentBlockNumber(ctx context.Context) (uint32, error)
}

var _ Watcher = (*watcher.Service)(nil)

// Dependencies holds what the commands run against. Outbox may be nil, in
// which case the outbox commands and --enqueue fail with
// ErrOutboxUnavailable.
type Dependencies struct {
	Client  chain.Client
	Watcher Watcher
	Outbox  relayqueue.Service
}

// Run builds the palletsctl application and executes it with os.Args.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}

func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "palletsctl",
		Description:           "Command-line client for the runtime pallets and the device watcher relay.",
		Usage:                 "palletsctl [command] [flags]",
		Commands: []*cli.Command{
			chainIDCommand(deps.Client),
			blockNumberCommand(deps.Watcher),
			committeeCommand(deps.Client),
			deviceCommand(deps.Client),
			sessionChallengeCommand(deps.Watcher),
			reportResultCommand(deps.Watcher, deps.Outbox),
			joinServiceCommand(deps.Watcher),
			exitServiceCommand(deps.Watcher),
			heartbeatCommand(deps.Watcher),
			outboxCommand(deps.Outbox),
		},
	}
}

func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func printf(c *cli.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(output(c), format, args...)
}

// hexBytes decodes the 0x-prefixed value of flag name.
func hexBytes(c *cli.Command, name string) ([]byte, error) {
	b, err := hexutil.Decode(c.String(name))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}

func hexFlag(name, usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     name,
		Usage:    usage + " (0x-prefixed hex)",
		Required: true,
	}
}

func uintFlag(name, usage string) *cli.UintFlag {
	return &cli.UintFlag{
		Name:     name,
		Usage:    usage,
		Required: true,
	}
}

func identityFlags() []cli.Flag {
	return []cli.Flag{
		uintFlag("version", "Enclave version of the device"),
		hexFlag("pk", "Device public key"),
	}
}

func identity(c *cli.Command) (facility.DIdentity, error) {
	version, err := narrow[uint16](c, "version")
	if err != nil {
		return facility.DIdentity{}, err
	}

	pk, err := hexBytes(c, "pk")
	if err != nil {
		return facility.DIdentity{}, err
	}

	return facility.DIdentity{Version: version, PK: pk}, nil
}

// narrow reads the uint flag name into T, rejecting values that overflow it.
func narrow[T uint8 | uint16 | uint32](c *cli.Command, name string) (T, error) {
	v := c.Uint(name)
	if uint64(T(v)) != uint64(v) {
		return 0, fmt.Errorf("--%s: %d out of range", name, v)
	}
	return T(v), nil
}

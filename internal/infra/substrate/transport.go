package substrate

import (
	"context"
	"fmt"

	gsrpcclient "github.com/centrifuge/go-substrate-rpc-client/v4/client"
)

// Transport is the JSON-RPC connection to a node.
type Transport interface {
	// Call invokes method and decodes its result into result.
	Call(ctx context.Context, result any, method string, args ...any) error

	// Subscribe opens a subscription delivering notifications on channel.
	Subscribe(ctx context.Context, namespace, subscribeSuffix, unsubscribeSuffix, notificationSuffix string, channel any, args ...any) (Subscription, error)

	// Close releases the connection.
	Close()
}

// Subscription is an open node subscription.
type Subscription interface {
	Err() <-chan error
	Unsubscribe()
}

// rpcConn is a go-substrate-rpc-client connection. The websocket client
// returned by gsrpcclient.Connect embeds the geth RPC client and so carries
// CallContext.
type rpcConn interface {
	gsrpcclient.Client
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

// rpcTransport adapts a go-substrate-rpc-client websocket client.
type rpcTransport struct {
	conn rpcConn
}

var _ Transport = (*rpcTransport)(nil)

func newRPCTransport(conn gsrpcclient.Client) (*rpcTransport, error) {
	rc, ok := conn.(rpcConn)
	if !ok {
		return nil, fmt.Errorf("connection %T does not support CallContext", conn)
	}
	return &rpcTransport{conn: rc}, nil
}

func (t *rpcTransport) Call(ctx context.Context, result any, method string, args ...any) error {
	return t.conn.CallContext(ctx, result, method, args...)
}

func (t *rpcTransport) Subscribe(ctx context.Context, namespace, subscribeSuffix, unsubscribeSuffix, notificationSuffix string, channel any, args ...any) (Subscription, error) {
	sub, err := t.conn.Subscribe(ctx, namespace, subscribeSuffix, unsubscribeSuffix, notificationSuffix, channel, args...)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (t *rpcTransport) Close() {
	t.conn.Close()
}

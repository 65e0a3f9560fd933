// Package live adapts a remote verdantchain node's JSON-RPC surface onto the
// chain.LedgerSource contract.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RawCaller is the subset of the node RPC connection the client uses.
	// *rpcclient.Client satisfies it.
	RawCaller interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}

	// RPCMetrics records metrics for node RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// errNullResult reports that the node answered a point lookup with null.
var errNullResult = errors.New("null result")

// Client issues rate-limited, instrumented calls against the node.
type Client struct {
	raw     RawCaller
	rl      ratelimit.Limiter
	metrics RPCMetrics
}

// NewClient wraps a node RPC connection.
func NewClient(raw RawCaller, rps int, metrics RPCMetrics) *Client {
	if rps <= 0 {
		rps = 50
	}
	return &Client{
		raw:     raw,
		rl:      ratelimit.New(rps),
		metrics: metrics,
	}
}

// NewNodeConnection dials the node's JSON-RPC endpoint in HTTP POST mode.
func NewNodeConnection(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}

// call invokes one node method. The connection enforces its own request
// timeout; the context is only checked before dispatch since RawRequest does
// not take one.
func (c *Client) call(ctx context.Context, method string, params ...any) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	raws := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		raw, merr := json.Marshal(p)
		if merr != nil {
			return nil, fmt.Errorf("marshal %s param: %w", method, merr)
		}
		raws = append(raws, raw)
	}

	c.rl.Take()
	res, err = c.raw.RawRequest(method, raws)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if isNull(res) {
		return nil, fmt.Errorf("%s: %w", method, errNullResult)
	}
	return res, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// Package indexer exposes the single query surface of the explorer core. It
// routes every read over the live node when reachable and falls back to the
// simulated ledger otherwise; callers can never tell which source answered.
package indexer

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/verdantchain/explorer-backend/internal/model"
	"github.com/verdantchain/explorer-backend/internal/sustainability"
)

// Facade is the explorer's only entry point for ledger reads. Construct one
// at the composition root and pass it down; it holds no mutable ledger state
// of its own and is safe for concurrent use.
type Facade struct {
	live    LedgerSource
	probe   Prober
	sim     LedgerSource
	metrics FacadeMetrics
	logger  *zap.Logger
}

// New builds a facade. The live source and probe may be nil when no node is
// configured; the simulated source is mandatory since it is the last line of
// the fallback policy.
func New(live LedgerSource, probe Prober, sim LedgerSource, metrics FacadeMetrics, logger *zap.Logger) (*Facade, error) {
	if sim == nil {
		return nil, errors.New("simulated source is required")
	}
	if metrics == nil {
		return nil, errors.New("facade metrics is required")
	}
	return &Facade{
		live:    live,
		probe:   probe,
		sim:     sim,
		metrics: metrics,
		logger:  logger.Named("facade"),
	}, nil
}

// fetch runs one operation with the fallback policy: attempt the live source
// only when the probe approves, and absorb any live failure by serving the
// same operation from the simulated ledger. Availability wins over strict
// consistency; every answer is a best-effort snapshot.
func fetch[T any](ctx context.Context, f *Facade, op string, fn func(context.Context, LedgerSource) (T, error)) (T, error) {
	started := time.Now()

	if f.live != nil && f.probe != nil && f.probe.IsConnected(ctx) {
		out, err := fn(ctx, f.live)
		if err == nil {
			f.metrics.Observe(op, false, nil, started)
			return out, nil
		}
		f.logger.Debug("live source failed, serving fallback",
			zap.String("operation", op), zap.Error(err))
	}

	out, err := fn(ctx, f.sim)
	f.metrics.Observe(op, true, err, started)
	return out, err
}

// GetBlockByHeight returns the block at the given height.
func (f *Facade) GetBlockByHeight(ctx context.Context, height uint64) (*model.Block, error) {
	return fetch(ctx, f, "get_block_by_height", func(ctx context.Context, s LedgerSource) (*model.Block, error) {
		return s.GetBlockByHeight(ctx, height)
	})
}

// GetBlockByHash returns the block with the given hash.
func (f *Facade) GetBlockByHash(ctx context.Context, hash string) (*model.Block, error) {
	normalized, err := normalizeHash(hash)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, f, "get_block_by_hash", func(ctx context.Context, s LedgerSource) (*model.Block, error) {
		return s.GetBlockByHash(ctx, normalized)
	})
}

// GetTransaction returns the transaction with the given hash.
func (f *Facade) GetTransaction(ctx context.Context, txID string) (*model.Transaction, error) {
	normalized, err := normalizeHash(txID)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, f, "get_transaction", func(ctx context.Context, s LedgerSource) (*model.Transaction, error) {
		return s.GetTransaction(ctx, normalized)
	})
}

// GetIdentity returns the aggregated trust chain of an identity.
func (f *Facade) GetIdentity(ctx context.Context, id string) (*model.Identity, error) {
	parsed, err := parseIdentityID(id)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, f, "get_identity", func(ctx context.Context, s LedgerSource) (*model.Identity, error) {
		return s.GetIdentity(ctx, parsed)
	})
}

// maxListLimit caps list-style reads.
const maxListLimit = 100

// GetLatestBlocks returns up to n blocks, tip first.
func (f *Facade) GetLatestBlocks(ctx context.Context, n int) ([]model.Block, error) {
	n = clampLimit(n)
	return fetch(ctx, f, "get_latest_blocks", func(ctx context.Context, s LedgerSource) ([]model.Block, error) {
		return s.GetLatestBlocks(ctx, n)
	})
}

// GetRecentTransactions returns up to n transactions, newest first.
func (f *Facade) GetRecentTransactions(ctx context.Context, n int) ([]model.Transaction, error) {
	n = clampLimit(n)
	return fetch(ctx, f, "get_recent_transactions", func(ctx context.Context, s LedgerSource) ([]model.Transaction, error) {
		return s.GetRecentTransactions(ctx, n)
	})
}

// GetBalance returns the confirmed balance of an address.
func (f *Facade) GetBalance(ctx context.Context, address string) (uint64, error) {
	normalized, err := normalizeAddress(address)
	if err != nil {
		return 0, err
	}
	return fetch(ctx, f, "get_balance", func(ctx context.Context, s LedgerSource) (uint64, error) {
		return s.GetBalance(ctx, normalized)
	})
}

// GetUtxos returns the unspent outputs held by an address.
func (f *Facade) GetUtxos(ctx context.Context, address string) ([]model.UTXO, error) {
	normalized, err := normalizeAddress(address)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, f, "get_utxos", func(ctx context.Context, s LedgerSource) ([]model.UTXO, error) {
		return s.GetUtxos(ctx, normalized)
	})
}

// GetChainInfo returns the tip summary.
func (f *Facade) GetChainInfo(ctx context.Context) (*model.ChainInfo, error) {
	return fetch(ctx, f, "get_chain_info", func(ctx context.Context, s LedgerSource) (*model.ChainInfo, error) {
		return s.GetChainInfo(ctx)
	})
}

// GetSustainabilityMetrics derives a fresh sustainability snapshot from the
// active source's observables. A zero 24h throughput surfaces as
// sustainability.ErrDivisionUndefined.
func (f *Facade) GetSustainabilityMetrics(ctx context.Context) (*model.SustainabilitySnapshot, error) {
	inputs, err := fetch(ctx, f, "get_sustainability_inputs", func(ctx context.Context, s LedgerSource) (*model.SustainabilityInputs, error) {
		return s.GetSustainabilityInputs(ctx)
	})
	if err != nil {
		return nil, err
	}
	return sustainability.Compute(*inputs, time.Now())
}

func clampLimit(n int) int {
	if n <= 0 {
		return 10
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}

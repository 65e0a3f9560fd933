// Package chain defines the ledger source contract shared by the live and
// simulated backends, and the error taxonomy of the read path.
package chain

import (
	"context"

	"github.com/google/uuid"

	"github.com/verdantchain/explorer-backend/internal/model"
)

// LedgerSource is the operation contract both ledger backends implement.
// All operations are read-only; implementations must be safe for concurrent
// readers.
type LedgerSource interface {
	GetBlockByHeight(ctx context.Context, height uint64) (*model.Block, error)
	GetBlockByHash(ctx context.Context, hash string) (*model.Block, error)
	GetTransaction(ctx context.Context, txID string) (*model.Transaction, error)
	GetIdentity(ctx context.Context, id uuid.UUID) (*model.Identity, error)
	GetLatestBlocks(ctx context.Context, n int) ([]model.Block, error)
	GetRecentTransactions(ctx context.Context, n int) ([]model.Transaction, error)
	GetBalance(ctx context.Context, address string) (uint64, error)
	GetUtxos(ctx context.Context, address string) ([]model.UTXO, error)
	GetChainInfo(ctx context.Context) (*model.ChainInfo, error)
	GetSustainabilityInputs(ctx context.Context) (*model.SustainabilityInputs, error)
}

// Prober reports whether a source is currently worth querying. The facade
// consults it before every delegation to the live path.
type Prober interface {
	IsConnected(ctx context.Context) bool
}

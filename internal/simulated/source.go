// Package simulated provides a deterministic, self-consistent synthetic
// ledger implementing the chain.LedgerSource contract. It backs the explorer
// whenever no live node is reachable.
package simulated

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verdantchain/explorer-backend/internal/chain"
	"github.com/verdantchain/explorer-backend/internal/identity"
	"github.com/verdantchain/explorer-backend/internal/model"
)

// Config controls chain generation. The seed fully determines the chain:
// two sources built from the same config serve identical data.
type Config struct {
	Seed       int64
	TipHeight  uint64
	BlockCount int
}

type txLoc struct {
	blockIdx int
	txIdx    int
}

// Source is a read-only in-memory ledger. All state is built once at
// construction, making it safe to share across concurrent readers without
// synchronization. Returned records are shared and must not be mutated.
type Source struct {
	blocks     []model.Block
	byHeight   map[uint64]int
	byHash     map[string]int
	txs        map[string]txLoc
	identities map[uuid.UUID]*model.Identity
	info       model.ChainInfo
	inputs     model.SustainabilityInputs
}

// New generates the simulated chain and indexes it.
func New(cfg Config) (*Source, error) {
	if cfg.BlockCount <= 0 {
		cfg.BlockCount = defaultBlockCount
	}
	if cfg.TipHeight == 0 {
		cfg.TipHeight = defaultTipHeight
	}

	g := newGenerator(cfg.Seed)
	if err := g.run(cfg.TipHeight, cfg.BlockCount); err != nil {
		return nil, fmt.Errorf("generate chain: %w", err)
	}

	s := &Source{
		blocks:     g.blocks,
		byHeight:   make(map[uint64]int, len(g.blocks)),
		byHash:     make(map[string]int, len(g.blocks)),
		txs:        make(map[string]txLoc),
		identities: make(map[uuid.UUID]*model.Identity, len(g.anchorsByIdentity)),
	}

	for i, block := range s.blocks {
		if _, ok := s.byHeight[block.Height]; ok {
			return nil, fmt.Errorf("duplicate block height %d", block.Height)
		}
		if _, ok := s.byHash[block.Hash]; ok {
			return nil, fmt.Errorf("duplicate block hash %s", block.Hash)
		}
		s.byHeight[block.Height] = i
		s.byHash[block.Hash] = i

		for j, tx := range block.Transactions {
			if _, ok := s.txs[tx.TxID]; ok {
				return nil, fmt.Errorf("duplicate transaction %s", tx.TxID)
			}
			s.txs[tx.TxID] = txLoc{blockIdx: i, txIdx: j}
		}
	}

	for id, anchors := range g.anchorsByIdentity {
		record, err := identity.Aggregate(id, anchors)
		if err != nil {
			return nil, fmt.Errorf("aggregate identity %s: %w", id, err)
		}
		s.identities[id] = record
	}

	tip := s.blocks[len(s.blocks)-1]
	s.info = model.ChainInfo{
		Height:        tip.Height,
		BestBlockHash: tip.Hash,
		TotalSupply:   coinbaseReward * uint64(len(s.blocks)),
	}

	var txCount24h uint64
	cutoff := tip.Timestamp.Add(-24 * time.Hour)
	for _, block := range s.blocks {
		if block.Timestamp.Before(cutoff) {
			continue
		}
		txCount24h += uint64(len(block.Transactions))
	}
	s.inputs = model.SustainabilityInputs{
		NetworkHashrate: 350e12 + float64(g.rng.Intn(300))*1e12,
		TxCount24h:      txCount24h,
	}

	return s, nil
}

// GetBlockByHeight returns the block at the given height.
func (s *Source) GetBlockByHeight(_ context.Context, height uint64) (*model.Block, error) {
	i, ok := s.byHeight[height]
	if !ok {
		return nil, fmt.Errorf("%w: block height %d", chain.ErrNotFound, height)
	}
	block := s.blocks[i]
	return &block, nil
}

// GetBlockByHash returns the block with the given hash.
func (s *Source) GetBlockByHash(_ context.Context, hash string) (*model.Block, error) {
	i, ok := s.byHash[hash]
	if !ok {
		return nil, fmt.Errorf("%w: block hash %s", chain.ErrNotFound, hash)
	}
	block := s.blocks[i]
	return &block, nil
}

// GetTransaction returns the transaction with the given id.
func (s *Source) GetTransaction(_ context.Context, txID string) (*model.Transaction, error) {
	loc, ok := s.txs[txID]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", chain.ErrNotFound, txID)
	}
	tx := s.blocks[loc.blockIdx].Transactions[loc.txIdx]
	return &tx, nil
}

// GetIdentity returns the aggregated trust chain for an identity.
func (s *Source) GetIdentity(_ context.Context, id uuid.UUID) (*model.Identity, error) {
	record, ok := s.identities[id]
	if !ok {
		return nil, fmt.Errorf("%w: identity %s", chain.ErrNotFound, id)
	}
	return record, nil
}

// GetLatestBlocks returns up to n blocks, tip first.
func (s *Source) GetLatestBlocks(_ context.Context, n int) ([]model.Block, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > len(s.blocks) {
		n = len(s.blocks)
	}
	out := make([]model.Block, 0, n)
	for i := len(s.blocks) - 1; i >= len(s.blocks)-n; i-- {
		out = append(out, s.blocks[i])
	}
	return out, nil
}

// GetRecentTransactions returns up to n transactions, newest first.
func (s *Source) GetRecentTransactions(_ context.Context, n int) ([]model.Transaction, error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]model.Transaction, 0, n)
	for i := len(s.blocks) - 1; i >= 0 && len(out) < n; i-- {
		txs := s.blocks[i].Transactions
		for j := len(txs) - 1; j >= 0 && len(out) < n; j-- {
			out = append(out, txs[j])
		}
	}
	return out, nil
}

// GetBalance sums the unspent outputs held by an address. Unknown addresses
// hold a zero balance.
func (s *Source) GetBalance(_ context.Context, address string) (uint64, error) {
	var balance uint64
	for _, block := range s.blocks {
		for _, tx := range block.Transactions {
			for _, out := range tx.Outputs {
				if out.Recipient == address && !out.Spent {
					balance += out.Amount
				}
			}
		}
	}
	return balance, nil
}

// GetUtxos lists the unspent outputs held by an address.
func (s *Source) GetUtxos(_ context.Context, address string) ([]model.UTXO, error) {
	var utxos []model.UTXO
	for _, block := range s.blocks {
		for _, tx := range block.Transactions {
			for _, out := range tx.Outputs {
				if out.Recipient == address && !out.Spent {
					utxos = append(utxos, model.UTXO{
						TxID:      tx.TxID,
						Index:     out.Index,
						Amount:    out.Amount,
						Recipient: out.Recipient,
						Script:    out.Script,
					})
				}
			}
		}
	}
	return utxos, nil
}

// GetChainInfo returns the tip summary of the simulated chain.
func (s *Source) GetChainInfo(_ context.Context) (*model.ChainInfo, error) {
	info := s.info
	return &info, nil
}

// GetSustainabilityInputs returns the raw observables for the sustainability
// engine.
func (s *Source) GetSustainabilityInputs(_ context.Context) (*model.SustainabilityInputs, error) {
	inputs := s.inputs
	return &inputs, nil
}

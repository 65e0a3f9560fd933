package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verdantchain/explorer-backend/internal/chain"
	"github.com/verdantchain/explorer-backend/internal/identity"
	"github.com/verdantchain/explorer-backend/internal/model"
	"github.com/verdantchain/explorer-backend/pkg/safe"
	"github.com/verdantchain/explorer-backend/pkg/workerpool"
)

const latestBlocksWorkerCount = 4

// Source implements chain.LedgerSource against a remote node.
//
// Failure semantics: list operations degrade to empty collections, point
// lookups degrade to chain.ErrNotFound or chain.ErrSourceUnavailable; the
// facade absorbs both by falling back to the simulated source.
type Source struct {
	client *Client
	logger *zap.Logger
}

// NewSource builds a live source over an instrumented client.
func NewSource(client *Client, logger *zap.Logger) *Source {
	return &Source{
		client: client,
		logger: logger.Named("liveSource"),
	}
}

// IsConnected probes the node with a cheap height query.
func (s *Source) IsConnected(ctx context.Context) bool {
	_, err := s.tipHeight(ctx)
	return err == nil
}

func (s *Source) tipHeight(ctx context.Context) (uint64, error) {
	raw, err := s.client.call(ctx, "chain_getBlockHeight")
	if err != nil {
		return 0, err
	}
	var height int64
	if err := unmarshalResult(raw, &height, "chain_getBlockHeight"); err != nil {
		return 0, err
	}
	h, err := safe.Uint64(height)
	if err != nil {
		return 0, fmt.Errorf("block height overflow: %w", err)
	}
	return h, nil
}

// GetBlockByHeight fetches one block by height.
func (s *Source) GetBlockByHeight(ctx context.Context, height uint64) (*model.Block, error) {
	raw, err := s.client.call(ctx, "chain_getBlockByHeight", height)
	if err != nil {
		return nil, pointErr(err)
	}
	wire, err := decodeWire[wireBlock](raw, "chain_getBlockByHeight")
	if err != nil {
		return nil, err
	}
	return wire.toModel()
}

// GetBlockByHash fetches one block by hash.
func (s *Source) GetBlockByHash(ctx context.Context, hash string) (*model.Block, error) {
	raw, err := s.client.call(ctx, "chain_getBlockByHash", hash)
	if err != nil {
		return nil, pointErr(err)
	}
	wire, err := decodeWire[wireBlock](raw, "chain_getBlockByHash")
	if err != nil {
		return nil, err
	}
	return wire.toModel()
}

// GetTransaction fetches one transaction by hash.
func (s *Source) GetTransaction(ctx context.Context, txID string) (*model.Transaction, error) {
	raw, err := s.client.call(ctx, "chain_getTransaction", txID)
	if err != nil {
		return nil, pointErr(err)
	}
	wire, err := decodeWire[wireTx](raw, "chain_getTransaction")
	if err != nil {
		return nil, err
	}
	return wire.toModel()
}

// GetIdentity fetches the raw proof records for an identity and aggregates
// them into a trust chain.
func (s *Source) GetIdentity(ctx context.Context, id uuid.UUID) (*model.Identity, error) {
	raw, err := s.client.call(ctx, "identity_getProofs", id.String())
	if err != nil {
		return nil, pointErr(err)
	}
	wires, err := decodeWire[[]wireProof](raw, "identity_getProofs")
	if err != nil {
		return nil, err
	}
	anchors := make([]model.ProofAnchor, 0, len(*wires))
	for _, w := range *wires {
		anchor, err := w.toModel()
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, *anchor)
	}
	return identity.Aggregate(id, anchors)
}

// GetLatestBlocks fetches up to n blocks ending at the tip, newest first.
// Any failure degrades to an empty collection.
func (s *Source) GetLatestBlocks(ctx context.Context, n int) ([]model.Block, error) {
	if n <= 0 {
		return nil, nil
	}
	tip, err := s.tipHeight(ctx)
	if err != nil {
		s.logger.Warn("latest blocks degraded to empty", zap.Error(err))
		return nil, nil
	}
	if uint64(n) > tip+1 {
		n = int(tip + 1)
	}

	heights := make([]uint64, n)
	for i := range heights {
		heights[i] = tip - uint64(i)
	}

	results := make([]*model.Block, n)
	err = workerpool.Process(ctx, latestBlocksWorkerCount, heights, func(ctx context.Context, height uint64) error {
		block, err := s.GetBlockByHeight(ctx, height)
		if err != nil {
			return err
		}
		results[tip-height] = block
		return nil
	}, nil)
	if err != nil {
		s.logger.Warn("latest blocks degraded to empty", zap.Error(err))
		return nil, nil
	}

	blocks := make([]model.Block, 0, n)
	for _, block := range results {
		blocks = append(blocks, *block)
	}
	return blocks, nil
}

// GetRecentTransactions lists up to n transactions from the newest blocks.
// Any failure degrades to an empty collection.
func (s *Source) GetRecentTransactions(ctx context.Context, n int) ([]model.Transaction, error) {
	if n <= 0 {
		return nil, nil
	}
	blocks, err := s.GetLatestBlocks(ctx, latestBlocksWorkerCount*2)
	if err != nil || len(blocks) == 0 {
		return nil, nil
	}
	txs := make([]model.Transaction, 0, n)
	for _, block := range blocks {
		for i := len(block.Transactions) - 1; i >= 0 && len(txs) < n; i-- {
			txs = append(txs, block.Transactions[i])
		}
		if len(txs) >= n {
			break
		}
	}
	return txs, nil
}

// GetBalance fetches the confirmed balance of an address.
func (s *Source) GetBalance(ctx context.Context, address string) (uint64, error) {
	raw, err := s.client.call(ctx, "chain_getBalance", address)
	if err != nil {
		return 0, pointErr(err)
	}
	var balance uint64
	if err := unmarshalResult(raw, &balance, "chain_getBalance"); err != nil {
		return 0, err
	}
	return balance, nil
}

// GetUtxos fetches the UTXO set of an address. Failures degrade to an empty
// collection.
func (s *Source) GetUtxos(ctx context.Context, address string) ([]model.UTXO, error) {
	raw, err := s.client.call(ctx, "chain_getUtxos", address)
	if err != nil {
		if errors.Is(err, errNullResult) {
			return nil, nil
		}
		s.logger.Warn("utxo set degraded to empty", zap.String("address", address), zap.Error(err))
		return nil, nil
	}
	wires, err := decodeWire[[]wireUtxo](raw, "chain_getUtxos")
	if err != nil {
		return nil, err
	}
	utxos := make([]model.UTXO, 0, len(*wires))
	for _, w := range *wires {
		utxo, err := w.toModel()
		if err != nil {
			return nil, err
		}
		utxos = append(utxos, *utxo)
	}
	return utxos, nil
}

// GetChainInfo fetches the tip summary.
func (s *Source) GetChainInfo(ctx context.Context) (*model.ChainInfo, error) {
	info, _, err := s.chainInfo(ctx)
	return info, err
}

// GetSustainabilityInputs fetches the raw sustainability observables.
func (s *Source) GetSustainabilityInputs(ctx context.Context) (*model.SustainabilityInputs, error) {
	_, inputs, err := s.chainInfo(ctx)
	if err != nil {
		return nil, err
	}
	if inputs == nil {
		return nil, fmt.Errorf("%w: node reports no sustainability observables", chain.ErrSourceUnavailable)
	}
	return inputs, nil
}

func (s *Source) chainInfo(ctx context.Context) (*model.ChainInfo, *model.SustainabilityInputs, error) {
	raw, err := s.client.call(ctx, "chain_getInfo")
	if err != nil {
		return nil, nil, pointErr(err)
	}
	wire, err := decodeWire[wireChainInfo](raw, "chain_getInfo")
	if err != nil {
		return nil, nil, err
	}
	return wire.toModel()
}

// pointErr maps transport failures onto the read-path taxonomy: a null
// answer is a miss, anything else means the source cannot serve.
func pointErr(err error) error {
	if errors.Is(err, errNullResult) {
		return fmt.Errorf("%w: %v", chain.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", chain.ErrSourceUnavailable, err)
}

func unmarshalResult(raw []byte, out any, endpoint string) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

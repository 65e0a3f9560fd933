package indexer

import (
	"context"
	"errors"
	"strings"

	"github.com/verdantchain/explorer-backend/internal/chain"
	"github.com/verdantchain/explorer-backend/internal/model"
)

// SearchKind names the entity a search query resolved to.
type SearchKind string

var (
	SearchKindBlock       SearchKind = "block"
	SearchKindTransaction SearchKind = "transaction"
	SearchKindIdentity    SearchKind = "identity"
	SearchKindNone        SearchKind = "none"
)

// SearchResult carries the single entity a query resolved to, or
// SearchKindNone when nothing matched. A miss is a regular result, not an
// error.
type SearchResult struct {
	Query       string             `json:"query"`
	Kind        SearchKind         `json:"kind"`
	Block       *model.Block       `json:"block,omitempty"`
	Transaction *model.Transaction `json:"transaction,omitempty"`
	Identity    *model.Identity    `json:"identity,omitempty"`
}

// Search classifies a free-text query into exactly one lookup and runs it.
//
// Classification is by strict priority: a 64-hex string is tried as a
// transaction hash first and as a block hash second (transaction wins a
// collision by priority), a UUID v4 shape is an identity lookup, a
// non-negative integer is a height lookup, and anything else is unresolved.
func (f *Facade) Search(ctx context.Context, query string) (*SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	result := &SearchResult{Query: trimmed, Kind: SearchKindNone}

	switch {
	case hashPattern.MatchString(trimmed):
		tx, err := f.GetTransaction(ctx, trimmed)
		if err == nil {
			result.Kind = SearchKindTransaction
			result.Transaction = tx
			return result, nil
		}
		if !errors.Is(err, chain.ErrNotFound) {
			return nil, err
		}

		block, err := f.GetBlockByHash(ctx, trimmed)
		if err == nil {
			result.Kind = SearchKindBlock
			result.Block = block
			return result, nil
		}
		if !errors.Is(err, chain.ErrNotFound) {
			return nil, err
		}

	case uuidV4Pattern.MatchString(trimmed):
		identity, err := f.GetIdentity(ctx, trimmed)
		if err == nil {
			result.Kind = SearchKindIdentity
			result.Identity = identity
			return result, nil
		}
		if !errors.Is(err, chain.ErrNotFound) {
			return nil, err
		}

	default:
		if height, ok := parseHeight(trimmed); ok {
			block, err := f.GetBlockByHeight(ctx, height)
			if err == nil {
				result.Kind = SearchKindBlock
				result.Block = block
				return result, nil
			}
			if !errors.Is(err, chain.ErrNotFound) {
				return nil, err
			}
		}
	}

	return result, nil
}

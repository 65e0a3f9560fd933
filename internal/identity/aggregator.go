// Package identity builds identity trust chains from raw proof anchors.
package identity

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/verdantchain/explorer-backend/internal/chain"
	"github.com/verdantchain/explorer-backend/internal/model"
)

// Aggregate folds the raw proof anchors of one identity into an Identity
// record: anchors sorted newest first, creation time from the earliest
// anchor, verification level from the highest-ranked proof type present.
//
// An identity with no anchors does not exist on this ledger, so an empty set
// yields chain.ErrNotFound rather than an empty record.
func Aggregate(id uuid.UUID, anchors []model.ProofAnchor) (*model.Identity, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("%w: identity %s has no proof anchors", chain.ErrNotFound, id)
	}

	ordered := append([]model.ProofAnchor(nil), anchors...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Timestamp.Equal(ordered[j].Timestamp) {
			return ordered[i].Timestamp.After(ordered[j].Timestamp)
		}
		return ordered[i].BlockHeight > ordered[j].BlockHeight
	})

	createdAt := ordered[len(ordered)-1].Timestamp
	level := ordered[0].Type
	for _, anchor := range ordered {
		if anchor.Timestamp.Before(createdAt) {
			createdAt = anchor.Timestamp
		}
		if anchor.Type.Rank() > level.Rank() {
			level = anchor.Type
		}
	}

	return &model.Identity{
		ID:                id,
		CreatedAt:         createdAt,
		VerificationLevel: level,
		TotalAnchors:      len(ordered),
		ProofAnchors:      ordered,
	}, nil
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ProofType ranks the strength of an anchored identity proof.
type ProofType string

var (
	ProofKYCTier1   ProofType = "kyc_tier_1"
	ProofKYCTier2   ProofType = "kyc_tier_2"
	ProofKYCTier3   ProofType = "kyc_tier_3"
	ProofAccredited ProofType = "accredited"
)

// Rank orders proof types from weakest to strongest. Unknown types rank
// below every known tier.
func (p ProofType) Rank() int {
	switch p {
	case ProofKYCTier1:
		return 1
	case ProofKYCTier2:
		return 2
	case ProofKYCTier3:
		return 3
	case ProofAccredited:
		return 4
	default:
		return 0
	}
}

// ProofStatus describes the verification state of a proof anchor.
type ProofStatus string

var (
	ProofVerified ProofStatus = "verified"
	ProofPending  ProofStatus = "pending"
	ProofFailed   ProofStatus = "failed"
)

// ProofAnchor records a single identity-verification event on the ledger.
// Immutable once its anchoring transaction is indexed.
type ProofAnchor struct {
	TxID        string      `json:"tx_id"`
	BlockHeight uint64      `json:"block_height"`
	Timestamp   time.Time   `json:"timestamp"`
	Type        ProofType   `json:"type"`
	ProofHash   string      `json:"proof_hash"`
	Status      ProofStatus `json:"status"`
}

// Identity aggregates the trust chain of one on-chain identity.
type Identity struct {
	ID uuid.UUID `json:"id"`
	// CreatedAt equals the timestamp of the earliest proof anchor.
	CreatedAt time.Time `json:"created_at"`
	// VerificationLevel is the highest-ranked proof type observed.
	VerificationLevel ProofType `json:"verification_level"`
	TotalAnchors      int       `json:"total_anchors"`
	// ProofAnchors are ordered newest first.
	ProofAnchors []ProofAnchor `json:"proof_anchors"`
}

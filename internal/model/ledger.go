// Package model defines domain records served by the explorer core.
package model

import "time"

// SignatureScheme identifies the algorithm that authorized a transaction input.
type SignatureScheme string

var (
	// SchemeClassical is a classical ECDSA/Ed25519 signature.
	SchemeClassical SignatureScheme = "classical"
	// SchemeMLDSA is a post-quantum ML-DSA (Dilithium) signature.
	SchemeMLDSA SignatureScheme = "ml_dsa"
	// SchemeFalcon is a post-quantum Falcon signature.
	SchemeFalcon SignatureScheme = "falcon"
	// SchemeHybrid combines a classical and a post-quantum signature.
	SchemeHybrid SignatureScheme = "hybrid"
)

// SignatureBytes returns the characteristic signature size for the scheme,
// used for fee and size accounting.
func (s SignatureScheme) SignatureBytes() uint32 {
	switch s {
	case SchemeClassical:
		return 64
	case SchemeMLDSA:
		return 2420
	case SchemeFalcon:
		return 666
	case SchemeHybrid:
		return 2484
	default:
		return 0
	}
}

// ScriptType classifies what a transaction output pays to.
type ScriptType string

var (
	// ScriptPayToHash is a plain pay-to-pubkey-hash output.
	ScriptPayToHash ScriptType = "pay_to_hash"
	// ScriptContractDeploy carries contract deployment code.
	ScriptContractDeploy ScriptType = "contract_deploy"
	// ScriptProofAnchor records an identity proof on chain.
	ScriptProofAnchor ScriptType = "proof_anchor"
	// ScriptAssetTransfer moves a registered asset; value rides in the tx
	// data payload, never in the output amount.
	ScriptAssetTransfer ScriptType = "asset_transfer"
)

// Block represents a block served by the explorer.
type Block struct {
	Height       uint64        `json:"height"`
	Hash         string        `json:"hash"`
	PrevHash     string        `json:"prev_hash"`
	Timestamp    time.Time     `json:"timestamp"`
	Miner        string        `json:"miner"`
	MerkleRoot   string        `json:"merkle_root"`
	Bits         uint32        `json:"bits"`
	Nonce        uint32        `json:"nonce"`
	Size         uint32        `json:"size"`
	Version      uint32        `json:"version"`
	TXCount      uint32        `json:"tx_count"`
	// Transactions are owned by the block, insertion order preserved.
	Transactions []Transaction `json:"transactions,omitempty"`
}

// Transaction represents a transaction served by the explorer.
type Transaction struct {
	TxID        string     `json:"tx_id"`
	BlockHeight uint64     `json:"block_height"`
	Timestamp   time.Time  `json:"timestamp"`
	Version     uint32     `json:"version"`
	Inputs      []TxInput  `json:"inputs"`
	Outputs     []TxOutput `json:"outputs"`
	// Data holds the optional opaque payload as a 0x-prefixed hex string.
	Data string `json:"data,omitempty"`
	// At most one decoded view is populated, and only when Data is present.
	ProofAnchor  *ProofAnchorData  `json:"proof_anchor,omitempty"`
	ContractCall *ContractCallData `json:"contract_call,omitempty"`
}

// TxInput references a previously created output being spent.
type TxInput struct {
	PrevTxID      string          `json:"prev_tx_id"`
	PrevIndex     uint32          `json:"prev_index"`
	Scheme        SignatureScheme `json:"scheme"`
	SignatureSize uint32          `json:"signature_size"`
}

// TxOutput is a value assignment created by a transaction.
type TxOutput struct {
	Index     uint32     `json:"index"`
	Amount    uint64     `json:"amount"`
	Recipient string     `json:"recipient"`
	Script    ScriptType `json:"script"`
	Spent     bool       `json:"spent"`
}

// UTXO is an unspent output keyed by its creating transaction.
type UTXO struct {
	TxID      string     `json:"tx_id"`
	Index     uint32     `json:"index"`
	Amount    uint64     `json:"amount"`
	Recipient string     `json:"recipient"`
	Script    ScriptType `json:"script"`
}

// ChainInfo is a point-in-time summary of the chain tip.
type ChainInfo struct {
	Height        uint64 `json:"height"`
	BestBlockHash string `json:"best_block_hash"`
	TotalSupply   uint64 `json:"total_supply"`
}

// SustainabilityInputs are the raw observables the sustainability engine
// consumes.
type SustainabilityInputs struct {
	NetworkHashrate float64 `json:"network_hashrate"`
	TxCount24h      uint64  `json:"tx_count_24h"`
}

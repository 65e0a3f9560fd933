package model

// AssetTransferData is the decoded view of an asset-transfer payload embedded
// in a transaction's opaque data field. The economic value of the transfer
// lives here; the carrying output's amount is always zero.
type AssetTransferData struct {
	FromAddress string            `json:"from_address"`
	ToAddress   string            `json:"to_address"`
	AssetID     string            `json:"asset_id"`
	Quantity    uint64            `json:"quantity"`
	Price       uint64            `json:"price,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// ContractCallData is the decoded view of a named-function contract call.
type ContractCallData struct {
	Function string
	Args     map[string]any
}

// ProofAnchorData is the decoded view of a proof-anchoring payload.
type ProofAnchorData struct {
	IdentityID string      `json:"identity_id"`
	Type       ProofType   `json:"proof_type"`
	ProofHash  string      `json:"proof_hash"`
	Status     ProofStatus `json:"status"`
}

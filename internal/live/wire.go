package live

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/verdantchain/explorer-backend/internal/codec"
	"github.com/verdantchain/explorer-backend/internal/model"
)

// Wire types mirror the node's JSON responses field by field. Required
// fields are pointers so that an absent field is a decode failure, never a
// silently defaulted value. In particular a proof record without a timestamp
// is rejected instead of being stamped with the current time.

type wireBlock struct {
	Height       *uint64  `json:"height"`
	Hash         *string  `json:"hash"`
	PrevHash     *string  `json:"prev_hash"`
	Timestamp    *int64   `json:"timestamp"`
	Miner        string   `json:"miner"`
	MerkleRoot   string   `json:"merkle_root"`
	Bits         uint32   `json:"bits"`
	Nonce        uint32   `json:"nonce"`
	Size         uint32   `json:"size"`
	Version      uint32   `json:"version"`
	Transactions []wireTx `json:"transactions"`
}

type wireTx struct {
	TxID        *string      `json:"tx_hash"`
	BlockHeight *uint64      `json:"block_height"`
	Timestamp   *int64       `json:"timestamp"`
	Version     uint32       `json:"version"`
	Inputs      []wireInput  `json:"inputs"`
	Outputs     []wireOutput `json:"outputs"`
	Data        string       `json:"data"`
}

type wireInput struct {
	PrevTxID      *string `json:"prev_tx_hash"`
	PrevIndex     *uint32 `json:"prev_index"`
	Scheme        string  `json:"signature_scheme"`
	SignatureSize uint32  `json:"signature_size"`
}

type wireOutput struct {
	Amount    *uint64 `json:"amount"`
	Recipient *string `json:"recipient"`
	Script    string  `json:"script_type"`
	Spent     bool    `json:"spent"`
}

type wireProof struct {
	TxID        *string `json:"tx_hash"`
	BlockHeight *uint64 `json:"block_height"`
	Timestamp   *int64  `json:"timestamp"`
	ProofType   *string `json:"proof_type"`
	ProofHash   string  `json:"proof_hash"`
	Status      string  `json:"status"`
}

type wireUtxo struct {
	TxID      *string `json:"tx_hash"`
	Index     *uint32 `json:"index"`
	Amount    *uint64 `json:"amount"`
	Recipient *string `json:"recipient"`
	Script    string  `json:"script_type"`
}

type wireChainInfo struct {
	Height          *uint64  `json:"height"`
	BestBlockHash   *string  `json:"best_block_hash"`
	TotalSupply     *uint64  `json:"total_supply"`
	NetworkHashrate *float64 `json:"network_hashrate"`
	TxCount24h      *uint64  `json:"tx_count_24h"`
}

func decodeWire[T any](raw json.RawMessage, endpoint string) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s response: %v", codec.ErrMalformedPayload, endpoint, err)
	}
	return &out, nil
}

func (w wireBlock) toModel() (*model.Block, error) {
	if w.Height == nil || w.Hash == nil || w.PrevHash == nil || w.Timestamp == nil {
		return nil, fmt.Errorf("%w: block response missing required fields", codec.ErrMalformedPayload)
	}
	txs := make([]model.Transaction, 0, len(w.Transactions))
	for _, wtx := range w.Transactions {
		tx, err := wtx.toModel()
		if err != nil {
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return &model.Block{
		Height:       *w.Height,
		Hash:         *w.Hash,
		PrevHash:     *w.PrevHash,
		Timestamp:    time.Unix(*w.Timestamp, 0).UTC(),
		Miner:        w.Miner,
		MerkleRoot:   w.MerkleRoot,
		Bits:         w.Bits,
		Nonce:        w.Nonce,
		Size:         w.Size,
		Version:      w.Version,
		TXCount:      uint32(len(txs)),
		Transactions: txs,
	}, nil
}

func (w wireTx) toModel() (*model.Transaction, error) {
	if w.TxID == nil || w.BlockHeight == nil || w.Timestamp == nil {
		return nil, fmt.Errorf("%w: transaction response missing required fields", codec.ErrMalformedPayload)
	}
	tx := model.Transaction{
		TxID:        *w.TxID,
		BlockHeight: *w.BlockHeight,
		Timestamp:   time.Unix(*w.Timestamp, 0).UTC(),
		Version:     w.Version,
		Data:        w.Data,
	}
	for _, in := range w.Inputs {
		if in.PrevTxID == nil || in.PrevIndex == nil {
			return nil, fmt.Errorf("%w: input of tx %s missing previous output reference", codec.ErrMalformedPayload, tx.TxID)
		}
		scheme := model.SignatureScheme(in.Scheme)
		size := in.SignatureSize
		if size == 0 {
			size = scheme.SignatureBytes()
		}
		tx.Inputs = append(tx.Inputs, model.TxInput{
			PrevTxID:      *in.PrevTxID,
			PrevIndex:     *in.PrevIndex,
			Scheme:        scheme,
			SignatureSize: size,
		})
	}
	for i, out := range w.Outputs {
		if out.Amount == nil || out.Recipient == nil {
			return nil, fmt.Errorf("%w: output %d of tx %s missing amount or recipient", codec.ErrMalformedPayload, i, tx.TxID)
		}
		tx.Outputs = append(tx.Outputs, model.TxOutput{
			Index:     uint32(i),
			Amount:    *out.Amount,
			Recipient: *out.Recipient,
			Script:    model.ScriptType(out.Script),
			Spent:     out.Spent,
		})
	}

	// Best-effort structured view; a payload this codec cannot read stays
	// opaque. Proof-anchor views are served by the proof endpoints, not
	// reconstructed from the raw payload.
	if tx.Data != "" {
		tx.ContractCall = codec.Decode(tx.Data).ContractCall
	}
	return &tx, nil
}

func (w wireProof) toModel() (*model.ProofAnchor, error) {
	if w.TxID == nil || w.BlockHeight == nil || w.ProofType == nil {
		return nil, fmt.Errorf("%w: proof response missing required fields", codec.ErrMalformedPayload)
	}
	// A proof without its anchoring timestamp is a data-quality failure;
	// substituting the current time would mask it.
	if w.Timestamp == nil {
		return nil, fmt.Errorf("%w: proof %s missing timestamp", codec.ErrMalformedPayload, *w.TxID)
	}
	return &model.ProofAnchor{
		TxID:        *w.TxID,
		BlockHeight: *w.BlockHeight,
		Timestamp:   time.Unix(*w.Timestamp, 0).UTC(),
		Type:        model.ProofType(*w.ProofType),
		ProofHash:   w.ProofHash,
		Status:      model.ProofStatus(w.Status),
	}, nil
}

func (w wireUtxo) toModel() (*model.UTXO, error) {
	if w.TxID == nil || w.Index == nil || w.Amount == nil || w.Recipient == nil {
		return nil, fmt.Errorf("%w: utxo response missing required fields", codec.ErrMalformedPayload)
	}
	return &model.UTXO{
		TxID:      *w.TxID,
		Index:     *w.Index,
		Amount:    *w.Amount,
		Recipient: *w.Recipient,
		Script:    model.ScriptType(w.Script),
	}, nil
}

func (w wireChainInfo) toModel() (*model.ChainInfo, *model.SustainabilityInputs, error) {
	if w.Height == nil || w.BestBlockHash == nil || w.TotalSupply == nil {
		return nil, nil, fmt.Errorf("%w: chain info response missing required fields", codec.ErrMalformedPayload)
	}
	info := &model.ChainInfo{
		Height:        *w.Height,
		BestBlockHash: *w.BestBlockHash,
		TotalSupply:   *w.TotalSupply,
	}
	if w.NetworkHashrate == nil || w.TxCount24h == nil {
		return info, nil, nil
	}
	return info, &model.SustainabilityInputs{
		NetworkHashrate: *w.NetworkHashrate,
		TxCount24h:      *w.TxCount24h,
	}, nil
}

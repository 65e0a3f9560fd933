package simulated

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/google/uuid"

	"github.com/verdantchain/explorer-backend/internal/codec"
	"github.com/verdantchain/explorer-backend/internal/model"
)

// genesisPrevHash is the all-zero sentinel parent of the first block.
var genesisPrevHash = strings.Repeat("0", 64)

// genesisEpoch anchors simulated timestamps so that a given seed always
// produces the same chain.
var genesisEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	defaultBlockCount = 50
	defaultTipHeight  = 50
	blockInterval     = 10 * time.Minute
	coinbaseReward    = 50_0000_0000

	identityPoolSize = 8
	addressPoolSize  = 24
)

var assetIDs = []string{
	"carbon-credit-2026",
	"solar-reit-alpha",
	"wind-farm-3",
	"hydro-bond-7",
}

var contractFunctions = []string{
	"register_asset",
	"transfer_ownership",
	"anchor_audit",
	"update_quota",
}

// generator accumulates chain state while blocks are built oldest first.
type generator struct {
	rng       *rand.Rand
	seed      int64
	addresses []string
	ids       []uuid.UUID

	blocks []model.Block
	// unspent is the pool of outputs later transactions may spend. Outputs
	// created in the block under construction sit in pending until the block
	// is sealed, so no transaction spends an output from its own block.
	unspent []outputRef
	pending []outputRef
	// anchorsByIdentity collects raw proof records per identity.
	anchorsByIdentity map[uuid.UUID][]model.ProofAnchor
}

// outputRef locates an output inside the generated chain.
type outputRef struct {
	blockIdx int
	txIdx    int
	outIdx   int
	txID     string
}

func newGenerator(seed int64) *generator {
	rng := rand.New(rand.NewSource(seed))

	g := &generator{
		rng:               rng,
		seed:              seed,
		anchorsByIdentity: make(map[uuid.UUID][]model.ProofAnchor),
	}
	for i := 0; i < addressPoolSize; i++ {
		g.addresses = append(g.addresses, "vc1q"+g.hash()[:32])
	}
	for i := 0; i < identityPoolSize; i++ {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			// rand.Rand never fails as a reader.
			panic(fmt.Sprintf("derive identity uuid: %v", err))
		}
		g.ids = append(g.ids, id)
	}
	return g
}

// hash derives a fresh 64-hex digest from the seeded stream.
func (g *generator) hash() string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(g.seed))
	binary.BigEndian.PutUint64(buf[8:], g.rng.Uint64())
	return chainhash.DoubleHashH(buf[:]).String()
}

func (g *generator) address() string {
	return g.addresses[g.rng.Intn(len(g.addresses))]
}

func (g *generator) scheme() model.SignatureScheme {
	switch g.rng.Intn(10) {
	case 0, 1, 2, 3:
		return model.SchemeClassical
	case 4, 5, 6:
		return model.SchemeMLDSA
	case 7, 8:
		return model.SchemeFalcon
	default:
		return model.SchemeHybrid
	}
}

func (g *generator) proofType() model.ProofType {
	switch g.rng.Intn(10) {
	case 0, 1, 2, 3:
		return model.ProofKYCTier1
	case 4, 5, 6:
		return model.ProofKYCTier2
	case 7, 8:
		return model.ProofKYCTier3
	default:
		return model.ProofAccredited
	}
}

func (g *generator) proofStatus() model.ProofStatus {
	switch g.rng.Intn(10) {
	case 0:
		return model.ProofFailed
	case 1, 2:
		return model.ProofPending
	default:
		return model.ProofVerified
	}
}

// run builds blockCount blocks ending at tipHeight, oldest first.
func (g *generator) run(tipHeight uint64, blockCount int) error {
	startHeight := uint64(0)
	if uint64(blockCount) <= tipHeight {
		startHeight = tipHeight - uint64(blockCount) + 1
	}

	prevHash := genesisPrevHash
	timestamp := genesisEpoch.Add(time.Duration(startHeight) * blockInterval)

	for height := startHeight; height <= tipHeight; height++ {
		block := g.buildBlock(height, prevHash, timestamp)
		g.blocks = append(g.blocks, block)
		g.unspent = append(g.unspent, g.pending...)
		g.pending = g.pending[:0]
		prevHash = block.Hash

		// Monotonically non-decreasing with mild jitter.
		timestamp = timestamp.Add(blockInterval - time.Duration(g.rng.Intn(120))*time.Second)
	}
	return nil
}

func (g *generator) buildBlock(height uint64, prevHash string, timestamp time.Time) model.Block {
	blockIdx := len(g.blocks)
	txCount := 1 + g.rng.Intn(10)

	txs := make([]model.Transaction, 0, txCount)
	for i := 0; i < txCount; i++ {
		tx := g.buildTransaction(height, timestamp, blockIdx, i)
		txs = append(txs, tx)
	}

	return model.Block{
		Height:       height,
		Hash:         g.hash(),
		PrevHash:     prevHash,
		Timestamp:    timestamp,
		Miner:        g.address(),
		MerkleRoot:   g.hash(),
		Bits:         0x1d00ffff,
		Nonce:        g.rng.Uint32(),
		Size:         uint32(1000 + g.rng.Intn(900_000)),
		Version:      2,
		TXCount:      uint32(len(txs)),
		Transactions: txs,
	}
}

func (g *generator) buildTransaction(height uint64, timestamp time.Time, blockIdx, txIdx int) model.Transaction {
	tx := model.Transaction{
		TxID:        g.hash(),
		BlockHeight: height,
		Timestamp:   timestamp,
		Version:     1,
	}

	if txIdx == 0 {
		// Coinbase: no real inputs, reward to the miner.
		tx.Inputs = []model.TxInput{{
			PrevTxID:      genesisPrevHash,
			PrevIndex:     0,
			Scheme:        model.SchemeClassical,
			SignatureSize: model.SchemeClassical.SignatureBytes(),
		}}
		tx.Outputs = []model.TxOutput{{
			Index:     0,
			Amount:    coinbaseReward,
			Recipient: g.address(),
			Script:    model.ScriptPayToHash,
		}}
		g.trackOutputs(blockIdx, txIdx, tx)
		return tx
	}

	tx.Inputs = g.spendInputs()

	roll := g.rng.Float64()
	switch {
	case roll < 0.2:
		g.attachProofAnchor(&tx)
	case roll < 0.4:
		g.attachAssetTransfer(&tx)
	case roll < 0.55:
		g.attachContractCall(&tx)
	default:
		tx.Outputs = g.plainOutputs()
	}

	g.trackOutputs(blockIdx, txIdx, tx)
	return tx
}

// spendInputs draws inputs from the unspent pool, marking the referenced
// outputs spent, so spentness always traces back to a real spending
// transaction.
func (g *generator) spendInputs() []model.TxInput {
	want := 1 + g.rng.Intn(2)
	inputs := make([]model.TxInput, 0, want)
	for i := 0; i < want && len(g.unspent) > 0; i++ {
		pick := g.rng.Intn(len(g.unspent))
		ref := g.unspent[pick]
		g.unspent = append(g.unspent[:pick], g.unspent[pick+1:]...)

		g.blocks[ref.blockIdx].Transactions[ref.txIdx].Outputs[ref.outIdx].Spent = true

		scheme := g.scheme()
		inputs = append(inputs, model.TxInput{
			PrevTxID:      ref.txID,
			PrevIndex:     uint32(ref.outIdx),
			Scheme:        scheme,
			SignatureSize: scheme.SignatureBytes(),
		})
	}
	if len(inputs) == 0 {
		scheme := g.scheme()
		inputs = append(inputs, model.TxInput{
			PrevTxID:      genesisPrevHash,
			PrevIndex:     0,
			Scheme:        scheme,
			SignatureSize: scheme.SignatureBytes(),
		})
	}
	return inputs
}

func (g *generator) plainOutputs() []model.TxOutput {
	count := 1 + g.rng.Intn(2)
	outputs := make([]model.TxOutput, 0, count)
	for i := 0; i < count; i++ {
		outputs = append(outputs, model.TxOutput{
			Index:     uint32(i),
			Amount:    uint64(1+g.rng.Intn(1000)) * 1_000_000,
			Recipient: g.address(),
			Script:    model.ScriptPayToHash,
		})
	}
	return outputs
}

func (g *generator) attachProofAnchor(tx *model.Transaction) {
	id := g.ids[g.rng.Intn(len(g.ids))]
	anchor := model.ProofAnchor{
		TxID:        tx.TxID,
		BlockHeight: tx.BlockHeight,
		Timestamp:   tx.Timestamp,
		Type:        g.proofType(),
		ProofHash:   g.hash(),
		Status:      g.proofStatus(),
	}
	g.anchorsByIdentity[id] = append(g.anchorsByIdentity[id], anchor)

	tx.ProofAnchor = &model.ProofAnchorData{
		IdentityID: id.String(),
		Type:       anchor.Type,
		ProofHash:  anchor.ProofHash,
		Status:     anchor.Status,
	}
	tx.Data = "0x" + anchor.ProofHash
	tx.Outputs = []model.TxOutput{{
		Index:     0,
		Amount:    0,
		Recipient: g.address(),
		Script:    model.ScriptProofAnchor,
	}}
}

func (g *generator) attachAssetTransfer(tx *model.Transaction) {
	transfer := model.AssetTransferData{
		FromAddress: g.address(),
		ToAddress:   g.address(),
		AssetID:     assetIDs[g.rng.Intn(len(assetIDs))],
		Quantity:    uint64(1 + g.rng.Intn(10_000)),
	}
	if g.rng.Intn(2) == 0 {
		transfer.Price = uint64(1 + g.rng.Intn(100_000))
	}

	encoded, err := codec.EncodeAssetTransfer(transfer)
	if err != nil {
		// Unreachable for generated fields.
		panic(fmt.Sprintf("encode asset transfer: %v", err))
	}
	tx.Data = encoded
	// Value rides entirely in the payload: amount stays zero.
	tx.Outputs = []model.TxOutput{{
		Index:     0,
		Amount:    0,
		Recipient: transfer.ToAddress,
		Script:    model.ScriptAssetTransfer,
	}}
}

func (g *generator) attachContractCall(tx *model.Transaction) {
	call := model.ContractCallData{
		Function: contractFunctions[g.rng.Intn(len(contractFunctions))],
		Args: map[string]any{
			"caller": g.address(),
			"nonce":  fmt.Sprintf("%d", g.rng.Uint32()),
		},
	}

	encoded, err := codec.EncodeContractCall(call)
	if err != nil {
		panic(fmt.Sprintf("encode contract call: %v", err))
	}
	tx.Data = encoded
	tx.ContractCall = &call
	tx.Outputs = []model.TxOutput{{
		Index:     0,
		Amount:    0,
		Recipient: g.address(),
		Script:    model.ScriptContractDeploy,
	}}
}

func (g *generator) trackOutputs(blockIdx, txIdx int, tx model.Transaction) {
	for outIdx, out := range tx.Outputs {
		if out.Amount == 0 {
			continue
		}
		g.pending = append(g.pending, outputRef{
			blockIdx: blockIdx,
			txIdx:    txIdx,
			outIdx:   outIdx,
			txID:     tx.TxID,
		})
	}
}

// Package codec translates between a transaction's opaque data field and its
// structured payload views (asset transfers, contract calls).
//
// The wire form is always the same: structured bytes, hex-encoded with a "0x"
// prefix. Asset transfers are UTF-8 JSON with a type discriminant. Contract
// calls are a 2-byte big-endian length prefix, the function name bytes, then
// a UTF-8 JSON arguments object.
package codec

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/verdantchain/explorer-backend/internal/model"
)

// ErrMalformedPayload reports that a payload could not be decoded into the
// requested structured view.
var ErrMalformedPayload = errors.New("malformed payload")

const assetTransferType = "asset_transfer"

// maxFunctionNameLen bounds a contract-call function name to what the 2-byte
// length prefix can express.
const maxFunctionNameLen = 1<<16 - 1

type assetTransferWire struct {
	Type string `json:"type"`
	model.AssetTransferData
}

// Payload is the result of a best-effort decode of an opaque data field.
// At most one view is populated; both nil means the data carries no
// structured payload this codec understands.
type Payload struct {
	AssetTransfer *model.AssetTransferData
	ContractCall  *model.ContractCallData
}

// Empty reports whether no structured view was decoded.
func (p Payload) Empty() bool {
	return p.AssetTransfer == nil && p.ContractCall == nil
}

// EncodeAssetTransfer encodes asset-transfer fields into the hex wire form.
func EncodeAssetTransfer(data model.AssetTransferData) (string, error) {
	raw, err := json.Marshal(assetTransferWire{Type: assetTransferType, AssetTransferData: data})
	if err != nil {
		return "", fmt.Errorf("marshal asset transfer: %w", err)
	}
	return "0x" + hex.EncodeToString(raw), nil
}

// EncodeContractCall encodes a named-function call into the hex wire form.
func EncodeContractCall(data model.ContractCallData) (string, error) {
	name := []byte(data.Function)
	if len(name) == 0 {
		return "", fmt.Errorf("%w: empty function name", ErrMalformedPayload)
	}
	if len(name) > maxFunctionNameLen {
		return "", fmt.Errorf("%w: function name %d bytes exceeds length prefix", ErrMalformedPayload, len(name))
	}
	args := data.Args
	if args == nil {
		args = map[string]any{}
	}
	rawArgs, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("marshal contract call args: %w", err)
	}

	buf := make([]byte, 2, 2+len(name)+len(rawArgs))
	binary.BigEndian.PutUint16(buf, uint16(len(name)))
	buf = append(buf, name...)
	buf = append(buf, rawArgs...)
	return "0x" + hex.EncodeToString(buf), nil
}

// DecodeAssetTransfer decodes the hex wire form into asset-transfer fields.
// Fails with ErrMalformedPayload when any decoding step errors or the type
// discriminant does not match.
func DecodeAssetTransfer(data string) (model.AssetTransferData, error) {
	raw, err := decodeHex(data)
	if err != nil {
		return model.AssetTransferData{}, err
	}
	var wire assetTransferWire
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&wire); err != nil {
		return model.AssetTransferData{}, fmt.Errorf("%w: parse asset transfer json: %v", ErrMalformedPayload, err)
	}
	if wire.Type != assetTransferType {
		return model.AssetTransferData{}, fmt.Errorf("%w: unexpected payload type %q", ErrMalformedPayload, wire.Type)
	}
	return wire.AssetTransferData, nil
}

// DecodeContractCall decodes the hex wire form into a contract call. Fails
// with ErrMalformedPayload on length overrun, invalid UTF-8 in the function
// name, or invalid argument JSON.
func DecodeContractCall(data string) (model.ContractCallData, error) {
	raw, err := decodeHex(data)
	if err != nil {
		return model.ContractCallData{}, err
	}
	if len(raw) < 2 {
		return model.ContractCallData{}, fmt.Errorf("%w: payload shorter than length prefix", ErrMalformedPayload)
	}
	nameLen := int(binary.BigEndian.Uint16(raw))
	if nameLen == 0 || 2+nameLen > len(raw) {
		return model.ContractCallData{}, fmt.Errorf("%w: function name length %d overruns payload of %d bytes", ErrMalformedPayload, nameLen, len(raw))
	}
	name := raw[2 : 2+nameLen]
	if !utf8.Valid(name) {
		return model.ContractCallData{}, fmt.Errorf("%w: function name is not valid utf-8", ErrMalformedPayload)
	}
	var args map[string]any
	if err := json.Unmarshal(raw[2+nameLen:], &args); err != nil {
		return model.ContractCallData{}, fmt.Errorf("%w: parse contract call args: %v", ErrMalformedPayload, err)
	}
	return model.ContractCallData{Function: string(name), Args: args}, nil
}

// Decode attempts both structured views in turn. A Payload with no views is
// not an error: it signals a plain transaction whose data this codec does not
// understand, and callers must not treat it as corruption.
func Decode(data string) Payload {
	if transfer, err := DecodeAssetTransfer(data); err == nil {
		return Payload{AssetTransfer: &transfer}
	}
	if call, err := DecodeContractCall(data); err == nil {
		return Payload{ContractCall: &call}
	}
	return Payload{}
}

func decodeHex(data string) ([]byte, error) {
	trimmed := strings.TrimPrefix(data, "0x")
	if trimmed == data {
		return nil, fmt.Errorf("%w: missing 0x prefix", ErrMalformedPayload)
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex: %v", ErrMalformedPayload, err)
	}
	return raw, nil
}

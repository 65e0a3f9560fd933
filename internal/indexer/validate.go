package indexer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/verdantchain/explorer-backend/internal/chain"
)

var (
	hashPattern    = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
	uuidV4Pattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)
	addressPattern = regexp.MustCompile(`^[0-9a-z]{8,90}$`)
)

// normalizeHash validates a 64-hex digest and lowercases it.
func normalizeHash(hash string) (string, error) {
	if !hashPattern.MatchString(hash) {
		return "", fmt.Errorf("%w: %q is not a 64-character hex digest", chain.ErrInvalidArgument, hash)
	}
	return strings.ToLower(hash), nil
}

// parseIdentityID validates the UUID v4 shape and parses it.
func parseIdentityID(id string) (uuid.UUID, error) {
	if !uuidV4Pattern.MatchString(id) {
		return uuid.UUID{}, fmt.Errorf("%w: %q is not a v4 uuid", chain.ErrInvalidArgument, id)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %v", chain.ErrInvalidArgument, err)
	}
	return parsed, nil
}

// normalizeAddress validates an address' character class and length.
func normalizeAddress(address string) (string, error) {
	if !addressPattern.MatchString(address) {
		return "", fmt.Errorf("%w: %q is not a valid address", chain.ErrInvalidArgument, address)
	}
	return address, nil
}

// parseHeight parses a decimal, non-negative block height.
func parseHeight(s string) (uint64, bool) {
	height, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return height, err == nil
}

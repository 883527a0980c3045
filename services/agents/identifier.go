package agents

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidAgentIdentifier marks identifiers that are not of the
// "chainId:tokenId" form.
var ErrInvalidAgentIdentifier = errors.New("invalid agent identifier")

// ParseAgentID splits a "chainId:tokenId" identifier. The chain part must
// be a decimal uint64, the token part a non-negative decimal integer of
// any size.
func ParseAgentID(identifier string) (uint64, *big.Int, error) {
	parts := strings.Split(identifier, ":")
	if len(parts) != 2 {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidAgentIdentifier, identifier)
	}

	chainID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: bad chain part %q", ErrInvalidAgentIdentifier, parts[0])
	}

	tokenID, ok := new(big.Int).SetString(parts[1], 10)
	if !ok || tokenID.Sign() < 0 {
		return 0, nil, fmt.Errorf("%w: bad token part %q", ErrInvalidAgentIdentifier, parts[1])
	}

	return chainID, tokenID, nil
}

// FormatAgentID is the inverse of ParseAgentID.
func FormatAgentID(chainID uint64, tokenID *big.Int) string {
	return strconv.FormatUint(chainID, 10) + ":" + tokenID.String()
}

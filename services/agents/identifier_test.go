package agents

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAgentID(t *testing.T) {
	chainID, tokenID, err := ParseAgentID("1:42")
	require.NoError(t, err)
	require.Equal(t, uint64(1), chainID)
	require.Equal(t, int64(42), tokenID.Int64())
}

func TestParseAgentIDLargeToken(t *testing.T) {
	chainID, tokenID, err := ParseAgentID("8453:340282366920938463463374607431768211456")
	require.NoError(t, err)
	require.Equal(t, uint64(8453), chainID)

	expected, ok := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	require.True(t, ok)
	require.Zero(t, tokenID.Cmp(expected))
}

func TestParseAgentIDRejectsMalformed(t *testing.T) {
	for _, identifier := range []string{
		"",
		"42",
		"1:2:3",
		"eth:42",
		"1:-42",
		"1:0x2a",
	} {
		_, _, err := ParseAgentID(identifier)
		require.ErrorIs(t, err, ErrInvalidAgentIdentifier, identifier)
	}
}

func TestFormatAgentIDRoundTrip(t *testing.T) {
	identifier := FormatAgentID(137, big.NewInt(167))
	require.Equal(t, "137:167", identifier)

	chainID, tokenID, err := ParseAgentID(identifier)
	require.NoError(t, err)
	require.Equal(t, uint64(137), chainID)
	require.Equal(t, int64(167), tokenID.Int64())
}

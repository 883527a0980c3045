package agentrecord

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const (
	testRegistry = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	testRegistry2 = "0x1234567890AbcdEF1234567890aBcdef12345678"
)

func TestEncodeRecordValue(t *testing.T) {
	value, err := EncodeRecordValue(common.HexToAddress(testRegistry), big.NewInt(42))
	require.NoError(t, err)
	require.Equal(t, testRegistry+"012a", value)
}

func TestEncodeRecordValueZeroAgentID(t *testing.T) {
	// Zero encodes to zero bytes, so the length field is the whole payload.
	value, err := EncodeRecordValue(common.HexToAddress(testRegistry), big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, testRegistry+"00", value)
}

func TestEncodeRecordValueSingleByteAgentID(t *testing.T) {
	value, err := EncodeRecordValue(common.HexToAddress(testRegistry2), big.NewInt(0xa7))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(value, "01a7"))

	record, err := DecodeRecordValue(value)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(testRegistry2), record.Address)
	require.Equal(t, int64(167), record.AgentID.Int64())
}

func TestEncodeRecordValueRejectsNegativeAgentID(t *testing.T) {
	_, err := EncodeRecordValue(common.HexToAddress(testRegistry), big.NewInt(-1))
	require.ErrorIs(t, err, ErrInvalidAgentID)
}

func TestRecordValueRoundTrip(t *testing.T) {
	agentIDs := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(42),
		big.NewInt(255),
		big.NewInt(256),
		new(big.Int).SetUint64(1<<63 + 12345),
		new(big.Int).Exp(big.NewInt(2), big.NewInt(128), nil),
		// largest value the one byte length field can carry
		new(big.Int).Sub(new(big.Int).Exp(big.NewInt(2), big.NewInt(2040), nil), big.NewInt(1)),
	}

	registry := common.HexToAddress(testRegistry)
	for _, agentID := range agentIDs {
		value, err := EncodeRecordValue(registry, agentID)
		require.NoError(t, err)

		record, err := DecodeRecordValue(value)
		require.NoError(t, err)
		require.Equal(t, RecordVersion, record.Version)
		require.Equal(t, ChainTypeEVM, record.ChainType)
		require.Equal(t, registry, record.Address)
		require.Zero(t, record.ChainReference.Sign())
		require.Zero(t, record.AgentID.Cmp(agentID))
	}
}

func TestEncodeRecordValueLengthPrefixIsMinimal(t *testing.T) {
	testCases := []struct {
		agentID *big.Int
		suffix  string
	}{
		{big.NewInt(0), "00"},
		{big.NewInt(0xa7), "01a7"},
		{big.NewInt(0x0100), "020100"},
		{big.NewInt(0xffffff), "03ffffff"},
	}

	for _, tc := range testCases {
		value, err := EncodeRecordValue(common.HexToAddress(testRegistry), tc.agentID)
		require.NoError(t, err)
		require.Equal(t, tc.suffix, value[42:])
	}
}

func TestDecodeRecordValueMalformed(t *testing.T) {
	valid, err := EncodeRecordValue(common.HexToAddress(testRegistry), big.NewInt(42))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		value    string
		expected error
	}{
		{"missing 0x prefix", strings.TrimPrefix(valid, "0x"), ErrValueMissingPrefix},
		{"empty value", "", ErrValueMissingPrefix},
		{"address only", testRegistry, ErrValueTooShort},
		{"truncated length field", testRegistry + "0", ErrValueTooShort},
		{"unparsable length field", testRegistry + "zz", ErrInvalidAgentIDLength},
		{"declared length longer than payload", testRegistry + "02a7", ErrAgentIDLengthMismatch},
		{"declared length shorter than payload", testRegistry + "01a7b2", ErrAgentIDLengthMismatch},
		{"bad checksum", strings.Replace(testRegistry, "dA", "Da", 1) + "012a", ErrInvalidAddress},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRecordValue(tc.value)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestDecodeRecordValueRejectsNonHexPayload(t *testing.T) {
	_, err := DecodeRecordValue(testRegistry + "01zz")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode agent ID payload")
}

func TestParseChecksumAddress(t *testing.T) {
	checksummed := common.HexToAddress(testRegistry)

	// Lowercase input is normalized.
	addr, err := ParseChecksumAddress(strings.ToLower(testRegistry))
	require.NoError(t, err)
	require.Equal(t, checksummed, addr)
	require.Equal(t, testRegistry, addr.Hex())

	// Checksummed input passes unchanged.
	addr, err = ParseChecksumAddress(testRegistry)
	require.NoError(t, err)
	require.Equal(t, checksummed, addr)

	// All-uppercase hex carries no checksum information and is accepted,
	// the same way ethers getAddress only verifies mixed-case input.
	upper := "0x" + strings.ToUpper(testRegistry[2:])
	addr, err = ParseChecksumAddress(upper)
	require.NoError(t, err)
	require.Equal(t, checksummed, addr)

	// Mixed case with a wrong checksum is rejected.
	broken := strings.Replace(testRegistry, "dA", "Da", 1)
	_, err = ParseChecksumAddress(broken)
	require.ErrorIs(t, err, ErrInvalidAddress)

	// Not an address at all.
	_, err = ParseChecksumAddress("0x1234")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

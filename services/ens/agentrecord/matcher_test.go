package agentrecord

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func matchingRecord() *Record {
	return &Record{
		Version:        RecordVersion,
		ChainType:      ChainTypeEVM,
		ChainReference: big.NewInt(1),
		Address:        common.HexToAddress(testRegistry),
		AgentID:        big.NewInt(42),
	}
}

func TestMatchesAgent(t *testing.T) {
	record := matchingRecord()
	require.True(t, record.MatchesAgent(big.NewInt(1), common.HexToAddress(testRegistry), big.NewInt(42)))
}

func TestMatchesAgentIsConjunctive(t *testing.T) {
	registry := common.HexToAddress(testRegistry)

	t.Run("wrong version", func(t *testing.T) {
		record := matchingRecord()
		record.Version = 2
		require.False(t, record.MatchesAgent(big.NewInt(1), registry, big.NewInt(42)))
	})

	t.Run("unknown chain type", func(t *testing.T) {
		record := matchingRecord()
		record.ChainType = 0x0001
		require.False(t, record.MatchesAgent(big.NewInt(1), registry, big.NewInt(42)))
	})

	t.Run("wrong chain reference", func(t *testing.T) {
		record := matchingRecord()
		require.False(t, record.MatchesAgent(big.NewInt(10), registry, big.NewInt(42)))
	})

	t.Run("wrong registry", func(t *testing.T) {
		record := matchingRecord()
		require.False(t, record.MatchesAgent(big.NewInt(1), common.HexToAddress(testRegistry2), big.NewInt(42)))
	})

	t.Run("wrong agent id", func(t *testing.T) {
		record := matchingRecord()
		require.False(t, record.MatchesAgent(big.NewInt(1), registry, big.NewInt(43)))
	})

	t.Run("nil record", func(t *testing.T) {
		var record *Record
		require.False(t, record.MatchesAgent(big.NewInt(1), registry, big.NewInt(42)))
	})
}

func TestMatchesAgentExpectedAddressCaseInsensitive(t *testing.T) {
	// The expected address arrives through ParseChecksumAddress, so any
	// accepted casing compares equal to the record's normalized address.
	record := matchingRecord()

	lower, err := ParseChecksumAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	require.NoError(t, err)
	require.True(t, record.MatchesAgent(big.NewInt(1), lower, big.NewInt(42)))

	checksummed, err := ParseChecksumAddress(testRegistry)
	require.NoError(t, err)
	require.True(t, record.MatchesAgent(big.NewInt(1), checksummed, big.NewInt(42)))
}

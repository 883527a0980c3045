package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(Network{ChainID: 1, Name: "mainnet", RPCURL: "https://eth.example.org"})
	require.NoError(t, err)
	require.Equal(t, DefaultIPFSGateway, c.IPFSGatewayURL)
	require.NotNil(t, c.Network(1))
	require.Nil(t, c.Network(10))
}

func TestNewConfigRequiresNetworks(t *testing.T) {
	_, err := NewConfig()
	require.Error(t, err)
}

func TestNewConfigRejectsBadRPCURL(t *testing.T) {
	_, err := NewConfig(Network{ChainID: 1, RPCURL: "not a url"})
	require.Error(t, err)
}

func TestNewConfigRejectsDuplicateChainID(t *testing.T) {
	_, err := NewConfig(
		Network{ChainID: 1, RPCURL: "https://one.example.org"},
		Network{ChainID: 1, RPCURL: "https://two.example.org"},
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate network")
}

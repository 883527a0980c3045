package ens

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateENSName(t *testing.T) {
	require.NoError(t, validateENSName("agent.example.eth"))
	require.NoError(t, validateENSName("example.eth"))
	require.Error(t, validateENSName(""))
	require.Error(t, validateENSName("no-dots"))
}

func TestDecodeContentHashIPFS(t *testing.T) {
	contentHash, err := hex.DecodeString("e3010170122029f2d17be6139079dc48696d1f582a8530eb9805b561eda517e22a892c7e3f1f")
	require.NoError(t, err)

	uri, err := decodeContentHash(contentHash)
	require.NoError(t, err)
	require.Equal(t, "https", uri.Scheme)
	require.Equal(t, "bafybeibj6lixxzqtsb45ysdjnupvqkufgdvzqbnvmhw2kf7cfkesy7r7d4.ipfs.dweb.link", uri.Host)
	require.Empty(t, uri.Path)
}

func TestDecodeContentHashEmpty(t *testing.T) {
	uri, err := decodeContentHash(nil)
	require.NoError(t, err)
	require.Equal(t, &URI{}, uri)
}

func TestDecodeContentHashUnknownCodec(t *testing.T) {
	_, err := decodeContentHash([]byte{0xff, 0xff, 0x01, 0x02})
	require.Error(t, err)
}

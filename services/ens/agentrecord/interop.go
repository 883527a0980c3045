package agentrecord

import (
	"encoding/hex"
	"errors"
	"math/big"
)

// interopVersion is the ERC-7930 interoperable address format version.
const interopVersion uint16 = 1

// ErrChainReferenceTooLong is returned when the minimal big-endian encoding
// of a chain reference exceeds the one byte length field of the envelope.
var ErrChainReferenceTooLong = errors.New("chain reference does not fit length field")

// ChainIdentifierHex encodes chainReference under the given namespace as an
// ERC-7930 chain-only envelope and renders it as lowercase hex without a 0x
// prefix. The envelope is version (2 bytes), chain type (2 bytes), chain
// reference length (1 byte), minimal big-endian chain reference and a zero
// length address field. The empty address field is what distinguishes a
// chain identifier from a full interoperable address.
func ChainIdentifierHex(chainReference *big.Int, namespace string) (string, error) {
	chainType, err := namespaceChainType(namespace)
	if err != nil {
		return "", err
	}
	if chainReference == nil || chainReference.Sign() < 0 {
		return "", ErrInvalidChainReference
	}

	ref := chainReference.Bytes() // empty for zero
	if len(ref) > 0xff {
		return "", ErrChainReferenceTooLong
	}

	buf := make([]byte, 0, 6+len(ref))
	buf = append(buf, byte(interopVersion>>8), byte(interopVersion))
	buf = append(buf, byte(chainType>>8), byte(chainType))
	buf = append(buf, byte(len(ref)))
	buf = append(buf, ref...)
	buf = append(buf, 0x00) // zero-length address: chain identifier only

	return hex.EncodeToString(buf), nil
}

package agentrecord

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	pkgerrors "github.com/pkg/errors"
)

// RecordVersion is the protocol version emitted and accepted by this codec.
const RecordVersion = 1

// KeyPrefix is the leading segment of every agent-registry record key.
const KeyPrefix = "agent-registry"

// Decode stage errors. Each gate in DecodeRecordValue fails with exactly one
// of these (the hex payload gate wraps the underlying hex error instead).
var (
	ErrValueMissingPrefix    = errors.New("record value segment must start with 0x")
	ErrValueTooShort         = errors.New("record value too short")
	ErrInvalidAgentIDLength  = errors.New("invalid agent ID length")
	ErrAgentIDLengthMismatch = errors.New("agent ID length does not match payload")
	ErrInvalidAddress        = errors.New("invalid checksum address")
	ErrInvalidAgentID        = errors.New("agent ID must be a non-negative integer")
	ErrAgentIDTooLong        = errors.New("agent ID does not fit length field")
)

// Record is a decoded agent-registry binding. Records are constructed fresh
// per verification call and never mutated afterwards.
type Record struct {
	Version        int
	ChainType      ChainType
	ChainReference *big.Int
	Address        common.Address
	AgentID        *big.Int
}

// TextRecordKey returns the ENS text record key for an agent-registry
// binding on the given chain in the default (eip155) namespace.
func TextRecordKey(chainReference *big.Int) (string, error) {
	return TextRecordKeyInNamespace(chainReference, DefaultNamespace)
}

// TextRecordKeyInNamespace returns the record key for an arbitrary
// namespace. The key is "agent-registry:" plus the lowercase hex chain
// envelope. Callers must lowercase the key before using it as a resolver
// lookup key; upstream encodings may vary in case.
func TextRecordKeyInNamespace(chainReference *big.Int, namespace string) (string, error) {
	// Checked here and again inside ChainIdentifierHex; both entry points
	// must reject unknown namespaces consistently.
	if _, err := namespaceChainType(namespace); err != nil {
		return "", err
	}

	idHex, err := ChainIdentifierHex(chainReference, namespace)
	if err != nil {
		return "", err
	}

	return KeyPrefix + ":" + idHex, nil
}

// EncodeRecordValue renders a registry address and agent id as a record
// value: checksummed address text, a two hex digit byte length and the
// minimal big-endian agent id as lowercase hex. Zero encodes to zero bytes.
func EncodeRecordValue(registry common.Address, agentID *big.Int) (string, error) {
	if agentID == nil || agentID.Sign() < 0 {
		return "", ErrInvalidAgentID
	}

	idBytes := agentID.Bytes()
	if len(idBytes) > 0xff {
		return "", ErrAgentIDTooLong
	}

	return fmt.Sprintf("%s%02x%s", registry.Hex(), len(idBytes), hex.EncodeToString(idBytes)), nil
}

// DecodeRecordValue parses a record value string, validating each segment in
// order. The returned record has ChainReference set to zero: this function
// only decodes the value segment, the chain binding comes from the key the
// value was fetched under and is injected by the loader.
func DecodeRecordValue(value string) (*Record, error) {
	if !strings.HasPrefix(value, "0x") {
		return nil, ErrValueMissingPrefix
	}
	if len(value) < 44 {
		return nil, ErrValueTooShort
	}

	addressText := value[:42]

	declaredLen, err := strconv.ParseUint(value[42:44], 16, 8)
	if err != nil {
		return nil, ErrInvalidAgentIDLength
	}

	idBytes, err := hex.DecodeString(value[44:])
	if err != nil {
		return nil, pkgerrors.Wrap(err, "decode agent ID payload")
	}
	if uint64(len(idBytes)) != declaredLen {
		return nil, ErrAgentIDLengthMismatch
	}

	address, err := ParseChecksumAddress(addressText)
	if err != nil {
		return nil, err
	}

	return &Record{
		Version:        RecordVersion,
		ChainType:      ChainTypeEVM,
		ChainReference: new(big.Int),
		Address:        address,
		AgentID:        new(big.Int).SetBytes(idBytes), // empty slice decodes to 0
	}, nil
}

// ParseChecksumAddress validates and normalizes an address string. Uniformly
// cased input is accepted as-is; mixed-case input must carry a valid EIP-55
// checksum.
func ParseChecksumAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, ErrInvalidAddress
	}

	address := common.HexToAddress(s)

	hexPart := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if hexPart != strings.ToLower(hexPart) && hexPart != strings.ToUpper(hexPart) {
		if "0x"+hexPart != address.Hex() {
			return common.Address{}, ErrInvalidAddress
		}
	}

	return address, nil
}

package agentrecord

import "errors"

// ChainType is the ERC-7930 numeric code for an address namespace.
type ChainType uint16

// ChainTypeEVM covers all eip155 (EVM style) chains. It is the only
// namespace defined so far; further codes are reserved.
const ChainTypeEVM ChainType = 0x0000

// DefaultNamespace is the CAIP namespace assumed when none is given.
const DefaultNamespace = "eip155"

var (
	// ErrUnknownNamespace is returned for namespace tags outside the
	// closed table below. Usage error, never downgraded to absence.
	ErrUnknownNamespace = errors.New("unknown chain namespace")

	// ErrInvalidChainReference is returned for nil or negative chain
	// references. Usage error, never downgraded to absence.
	ErrInvalidChainReference = errors.New("chain reference must be a non-negative integer")
)

// chainTypeByNamespace is the closed namespace table. Extending it means
// adding an entry here plus a comparison branch in MatchesAgent; there is
// no implicit fallback.
var chainTypeByNamespace = map[string]ChainType{
	"eip155": ChainTypeEVM,
}

func namespaceChainType(namespace string) (ChainType, error) {
	code, ok := chainTypeByNamespace[namespace]
	if !ok {
		return 0, ErrUnknownNamespace
	}
	return code, nil
}

package agentrecord

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// MatchesAgent reports whether the record binds its name to the given
// registry deployment and agent. The comparison is conjunctive: version,
// chain type, chain reference, registry address and agent id must all match
// and any single inequality yields false.
func (r *Record) MatchesAgent(chainReference *big.Int, registry common.Address, agentID *big.Int) bool {
	if r == nil {
		return false
	}
	if r.Version != RecordVersion {
		return false
	}
	// Only the EVM namespace is defined. A second namespace would need a
	// comparison against the requested namespace's code here instead of
	// this constant.
	if r.ChainType != ChainTypeEVM {
		return false
	}
	if r.ChainReference == nil || chainReference == nil || r.ChainReference.Cmp(chainReference) != 0 {
		return false
	}
	if r.Address != registry {
		return false
	}
	if r.AgentID == nil || agentID == nil || r.AgentID.Cmp(agentID) != 0 {
		return false
	}
	return true
}

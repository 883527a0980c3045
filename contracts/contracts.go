package contracts

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/unruggable-labs/agent0-go/contracts/identityregistry"
	"github.com/unruggable-labs/agent0-go/contracts/reputationregistry"
	"github.com/unruggable-labs/agent0-go/params"
	"github.com/unruggable-labs/agent0-go/rpc"
)

type ContractMaker struct {
	RPCClient *rpc.Client
	Config    *params.Config
}

func (c *ContractMaker) NewIdentityRegistry(chainID uint64) (*identityregistry.IdentityRegistry, error) {
	contractAddr, err := c.IdentityRegistryAddress(chainID)
	if err != nil {
		return nil, err
	}

	backend, err := c.RPCClient.EthClient(chainID)
	if err != nil {
		return nil, err
	}

	return identityregistry.NewIdentityRegistry(
		contractAddr,
		backend,
	)
}

func (c *ContractMaker) NewReputationRegistry(chainID uint64) (*reputationregistry.ReputationRegistry, error) {
	contractAddr, err := c.ReputationRegistryAddress(chainID)
	if err != nil {
		return nil, err
	}

	backend, err := c.RPCClient.EthClient(chainID)
	if err != nil {
		return nil, err
	}

	return reputationregistry.NewReputationRegistry(
		contractAddr,
		backend,
	)
}

// IdentityRegistryAddress resolves the identity registry for chainID. A
// per-network override in the config wins over the built-in deployments.
func (c *ContractMaker) IdentityRegistryAddress(chainID uint64) (common.Address, error) {
	if c.Config != nil {
		if network := c.Config.Network(chainID); network != nil && network.IdentityRegistry != nil {
			return *network.IdentityRegistry, nil
		}
	}
	return identityregistry.ContractAddress(chainID)
}

// ReputationRegistryAddress resolves the reputation registry for chainID. A
// per-network override in the config wins over the built-in deployments.
func (c *ContractMaker) ReputationRegistryAddress(chainID uint64) (common.Address, error) {
	if c.Config != nil {
		if network := c.Config.Network(chainID); network != nil && network.ReputationRegistry != nil {
			return *network.ReputationRegistry, nil
		}
	}
	return reputationregistry.ContractAddress(chainID)
}

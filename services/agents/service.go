package agents

import (
	"github.com/ethereum/go-ethereum/p2p"
	ethRpc "github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/unruggable-labs/agent0-go/ipfs"
	"github.com/unruggable-labs/agent0-go/params"
	"github.com/unruggable-labs/agent0-go/rpc"
)

// Agents service
type Service struct {
	api *API
}

// Returns a new Agents Service.
func NewService(rpcClient *rpc.Client, config *params.Config, ipfsClient *ipfs.Client, logger *zap.Logger) *Service {
	return &Service{
		NewAPI(rpcClient, config, ipfsClient, logger),
	}
}

// API returns the service API directly, for embedders that do not go
// through the RPC layer.
func (s *Service) API() *API {
	return s.api
}

// Protocols returns a new protocols list. In this case, there are none.
func (s *Service) Protocols() []p2p.Protocol {
	return []p2p.Protocol{}
}

// APIs returns a list of new APIs.
func (s *Service) APIs() []ethRpc.API {
	return []ethRpc.API{
		{
			Namespace: "agents",
			Version:   "0.1.0",
			Service:   s.api,
			Public:    true,
		},
	}
}

// Start is run when a service is started.
func (s *Service) Start() error {
	return nil
}

// Stop is run when a service is stopped.
func (s *Service) Stop() error {
	return nil
}

package params

import (
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	validator "gopkg.in/go-playground/validator.v9"
)

// Network describes one chain the SDK can talk to.
type Network struct {
	// ChainID is the eip155 chain identifier.
	ChainID uint64 `json:"chainId" validate:"required"`

	// Name is a human readable network name, informational only.
	Name string `json:"name"`

	// RPCURL is the JSON-RPC endpoint used for all reads and writes on
	// this chain.
	RPCURL string `json:"rpcUrl" validate:"required,url"`

	// IdentityRegistry overrides the built-in identity registry address
	// for this chain. Leave nil to use the default deployment.
	IdentityRegistry *common.Address `json:"identityRegistry,omitempty"`

	// ReputationRegistry overrides the built-in reputation registry
	// address for this chain.
	ReputationRegistry *common.Address `json:"reputationRegistry,omitempty"`
}

// Config is the top level SDK configuration.
type Config struct {
	Networks []Network `json:"networks" validate:"required,min=1"`

	// IPFSGatewayURL serves ipfs:// metadata reads. Defaults to
	// DefaultIPFSGateway.
	IPFSGatewayURL string `json:"ipfsGatewayUrl"`

	// IPFSAPIURL is the node API used for publishing metadata. Publishing
	// is unavailable when empty.
	IPFSAPIURL string `json:"ipfsApiUrl,omitempty"`
}

// DefaultIPFSGateway is used when Config.IPFSGatewayURL is empty.
const DefaultIPFSGateway = "https://ipfs.io"

// NewConfig validates the given networks and returns a ready Config.
func NewConfig(networks ...Network) (*Config, error) {
	c := &Config{
		Networks:       networks,
		IPFSGatewayURL: DefaultIPFSGateway,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns an error describing the first inconsistent value found.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	seen := make(map[uint64]bool, len(c.Networks))
	for _, n := range c.Networks {
		if seen[n.ChainID] {
			return fmt.Errorf("duplicate network for chainID %d", n.ChainID)
		}
		seen[n.ChainID] = true

		if _, err := url.ParseRequestURI(n.RPCURL); err != nil {
			return fmt.Errorf("network %d: RPCURL '%s' is invalid: %v", n.ChainID, n.RPCURL, err)
		}
	}

	if c.IPFSGatewayURL != "" {
		if _, err := url.ParseRequestURI(c.IPFSGatewayURL); err != nil {
			return fmt.Errorf("IPFSGatewayURL '%s' is invalid: %v", c.IPFSGatewayURL, err)
		}
	}

	if c.IPFSAPIURL != "" {
		if _, err := url.ParseRequestURI(c.IPFSAPIURL); err != nil {
			return fmt.Errorf("IPFSAPIURL '%s' is invalid: %v", c.IPFSAPIURL, err)
		}
	}

	return nil
}

// Network returns the configuration for chainID, or nil when the chain is
// not configured.
func (c *Config) Network(chainID uint64) *Network {
	for i := range c.Networks {
		if c.Networks[i].ChainID == chainID {
			return &c.Networks[i]
		}
	}
	return nil
}

package rpc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/unruggable-labs/agent0-go/params"
)

const (
	// DefaultCallTimeout is a default timeout for an RPC call
	DefaultCallTimeout = time.Minute
)

// Client manages one JSON-RPC connection per configured chain. Connections
// are dialed lazily on first use and cached for the lifetime of the client.
//
// Client is safe for concurrent use.
type Client struct {
	sync.RWMutex

	config     *params.Config
	rpcClients map[uint64]*gethrpc.Client
	logger     *zap.Logger
}

// NewClient returns a client over the networks in config. Nothing is dialed
// until a chain is first used.
func NewClient(config *params.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config:     config,
		rpcClients: make(map[uint64]*gethrpc.Client),
		logger:     logger.Named("rpcClient"),
	}
}

// EthClient returns an ethclient for chainID, dialing the configured
// endpoint on first use.
func (c *Client) EthClient(chainID uint64) (*ethclient.Client, error) {
	rpcClient, err := c.rpcClient(chainID)
	if err != nil {
		return nil, err
	}
	return ethclient.NewClient(rpcClient), nil
}

// CallContext performs a JSON-RPC call against chainID with the given
// arguments. If the context is canceled before the call has successfully
// returned, CallContext returns immediately.
//
// The result must be a pointer so that package json can unmarshal into it.
// You can also pass nil, in which case the result is ignored.
func (c *Client) CallContext(ctx context.Context, chainID uint64, result interface{}, method string, args ...interface{}) error {
	rpcClient, err := c.rpcClient(chainID)
	if err != nil {
		return err
	}
	return rpcClient.CallContext(ctx, result, method, args...)
}

// Close tears down every dialed connection.
func (c *Client) Close() {
	c.Lock()
	defer c.Unlock()

	for chainID, rpcClient := range c.rpcClients {
		rpcClient.Close()
		delete(c.rpcClients, chainID)
	}
}

func (c *Client) rpcClient(chainID uint64) (*gethrpc.Client, error) {
	c.RLock()
	rpcClient, ok := c.rpcClients[chainID]
	c.RUnlock()
	if ok {
		return rpcClient, nil
	}

	network := c.config.Network(chainID)
	if network == nil {
		return nil, fmt.Errorf("no network configured for chainID %d", chainID)
	}

	c.Lock()
	defer c.Unlock()

	// Another goroutine may have dialed while we waited for the lock.
	if rpcClient, ok = c.rpcClients[chainID]; ok {
		return rpcClient, nil
	}

	c.logger.Debug("dialing RPC endpoint", zap.Uint64("chainID", chainID), zap.String("url", network.RPCURL))

	rpcClient, err := gethrpc.Dial(network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", network.RPCURL, err)
	}

	c.rpcClients[chainID] = rpcClient
	return rpcClient, nil
}

package ens

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
	"github.com/wealdtech/go-multicodec"
	"go.uber.org/zap"

	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/unruggable-labs/agent0-go/rpc"
)

func NewAPI(rpcClient *rpc.Client, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		rpcClient: rpcClient,
		logger:    logger.Named("ensAPI"),
	}
}

type API struct {
	rpcClient *rpc.Client
	logger    *zap.Logger
}

// URI is a decoded contenthash destination.
type URI struct {
	Scheme string
	Host   string
	Path   string
}

func validateENSName(name string) error {
	if name == "" || !strings.Contains(name, ".") {
		return fmt.Errorf("%s is not a valid ENS name", name)
	}
	return nil
}

// Resolver returns the resolver bound to name on chainID.
func (api *API) Resolver(ctx context.Context, chainID uint64, name string) (*goens.Resolver, error) {
	if err := validateENSName(name); err != nil {
		return nil, err
	}

	backend, err := api.rpcClient.EthClient(chainID)
	if err != nil {
		return nil, err
	}

	return goens.NewResolver(backend, name)
}

// Text reads a text record of name.
func (api *API) Text(ctx context.Context, chainID uint64, name string, key string) (string, error) {
	resolver, err := api.Resolver(ctx, chainID, name)
	if err != nil {
		return "", err
	}
	return resolver.Text(key)
}

// AddressOf returns the address name resolves to.
func (api *API) AddressOf(ctx context.Context, chainID uint64, name string) (common.Address, error) {
	resolver, err := api.Resolver(ctx, chainID, name)
	if err != nil {
		return common.Address{}, err
	}
	return resolver.Address()
}

// OwnerOf returns the registry owner of name.
func (api *API) OwnerOf(ctx context.Context, chainID uint64, name string) (common.Address, error) {
	if err := validateENSName(name); err != nil {
		return common.Address{}, err
	}

	backend, err := api.rpcClient.EthClient(chainID)
	if err != nil {
		return common.Address{}, err
	}

	registry, err := goens.NewRegistry(backend)
	if err != nil {
		return common.Address{}, err
	}

	return registry.Owner(name)
}

// ContentHash returns the raw contenthash record of name.
func (api *API) ContentHash(ctx context.Context, chainID uint64, name string) ([]byte, error) {
	resolver, err := api.Resolver(ctx, chainID, name)
	if err != nil {
		return nil, err
	}
	return resolver.Contenthash()
}

// ResourceURL decodes the contenthash of name into a gateway URL.
func (api *API) ResourceURL(ctx context.Context, chainID uint64, name string) (*URI, error) {
	contentHash, err := api.ContentHash(ctx, chainID, name)
	if err != nil {
		return nil, err
	}
	return decodeContentHash(contentHash)
}

func decodeContentHash(contentHash []byte) (*URI, error) {
	scheme := "https"
	if len(contentHash) == 0 {
		return &URI{}, nil
	}

	data, codec, err := multicodec.RemoveCodec(contentHash)
	if err != nil {
		return nil, err
	}
	codecName, err := multicodec.Name(codec)
	if err != nil {
		return nil, err
	}

	switch codecName {
	case "ipfs-ns":
		thisCID, err := cid.Parse(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse CID")
		}
		str, err := thisCID.StringOfBase(multibase.Base32)
		if err != nil {
			return nil, errors.Wrap(err, "failed to obtain base32 representation")
		}
		return &URI{scheme, str + ".ipfs.dweb.link", ""}, nil
	case "ipns-ns":
		id, offset := binary.Uvarint(data)
		if id == 0 {
			return nil, fmt.Errorf("unknown CID")
		}

		data, _, err := multicodec.RemoveCodec(data[offset:])
		if err != nil {
			return nil, err
		}
		decodedMHash, err := multihash.Decode(data)
		if err != nil {
			return nil, err
		}

		return &URI{scheme, string(decodedMHash.Digest), ""}, nil
	case "swarm-ns":
		id, offset := binary.Uvarint(data)
		if id == 0 {
			return nil, fmt.Errorf("unknown CID")
		}
		data, _, err := multicodec.RemoveCodec(data[offset:])
		if err != nil {
			return nil, err
		}
		decodedMHash, err := multihash.Decode(data)
		if err != nil {
			return nil, err
		}
		path := "/bzz:/" + hex.EncodeToString(decodedMHash.Digest) + "/"
		return &URI{scheme, "swarm-gateways.net", path}, nil
	default:
		return nil, fmt.Errorf("unknown codec name %s", codecName)
	}
}

package agents

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/unruggable-labs/agent0-go/bigint"
	"github.com/unruggable-labs/agent0-go/contracts"
	"github.com/unruggable-labs/agent0-go/ipfs"
	"github.com/unruggable-labs/agent0-go/params"
	"github.com/unruggable-labs/agent0-go/rpc"
	"github.com/unruggable-labs/agent0-go/services/ens"
	"github.com/unruggable-labs/agent0-go/services/ens/agentrecord"
)

// ErrFeedbackScoreOutOfRange marks feedback scores above 100.
var ErrFeedbackScoreOutOfRange = errors.New("feedback score must be between 0 and 100")

// ErrFeedbackTagTooLong marks tags that do not fit a bytes32.
var ErrFeedbackTagTooLong = errors.New("feedback tag must be at most 32 bytes")

func NewAPI(rpcClient *rpc.Client, config *params.Config, ipfsClient *ipfs.Client, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	contractMaker := &contracts.ContractMaker{
		RPCClient: rpcClient,
		Config:    config,
	}
	ensAPI := ens.NewAPI(rpcClient, logger)

	return &API{
		contractMaker: contractMaker,
		ensAPI:        ensAPI,
		ipfsClient:    ipfsClient,
		logger:        logger.Named("agentsAPI"),

		registryAddress: contractMaker.IdentityRegistryAddress,
		nameResolver:    ensAPI.NameResolver,
	}
}

type API struct {
	contractMaker *contracts.ContractMaker
	ensAPI        *ens.API
	ipfsClient    *ipfs.Client
	logger        *zap.Logger

	// Indirections over the live chain dependencies so the verification
	// path can be tested without an RPC endpoint.
	registryAddress func(chainID uint64) (common.Address, error)
	nameResolver    func(chainID uint64) agentrecord.NameResolver
}

// RegisterAgent submits a registration for metadataURI and returns the
// pending transaction. The agent identifier is assigned on-chain and can
// be read from the Registered event once mined.
func (api *API) RegisterAgent(ctx context.Context, chainID uint64, txOpts *bind.TransactOpts, metadataURI string) (*types.Transaction, error) {
	registry, err := api.contractMaker.NewIdentityRegistry(chainID)
	if err != nil {
		return nil, err
	}

	txOpts.Context = ctx
	tx, err := registry.Register(txOpts, metadataURI)
	if err != nil {
		return nil, errors.Wrap(err, "register agent")
	}

	api.logger.Info("submitted agent registration",
		zap.Uint64("chainID", chainID),
		zap.String("txHash", tx.Hash().Hex()))

	return tx, nil
}

// GetAgent reads the current owner and metadata URI of an agent.
func (api *API) GetAgent(ctx context.Context, chainID uint64, tokenID *bigint.BigInt) (*Agent, error) {
	registry, err := api.contractMaker.NewIdentityRegistry(chainID)
	if err != nil {
		return nil, err
	}

	callOpts := &bind.CallOpts{Context: ctx, Pending: false}

	owner, err := registry.OwnerOf(callOpts, tokenID.Int)
	if err != nil {
		return nil, errors.Wrapf(err, "owner of agent %s", tokenID.String())
	}

	metadataURI, err := registry.TokenURI(callOpts, tokenID.Int)
	if err != nil {
		return nil, errors.Wrapf(err, "token URI of agent %s", tokenID.String())
	}

	return &Agent{
		ChainID:     chainID,
		TokenID:     tokenID,
		Owner:       owner,
		MetadataURI: metadataURI,
	}, nil
}

// GetAgentByIdentifier is GetAgent over a "chainId:tokenId" identifier.
func (api *API) GetAgentByIdentifier(ctx context.Context, identifier string) (*Agent, error) {
	chainID, tokenID, err := ParseAgentID(identifier)
	if err != nil {
		return nil, err
	}
	return api.GetAgent(ctx, chainID, &bigint.BigInt{Int: tokenID})
}

// AgentMetadata fetches and decodes the registration document behind the
// agent's token URI.
func (api *API) AgentMetadata(ctx context.Context, chainID uint64, tokenID *bigint.BigInt) (*Metadata, error) {
	if api.ipfsClient == nil {
		return nil, errors.New("no IPFS client configured")
	}

	agent, err := api.GetAgent(ctx, chainID, tokenID)
	if err != nil {
		return nil, err
	}
	if agent.MetadataURI == "" {
		return nil, errors.New("agent has no metadata URI")
	}

	raw, err := api.ipfsClient.FetchMetadata(ctx, agent.MetadataURI)
	if err != nil {
		return nil, err
	}

	metadata := &Metadata{Raw: raw}
	if err := json.Unmarshal(raw, metadata); err != nil {
		return nil, errors.Wrap(err, "decode agent metadata")
	}

	return metadata, nil
}

// UpdateAgentURI points an agent at a new metadata document. Only the
// current owner's transaction will be accepted on-chain.
func (api *API) UpdateAgentURI(ctx context.Context, chainID uint64, txOpts *bind.TransactOpts, tokenID *bigint.BigInt, metadataURI string) (*types.Transaction, error) {
	registry, err := api.contractMaker.NewIdentityRegistry(chainID)
	if err != nil {
		return nil, err
	}

	txOpts.Context = ctx
	tx, err := registry.SetTokenURI(txOpts, tokenID.Int, metadataURI)
	if err != nil {
		return nil, errors.Wrap(err, "update agent URI")
	}
	return tx, nil
}

// TransferAgent moves an agent identity to a new owner.
func (api *API) TransferAgent(ctx context.Context, chainID uint64, txOpts *bind.TransactOpts, to common.Address, tokenID *bigint.BigInt) (*types.Transaction, error) {
	registry, err := api.contractMaker.NewIdentityRegistry(chainID)
	if err != nil {
		return nil, err
	}

	txOpts.Context = ctx
	tx, err := registry.TransferFrom(txOpts, txOpts.From, to, tokenID.Int)
	if err != nil {
		return nil, errors.Wrap(err, "transfer agent")
	}
	return tx, nil
}

// TotalAgents returns how many identities the registry has minted.
func (api *API) TotalAgents(ctx context.Context, chainID uint64) (*bigint.BigInt, error) {
	registry, err := api.contractMaker.NewIdentityRegistry(chainID)
	if err != nil {
		return nil, err
	}

	total, err := registry.TotalSupply(&bind.CallOpts{Context: ctx, Pending: false})
	if err != nil {
		return nil, errors.Wrap(err, "total supply")
	}
	return &bigint.BigInt{Int: total}, nil
}

// GiveFeedback records a score for an agent. When comment is non-empty a
// feedback document is published to IPFS first and its URI goes on-chain
// with the score.
func (api *API) GiveFeedback(ctx context.Context, chainID uint64, txOpts *bind.TransactOpts, tokenID *bigint.BigInt, score uint8, tag string, comment string) (*types.Transaction, error) {
	if score > 100 {
		return nil, ErrFeedbackScoreOutOfRange
	}

	tagBytes, err := feedbackTag(tag)
	if err != nil {
		return nil, err
	}

	feedbackURI := ""
	if comment != "" {
		if api.ipfsClient == nil {
			return nil, errors.New("no IPFS client configured for feedback comments")
		}

		doc, err := json.Marshal(Feedback{
			ID:      uuid.NewString(),
			AgentID: FormatAgentID(chainID, tokenID.Int),
			Score:   score,
			Tag:     tag,
			Comment: comment,
		})
		if err != nil {
			return nil, err
		}

		if feedbackURI, err = api.ipfsClient.PublishMetadata(ctx, doc); err != nil {
			return nil, errors.Wrap(err, "publish feedback document")
		}
	}

	reputation, err := api.contractMaker.NewReputationRegistry(chainID)
	if err != nil {
		return nil, err
	}

	txOpts.Context = ctx
	tx, err := reputation.GiveFeedback(txOpts, tokenID.Int, score, tagBytes, feedbackURI)
	if err != nil {
		return nil, errors.Wrap(err, "give feedback")
	}
	return tx, nil
}

// RevokeFeedback withdraws a previously submitted feedback entry.
func (api *API) RevokeFeedback(ctx context.Context, chainID uint64, txOpts *bind.TransactOpts, tokenID *bigint.BigInt, feedbackIndex uint64) (*types.Transaction, error) {
	reputation, err := api.contractMaker.NewReputationRegistry(chainID)
	if err != nil {
		return nil, err
	}

	txOpts.Context = ctx
	tx, err := reputation.RevokeFeedback(txOpts, tokenID.Int, feedbackIndex)
	if err != nil {
		return nil, errors.Wrap(err, "revoke feedback")
	}
	return tx, nil
}

// GetFeedbackSummary reads the aggregate feedback for an agent and tag.
func (api *API) GetFeedbackSummary(ctx context.Context, chainID uint64, tokenID *bigint.BigInt, tag string) (*FeedbackSummary, error) {
	tagBytes, err := feedbackTag(tag)
	if err != nil {
		return nil, err
	}

	reputation, err := api.contractMaker.NewReputationRegistry(chainID)
	if err != nil {
		return nil, err
	}

	summary, err := reputation.GetSummary(&bind.CallOpts{Context: ctx, Pending: false}, tokenID.Int, tagBytes)
	if err != nil {
		return nil, errors.Wrap(err, "feedback summary")
	}

	return &FeedbackSummary{
		Count:        summary.Count,
		AverageScore: summary.AverageScore,
	}, nil
}

// VerifyENSBinding reports whether name carries an agent registry record
// that binds it to the given agent on chainID. Any transport or data
// problem on the way yields false; only malformed requests error.
func (api *API) VerifyENSBinding(ctx context.Context, chainID uint64, name string, tokenID *bigint.BigInt) (bool, error) {
	if name == "" || tokenID == nil || tokenID.Int == nil {
		return false, nil
	}

	chainReference := new(big.Int).SetUint64(chainID)

	record, err := agentrecord.Load(ctx, api.nameResolver(chainID), name, chainReference)
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, nil
	}

	registry, err := api.registryAddress(chainID)
	if err != nil {
		// The expected registry is part of the verification data; not
		// knowing it means the binding cannot be confirmed.
		api.logger.Debug("registry address lookup failed",
			zap.Uint64("chainID", chainID),
			zap.Error(err))
		return false, nil
	}

	verified := record.MatchesAgent(chainReference, registry, tokenID.Int)

	api.logger.Debug("verified ENS binding",
		zap.String("name", name),
		zap.Uint64("chainID", chainID),
		zap.String("agentID", tokenID.String()),
		zap.Bool("verified", verified))

	return verified, nil
}

// VerifyAgentENS is VerifyENSBinding over an agent's stored name and
// identity. Agents without a name or token identifier cannot be verified
// and yield false.
func (api *API) VerifyAgentENS(ctx context.Context, agent *Agent) (bool, error) {
	if agent == nil || agent.ENSName == "" || agent.TokenID == nil || agent.TokenID.Int == nil {
		return false, nil
	}
	return api.VerifyENSBinding(ctx, agent.ChainID, agent.ENSName, agent.TokenID)
}

// VerifyENSBindingByIdentifier is VerifyENSBinding over a "chainId:tokenId"
// identifier. An unparsable identifier yields false rather than an error,
// mirroring the stored-data posture of VerifyAgentENS.
func (api *API) VerifyENSBindingByIdentifier(ctx context.Context, identifier string, name string) (bool, error) {
	chainID, tokenID, err := ParseAgentID(identifier)
	if err != nil {
		return false, nil
	}
	return api.VerifyENSBinding(ctx, chainID, name, &bigint.BigInt{Int: tokenID})
}

// feedbackTag packs a short label into the bytes32 the contract expects.
func feedbackTag(tag string) ([32]byte, error) {
	var out [32]byte
	if len(tag) > len(out) {
		return out, ErrFeedbackTagTooLong
	}
	copy(out[:], tag)
	return out, nil
}

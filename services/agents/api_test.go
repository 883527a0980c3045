package agents

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unruggable-labs/agent0-go/bigint"
	"github.com/unruggable-labs/agent0-go/services/ens/agentrecord"
	mockagentrecord "github.com/unruggable-labs/agent0-go/services/ens/agentrecord/mocks"
)

const verifyTestName = "agent.example.eth"

var (
	verifyTestRegistry      = common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	verifyTestOtherRegistry = common.HexToAddress("0x1234567890AbcdEF1234567890aBcdef12345678")
)

func verifyAPI(registry common.Address, resolver agentrecord.NameResolver) *API {
	return &API{
		logger: zap.NewNop(),
		registryAddress: func(chainID uint64) (common.Address, error) {
			return registry, nil
		},
		nameResolver: func(chainID uint64) agentrecord.NameResolver {
			return resolver
		},
	}
}

func resolverWithRecord(t *testing.T, ctrl *gomock.Controller, key string, value string) *mockagentrecord.MockNameResolver {
	t.Helper()

	textResolver := mockagentrecord.NewMockTextResolver(ctrl)
	textResolver.EXPECT().Text(gomock.Any(), key).Return(value, nil)

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), verifyTestName).Return(textResolver, nil)
	return nameResolver
}

func TestVerifyENSBindingSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	value, err := agentrecord.EncodeRecordValue(verifyTestRegistry, big.NewInt(42))
	require.NoError(t, err)

	resolver := resolverWithRecord(t, ctrl, "agent-registry:00010000010100", value)
	api := verifyAPI(verifyTestRegistry, resolver)

	verified, err := api.VerifyENSBinding(context.Background(), 1, verifyTestName, &bigint.BigInt{Int: big.NewInt(42)})
	require.NoError(t, err)
	require.True(t, verified)
}

func TestVerifyENSBindingWrongAgentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	value, err := agentrecord.EncodeRecordValue(verifyTestRegistry, big.NewInt(42))
	require.NoError(t, err)

	resolver := resolverWithRecord(t, ctrl, "agent-registry:00010000010100", value)
	api := verifyAPI(verifyTestRegistry, resolver)

	verified, err := api.VerifyENSBinding(context.Background(), 1, verifyTestName, &bigint.BigInt{Int: big.NewInt(43)})
	require.NoError(t, err)
	require.False(t, verified)
}

func TestVerifyENSBindingWrongRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	value, err := agentrecord.EncodeRecordValue(verifyTestOtherRegistry, big.NewInt(42))
	require.NoError(t, err)

	resolver := resolverWithRecord(t, ctrl, "agent-registry:00010000010100", value)
	api := verifyAPI(verifyTestRegistry, resolver)

	verified, err := api.VerifyENSBinding(context.Background(), 1, verifyTestName, &bigint.BigInt{Int: big.NewInt(42)})
	require.NoError(t, err)
	require.False(t, verified)
}

func TestVerifyENSBindingMissingResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), verifyTestName).Return(nil, nil)

	api := &API{
		logger: zap.NewNop(),
		registryAddress: func(chainID uint64) (common.Address, error) {
			t.Fatal("registry address must not be resolved when no record exists")
			return common.Address{}, nil
		},
		nameResolver: func(chainID uint64) agentrecord.NameResolver {
			return nameResolver
		},
	}

	verified, err := api.VerifyENSBinding(context.Background(), 1, verifyTestName, &bigint.BigInt{Int: big.NewInt(42)})
	require.NoError(t, err)
	require.False(t, verified)
}

func TestVerifyENSBindingSingleByteAgentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	value, err := agentrecord.EncodeRecordValue(verifyTestRegistry, big.NewInt(0xa7))
	require.NoError(t, err)

	resolver := resolverWithRecord(t, ctrl, "agent-registry:00010000018900", value)
	api := verifyAPI(verifyTestRegistry, resolver)

	verified, err := api.VerifyENSBinding(context.Background(), 137, verifyTestName, &bigint.BigInt{Int: big.NewInt(0xa7)})
	require.NoError(t, err)
	require.True(t, verified)
}

func TestVerifyENSBindingMalformedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := resolverWithRecord(t, ctrl, "agent-registry:00010000010100", "not-a-record")
	api := verifyAPI(verifyTestRegistry, resolver)

	verified, err := api.VerifyENSBinding(context.Background(), 1, verifyTestName, &bigint.BigInt{Int: big.NewInt(42)})
	require.NoError(t, err)
	require.False(t, verified)
}

func TestVerifyENSBindingRegistryLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	value, err := agentrecord.EncodeRecordValue(verifyTestRegistry, big.NewInt(42))
	require.NoError(t, err)

	resolver := resolverWithRecord(t, ctrl, "agent-registry:00010000010100", value)
	api := &API{
		logger: zap.NewNop(),
		registryAddress: func(chainID uint64) (common.Address, error) {
			return common.Address{}, errors.New("not available for chainID")
		},
		nameResolver: func(chainID uint64) agentrecord.NameResolver {
			return resolver
		},
	}

	verified, err := api.VerifyENSBinding(context.Background(), 1, verifyTestName, &bigint.BigInt{Int: big.NewInt(42)})
	require.NoError(t, err)
	require.False(t, verified)
}

func TestVerifyENSBindingNilTokenID(t *testing.T) {
	api := unverifiableAPI(t)

	verified, err := api.VerifyENSBinding(context.Background(), 1, verifyTestName, nil)
	require.NoError(t, err)
	require.False(t, verified)
}

// unverifiableAPI fails the test if any chain dependency is consulted.
func unverifiableAPI(t *testing.T) *API {
	t.Helper()
	return &API{
		logger: zap.NewNop(),
		registryAddress: func(chainID uint64) (common.Address, error) {
			t.Fatal("registry address must not be resolved")
			return common.Address{}, nil
		},
		nameResolver: func(chainID uint64) agentrecord.NameResolver {
			t.Fatal("name resolver must not be consulted")
			return nil
		},
	}
}

func TestVerifyAgentENSSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	value, err := agentrecord.EncodeRecordValue(verifyTestRegistry, big.NewInt(42))
	require.NoError(t, err)

	resolver := resolverWithRecord(t, ctrl, "agent-registry:00010000010100", value)
	api := verifyAPI(verifyTestRegistry, resolver)

	agent := &Agent{
		ChainID: 1,
		TokenID: &bigint.BigInt{Int: big.NewInt(42)},
		ENSName: verifyTestName,
	}

	verified, err := api.VerifyAgentENS(context.Background(), agent)
	require.NoError(t, err)
	require.True(t, verified)
}

func TestVerifyAgentENSMissingData(t *testing.T) {
	api := unverifiableAPI(t)

	for name, agent := range map[string]*Agent{
		"nil agent":    nil,
		"no ENS name":  {ChainID: 1, TokenID: &bigint.BigInt{Int: big.NewInt(42)}},
		"nil token id": {ChainID: 1, ENSName: verifyTestName},
	} {
		verified, err := api.VerifyAgentENS(context.Background(), agent)
		require.NoError(t, err, name)
		require.False(t, verified, name)
	}
}

func TestVerifyENSBindingByIdentifierUnparsable(t *testing.T) {
	api := unverifiableAPI(t)

	for _, identifier := range []string{"", "42", "eth:42", "1:2:3"} {
		verified, err := api.VerifyENSBindingByIdentifier(context.Background(), identifier, verifyTestName)
		require.NoError(t, err, identifier)
		require.False(t, verified, identifier)
	}
}

func TestVerifyENSBindingByIdentifierSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	value, err := agentrecord.EncodeRecordValue(verifyTestRegistry, big.NewInt(42))
	require.NoError(t, err)

	resolver := resolverWithRecord(t, ctrl, "agent-registry:00010000010100", value)
	api := verifyAPI(verifyTestRegistry, resolver)

	verified, err := api.VerifyENSBindingByIdentifier(context.Background(), "1:42", verifyTestName)
	require.NoError(t, err)
	require.True(t, verified)
}

func TestGiveFeedbackRejectsScoreOutOfRange(t *testing.T) {
	api := &API{logger: zap.NewNop()}

	_, err := api.GiveFeedback(context.Background(), 1, nil, &bigint.BigInt{Int: big.NewInt(1)}, 101, "", "")
	require.ErrorIs(t, err, ErrFeedbackScoreOutOfRange)
}

func TestGiveFeedbackRejectsOversizedTag(t *testing.T) {
	api := &API{logger: zap.NewNop()}

	_, err := api.GiveFeedback(context.Background(), 1, nil, &bigint.BigInt{Int: big.NewInt(1)}, 80, "this-tag-is-far-too-long-to-fit-a-bytes32", "")
	require.ErrorIs(t, err, ErrFeedbackTagTooLong)
}

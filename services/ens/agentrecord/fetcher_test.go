package agentrecord_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/unruggable-labs/agent0-go/services/ens/agentrecord"
	mockagentrecord "github.com/unruggable-labs/agent0-go/services/ens/agentrecord/mocks"
)

const testName = "agent.example.eth"

func TestFetchRecordValueLowercasesKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	textResolver := mockagentrecord.NewMockTextResolver(ctrl)
	textResolver.EXPECT().Text(gomock.Any(), "agent-registry:00010000010100").Return("value", nil)

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), testName).Return(textResolver, nil)

	value, ok := agentrecord.FetchRecordValue(context.Background(), nameResolver, testName, "AGENT-REGISTRY:00010000010100")
	require.True(t, ok)
	require.Equal(t, "value", value)
}

func TestFetchRecordValueAbsentResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), testName).Return(nil, nil)

	_, ok := agentrecord.FetchRecordValue(context.Background(), nameResolver, testName, "agent-registry:00010000010100")
	require.False(t, ok)
}

func TestFetchRecordValueResolutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), testName).Return(nil, errors.New("connection refused"))

	_, ok := agentrecord.FetchRecordValue(context.Background(), nameResolver, testName, "agent-registry:00010000010100")
	require.False(t, ok)
}

func TestFetchRecordValueTextFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	textResolver := mockagentrecord.NewMockTextResolver(ctrl)
	textResolver.EXPECT().Text(gomock.Any(), gomock.Any()).Return("", errors.New("execution reverted"))

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), testName).Return(textResolver, nil)

	_, ok := agentrecord.FetchRecordValue(context.Background(), nameResolver, testName, "agent-registry:00010000010100")
	require.False(t, ok)
}

func TestFetchRecordValueUnsetRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	textResolver := mockagentrecord.NewMockTextResolver(ctrl)
	textResolver.EXPECT().Text(gomock.Any(), gomock.Any()).Return("", nil)

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), testName).Return(textResolver, nil)

	_, ok := agentrecord.FetchRecordValue(context.Background(), nameResolver, testName, "agent-registry:00010000010100")
	require.False(t, ok)
}

func resolverReturning(t *testing.T, ctrl *gomock.Controller, value string) *mockagentrecord.MockNameResolver {
	t.Helper()

	textResolver := mockagentrecord.NewMockTextResolver(ctrl)
	textResolver.EXPECT().Text(gomock.Any(), gomock.Any()).Return(value, nil).AnyTimes()

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), gomock.Any()).Return(textResolver, nil).AnyTimes()
	return nameResolver
}

func TestLoadInjectsChainReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	value, err := agentrecord.EncodeRecordValue(registry, big.NewInt(42))
	require.NoError(t, err)

	record, err := agentrecord.Load(context.Background(), resolverReturning(t, ctrl, value), testName, big.NewInt(137))
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, int64(137), record.ChainReference.Int64())
	require.Equal(t, registry, record.Address)
	require.Equal(t, int64(42), record.AgentID.Int64())
}

func TestLoadMalformedValueYieldsNoRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	record, err := agentrecord.Load(context.Background(), resolverReturning(t, ctrl, "not-a-record"), testName, big.NewInt(1))
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestLoadAbsentResolverYieldsNoRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)
	nameResolver.EXPECT().Resolver(gomock.Any(), testName).Return(nil, nil)

	record, err := agentrecord.Load(context.Background(), nameResolver, testName, big.NewInt(1))
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestLoadUsageErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No network traffic may happen for usage errors.
	nameResolver := mockagentrecord.NewMockNameResolver(ctrl)

	_, err := agentrecord.LoadInNamespace(context.Background(), nameResolver, testName, big.NewInt(1), "cosmos")
	require.ErrorIs(t, err, agentrecord.ErrUnknownNamespace)

	_, err = agentrecord.Load(context.Background(), nameResolver, testName, big.NewInt(-5))
	require.ErrorIs(t, err, agentrecord.ErrInvalidChainReference)
}

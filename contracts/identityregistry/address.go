package identityregistry

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var errorNotAvailableOnChainID = errors.New("not available for chainID")

var contractAddressByChainID = map[uint64]common.Address{
	1:        common.HexToAddress("0x8004A169FB4a3325136EB29fEC0e0d9E1dEB1CA4"), // mainnet
	8453:     common.HexToAddress("0x8004A169FB4a3325136EB29fEC0e0d9E1dEB1CA4"), // base
	59144:    common.HexToAddress("0x8004A169FB4a3325136EB29fEC0e0d9E1dEB1CA4"), // linea
	11155111: common.HexToAddress("0x8004AA63c570c570eBF15376c0dB199918BB7b8B"), // sepolia
}

func ContractAddress(chainID uint64) (common.Address, error) {
	addr, exists := contractAddressByChainID[chainID]
	if !exists {
		return *new(common.Address), errorNotAvailableOnChainID
	}
	return addr, nil
}

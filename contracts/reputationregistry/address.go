package reputationregistry

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var errorNotAvailableOnChainID = errors.New("not available for chainID")

var contractAddressByChainID = map[uint64]common.Address{
	1:        common.HexToAddress("0x8004B663056A597Dffc9DDf4f39eC44D60dC933A"), // mainnet
	8453:     common.HexToAddress("0x8004B663056A597Dffc9DDf4f39eC44D60dC933A"), // base
	59144:    common.HexToAddress("0x8004B663056A597Dffc9DDf4f39eC44D60dC933A"), // linea
	11155111: common.HexToAddress("0x8004Bd8daB57f14Ed299135749f95cB0c6b2Ec4C"), // sepolia
}

func ContractAddress(chainID uint64) (common.Address, error) {
	addr, exists := contractAddressByChainID[chainID]
	if !exists {
		return *new(common.Address), errorNotAvailableOnChainID
	}
	return addr, nil
}

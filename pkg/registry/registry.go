// Package registry exposes the fixed protocol configuration used by the
// flash-loan integration layer: token and router addresses, protocol
// versions, and the numeric safety limits applied to loan sizing and
// slippage. Every value is baked in at build time; nothing here is loaded,
// mutated, or persisted.
package registry

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Integrated protocol versions.
const (
	AaveVersion     = 3
	BalancerVersion = 2
	UniswapVersion  = 3
)

// MaxSlippageBps caps tolerated slippage for any routed trade, in basis
// points (500 = 5%).
const MaxSlippageBps uint64 = 500

// Flash-loan sizing bounds, in wei.
var (
	MinFlashLoanAmount = big.NewInt(1e18)                                      // 1 ETH
	MaxFlashLoanAmount = new(big.Int).Mul(big.NewInt(10000), big.NewInt(1e18)) // 10000 ETH
)

// Ethereum mainnet token addresses.
var (
	WethAddress = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	UsdcAddress = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	DaiAddress  = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
)

// Ethereum mainnet router addresses.
var (
	UniswapRouterAddress   = common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D") // Uniswap V2 Router02
	SushiswapRouterAddress = common.HexToAddress("0xd9e1cE17f2641f24aE83637ab66a2cca9C378B9F")
)

// StablecoinAddresses returns the stablecoins accepted by the integration
// layer.
func StablecoinAddresses() []common.Address {
	return []common.Address{UsdcAddress, DaiAddress}
}

// RouterAddresses returns the swap routers the integration layer may route
// through.
func RouterAddresses() []common.Address {
	return []common.Address{UniswapRouterAddress, SushiswapRouterAddress}
}

// IsSupportedStablecoin checks if a token is one of the accepted stablecoins.
func IsSupportedStablecoin(token common.Address) bool {
	for _, addr := range StablecoinAddresses() {
		if token == addr {
			return true
		}
	}
	return false
}

// IsKnownRouter checks if an address is one of the configured swap routers.
func IsKnownRouter(router common.Address) bool {
	for _, addr := range RouterAddresses() {
		if router == addr {
			return true
		}
	}
	return false
}

// IsValidFlashLoanAmount reports whether amount falls within the configured
// flash-loan bounds, both bounds inclusive. A nil or negative amount is not a
// valid loan size.
func IsValidFlashLoanAmount(amount *big.Int) bool {
	if amount == nil || amount.Sign() < 0 {
		return false
	}
	return amount.Cmp(MinFlashLoanAmount) >= 0 && amount.Cmp(MaxFlashLoanAmount) <= 0
}

// IsValidSlippage reports whether a slippage setting in basis points is
// within the configured cap.
func IsValidSlippage(bps uint64) bool {
	return bps <= MaxSlippageBps
}

// Validate checks the internal consistency of the constant table. It returns
// nil for the shipped constants; it exists as a guard for forks that swap in
// their own values.
func Validate() error {
	var errs []string

	if MinFlashLoanAmount.Sign() <= 0 {
		errs = append(errs, "minFlashLoanAmount must be greater than 0")
	}
	if MinFlashLoanAmount.Cmp(MaxFlashLoanAmount) >= 0 {
		errs = append(errs, "minFlashLoanAmount must be less than maxFlashLoanAmount")
	}
	if MaxSlippageBps > 10000 {
		errs = append(errs, "maxSlippageBps must not exceed 10000 (100%)")
	}
	if UsdcAddress == DaiAddress {
		errs = append(errs, "stablecoin addresses must be distinct")
	}

	named := []struct {
		name string
		addr common.Address
	}{
		{"weth", WethAddress},
		{"usdc", UsdcAddress},
		{"dai", DaiAddress},
		{"uniswapRouter", UniswapRouterAddress},
		{"sushiswapRouter", SushiswapRouterAddress},
	}
	for _, entry := range named {
		if entry.addr == (common.Address{}) {
			errs = append(errs, fmt.Sprintf("%s address must not be zero", entry.name))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

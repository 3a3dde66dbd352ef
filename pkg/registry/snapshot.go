package registry

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Snapshot is a read-only JSON view of the full constant table, for tooling
// and audit dumps. There is deliberately no corresponding load path: the
// registry is compiled in.
type Snapshot struct {
	// Protocol versions
	AaveVersion     int `json:"aaveVersion"`
	BalancerVersion int `json:"balancerVersion"`
	UniswapVersion  int `json:"uniswapVersion"`

	// Safety limits
	MaxSlippageBps     uint64       `json:"maxSlippageBps"`
	MinFlashLoanAmount *hexutil.Big `json:"minFlashLoanAmount"`
	MaxFlashLoanAmount *hexutil.Big `json:"maxFlashLoanAmount"`

	// Token addresses
	Weth common.Address `json:"weth"`
	Usdc common.Address `json:"usdc"`
	Dai  common.Address `json:"dai"`

	// Router addresses
	UniswapRouter   common.Address `json:"uniswapRouter"`
	SushiswapRouter common.Address `json:"sushiswapRouter"`

	// Derived controller identity
	MasterAddress common.Address `json:"masterAddress"`
}

// TakeSnapshot captures the constant table. Amounts are deep-copied so the
// caller cannot reach the package-level bounds through the snapshot.
func TakeSnapshot() *Snapshot {
	return &Snapshot{
		AaveVersion:        AaveVersion,
		BalancerVersion:    BalancerVersion,
		UniswapVersion:     UniswapVersion,
		MaxSlippageBps:     MaxSlippageBps,
		MinFlashLoanAmount: (*hexutil.Big)(new(big.Int).Set(MinFlashLoanAmount)),
		MaxFlashLoanAmount: (*hexutil.Big)(new(big.Int).Set(MaxFlashLoanAmount)),
		Weth:               WethAddress,
		Usdc:               UsdcAddress,
		Dai:                DaiAddress,
		UniswapRouter:      UniswapRouterAddress,
		SushiswapRouter:    SushiswapRouterAddress,
		MasterAddress:      MasterAddress(),
	}
}

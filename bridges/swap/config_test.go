package swap_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/YtzBeno/aztec-connect-bridges/bridges/swap"
)

type SwapConfigTestSuite struct {
	suite.Suite
}

func TestRunSwapConfigTestSuite(t *testing.T) {
	suite.Run(t, new(SwapConfigTestSuite))
}

func (s *SwapConfigTestSuite) TestValidConfigWithDefaults() {
	config, err := swap.NewSwapConfig(map[string]interface{}{
		"type":   "swap",
		"name":   "uniswap",
		"tokens": []string{"0x5f98805A4E8be255a32880FDeC7F6728C6568bA0"},
	})

	s.Nil(err)
	s.Equal("uniswap", config.Name)
	s.Equal(swap.DefaultRouter, config.Router)
	s.Equal(common.Address{}, config.Oracle)
	s.Equal([]common.Address{common.HexToAddress("0x5f98805A4E8be255a32880FDeC7F6728C6568bA0")}, config.Tokens)
}

func (s *SwapConfigTestSuite) TestMissingName() {
	_, err := swap.NewSwapConfig(map[string]interface{}{
		"type": "swap",
	})

	s.NotNil(err)
}

func (s *SwapConfigTestSuite) TestInvalidTokenAddress() {
	_, err := swap.NewSwapConfig(map[string]interface{}{
		"type":   "swap",
		"name":   "uniswap",
		"tokens": []string{"not-an-address"},
	})

	s.NotNil(err)
}

func (s *SwapConfigTestSuite) TestInvalidRouterAddress() {
	_, err := swap.NewSwapConfig(map[string]interface{}{
		"type":   "swap",
		"name":   "uniswap",
		"router": "0xdeadbeef",
	})

	s.NotNil(err)
}

package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplorerLink(t *testing.T) {
	client := NewClient(&Config{
		RPCURL:          "https://mainnet.example.org",
		ContractAddress: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
	})

	assert.Equal(
		t,
		"https://etherscan.io/address/0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
		client.ExplorerLink(),
	)
	assert.Equal(t, "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984", client.ContractAddress())
}

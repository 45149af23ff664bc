package ledger

import "fmt"

type Config struct {
	RPCURL          string `envconfig:"ETHEREUM_RPC_URL"`
	ContractAddress string `envconfig:"CONTRACT_ADDRESS"`
	// ContractABI is the interface descriptor of the registration contract.
	// It is carried for operators but nothing in this service parses it.
	ContractABI string `envconfig:"CONTRACT_ABI"`
}

// Client points users at the registration contract. It performs no on-chain
// reads or writes; activation happens out of band.
type Client struct {
	rpcURL          string
	contractAddress string
	abi             string
}

func NewClient(cfg *Config) *Client {
	return &Client{
		rpcURL:          cfg.RPCURL,
		contractAddress: cfg.ContractAddress,
		abi:             cfg.ContractABI,
	}
}

func (c *Client) ContractAddress() string {
	return c.contractAddress
}

func (c *Client) ExplorerLink() string {
	return fmt.Sprintf("https://etherscan.io/address/%s", c.contractAddress)
}

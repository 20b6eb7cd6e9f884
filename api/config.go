package api

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// RPC endpoints
const (
	// Avalanche C-Chain, where the eERC contracts live
	MainnetRPC = "https://api.avax.network/ext/bc/C/rpc"

	// Fuji testnet
	TestnetRPC = "https://api.avax-test.network/ext/bc/C/rpc"
)

// Chain IDs for transaction signing
const (
	MainnetChainID = 43114
	TestnetChainID = 43113
)

// Campaign factory deployments per network
const (
	MainnetFactoryAddress = "0x4f92bE91a380D9c1eD496e6b42bCe44Ff0c6B052"
	TestnetFactoryAddress = "0x17b3C0A27E1eE649B7Ccf0Da9eA0b6A4b3cD1a7e"
)

// Block explorer base URLs
const (
	MainnetExplorerURL = "https://snowtrace.io"
	TestnetExplorerURL = "https://testnet.snowtrace.io"
)

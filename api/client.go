package api

// API Client-
//
// Files:
//   config.go    - RPC endpoints, chain IDs and contract addresses
//   types.go     - Struct definitions (campaignInfo, rpcResponse, etc.)
//   base.go      - Core client functionality (client struct, newClient, rpc helpers)
//   abi.go       - Minimal campaign and factory contract ABIs
//   campaign.go  - Campaign contract reads and registration calldata
//   factory.go   - Factory contract reads and createCampaign calldata
//
// Usage:
//   client := api.NewClient()  // from base.go
//   info, err := client.GetCampaignInfo(campaignAddr)       // from campaign.go
//   addrs, err := client.GetCampaigns()                     // from factory.go
//   txHash, err := client.SendRawTransaction(signedTx)      // from base.go

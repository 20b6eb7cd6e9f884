package api

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal ABI fragments for the two contracts the client talks to.
// Anything else the deployed contracts expose is out of scope here.
const campaignABIJSON = `[
	{"type":"function","name":"registerDonation","stateMutability":"nonpayable","inputs":[{"name":"donationHash","type":"bytes32"}],"outputs":[]},
	{"type":"function","name":"registerWithdrawal","stateMutability":"nonpayable","inputs":[{"name":"withdrawalHash","type":"bytes32"}],"outputs":[]},
	{"type":"function","name":"getCampaignInfo","stateMutability":"view","inputs":[],"outputs":[{"name":"creator","type":"address"},{"name":"title","type":"string"},{"name":"description","type":"string"},{"name":"deadline","type":"uint256"},{"name":"active","type":"bool"},{"name":"donationCount","type":"uint256"},{"name":"withdrawalCount","type":"uint256"}]},
	{"type":"function","name":"getDonationHashes","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32[]"}]},
	{"type":"function","name":"getWithdrawalHashes","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32[]"}]}
]`

const factoryABIJSON = `[
	{"type":"function","name":"createCampaign","stateMutability":"nonpayable","inputs":[{"name":"title","type":"string"},{"name":"description","type":"string"},{"name":"deadline","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"getCampaigns","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address[]"}]},
	{"type":"function","name":"getCampaignsByCreator","stateMutability":"view","inputs":[{"name":"creator","type":"address"}],"outputs":[{"name":"","type":"address[]"}]},
	{"type":"function","name":"getCampaignCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

var (
	campaignABI = mustParseABI(campaignABIJSON)
	factoryABI  = mustParseABI(factoryABIJSON)
)

func mustParseABI(abiJSON string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid contract ABI: %v", err))
	}
	return parsed
}

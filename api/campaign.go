package api

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// GetCampaignInfo reads the full campaign record from a campaign contract
func (c *Client) GetCampaignInfo(campaign common.Address) (*CampaignInfo, error) {
	data, err := campaignABI.Pack("getCampaignInfo")
	if err != nil {
		return nil, fmt.Errorf("failed to pack call: %w", err)
	}

	raw, err := c.ethCall(campaign, data)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign %s: %w", campaign.Hex(), err)
	}

	values, err := campaignABI.Unpack("getCampaignInfo", raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode campaign info: %w", err)
	}
	if len(values) != 7 {
		return nil, fmt.Errorf("unexpected campaign info arity: %d", len(values))
	}

	creator, ok := values[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected creator type")
	}
	title, ok := values[1].(string)
	if !ok {
		return nil, fmt.Errorf("unexpected title type")
	}
	description, ok := values[2].(string)
	if !ok {
		return nil, fmt.Errorf("unexpected description type")
	}
	deadline, ok := values[3].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected deadline type")
	}
	active, ok := values[4].(bool)
	if !ok {
		return nil, fmt.Errorf("unexpected active flag type")
	}
	donationCount, ok := values[5].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected donation count type")
	}
	withdrawalCount, ok := values[6].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected withdrawal count type")
	}

	return &CampaignInfo{
		Address:         campaign,
		Creator:         creator,
		Title:           title,
		Description:     description,
		Deadline:        time.Unix(deadline.Int64(), 0),
		Active:          active,
		DonationCount:   donationCount.Uint64(),
		WithdrawalCount: withdrawalCount.Uint64(),
	}, nil
}

// GetDonationHashes reads the donation transfer hashes registered on a campaign
func (c *Client) GetDonationHashes(campaign common.Address) ([]common.Hash, error) {
	return c.getHashes(campaign, "getDonationHashes")
}

// GetWithdrawalHashes reads the withdrawal transfer hashes registered on a campaign
func (c *Client) GetWithdrawalHashes(campaign common.Address) ([]common.Hash, error) {
	return c.getHashes(campaign, "getWithdrawalHashes")
}

func (c *Client) getHashes(campaign common.Address, method string) ([]common.Hash, error) {
	data, err := campaignABI.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("failed to pack call: %w", err)
	}

	raw, err := c.ethCall(campaign, data)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	values, err := campaignABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", method, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected %s arity: %d", method, len(values))
	}

	rawHashes, ok := values[0].([][32]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected hash list type")
	}

	hashes := make([]common.Hash, 0, len(rawHashes))
	for _, h := range rawHashes {
		hashes = append(hashes, common.Hash(h))
	}
	return hashes, nil
}

// RegisterDonationData packs the calldata for registerDonation(bytes32)
func RegisterDonationData(donationHash common.Hash) ([]byte, error) {
	data, err := campaignABI.Pack("registerDonation", [32]byte(donationHash))
	if err != nil {
		return nil, fmt.Errorf("failed to pack registerDonation: %w", err)
	}
	return data, nil
}

// RegisterWithdrawalData packs the calldata for registerWithdrawal(bytes32)
func RegisterWithdrawalData(withdrawalHash common.Hash) ([]byte, error) {
	data, err := campaignABI.Pack("registerWithdrawal", [32]byte(withdrawalHash))
	if err != nil {
		return nil, fmt.Errorf("failed to pack registerWithdrawal: %w", err)
	}
	return data, nil
}

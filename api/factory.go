package api

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// GetCampaigns lists every campaign address the factory has deployed
func (c *Client) GetCampaigns() ([]common.Address, error) {
	return c.getAddressList("getCampaigns")
}

// GetCampaignsByCreator lists campaign addresses deployed by one creator
func (c *Client) GetCampaignsByCreator(creator common.Address) ([]common.Address, error) {
	return c.getAddressList("getCampaignsByCreator", creator)
}

// GetCampaignCount reads the total number of campaigns from the factory
func (c *Client) GetCampaignCount() (uint64, error) {
	data, err := factoryABI.Pack("getCampaignCount")
	if err != nil {
		return 0, fmt.Errorf("failed to pack call: %w", err)
	}

	raw, err := c.ethCall(c.FactoryAddress(), data)
	if err != nil {
		return 0, fmt.Errorf("failed to read campaign count: %w", err)
	}

	values, err := factoryABI.Unpack("getCampaignCount", raw)
	if err != nil {
		return 0, fmt.Errorf("failed to decode campaign count: %w", err)
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("unexpected campaign count arity: %d", len(values))
	}

	count, ok := values[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("unexpected campaign count type")
	}
	return count.Uint64(), nil
}

func (c *Client) getAddressList(method string, args ...interface{}) ([]common.Address, error) {
	data, err := factoryABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack call: %w", err)
	}

	raw, err := c.ethCall(c.FactoryAddress(), data)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	values, err := factoryABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", method, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected %s arity: %d", method, len(values))
	}

	addrs, ok := values[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected address list type")
	}
	return addrs, nil
}

// CreateCampaignData packs the calldata for createCampaign(string,string,uint256).
// The deadline is a unix timestamp.
func CreateCampaignData(title, description string, deadline *big.Int) ([]byte, error) {
	data, err := factoryABI.Pack("createCampaign", title, description, deadline)
	if err != nil {
		return nil, fmt.Errorf("failed to pack createCampaign: %w", err)
	}
	return data, nil
}

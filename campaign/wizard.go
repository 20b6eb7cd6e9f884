// Package campaign drives the donation and withdrawal flows.
//
// Both flows are the same two-step sequence: a private transfer through
// the encrypted-balance SDK, then a best-effort registration call on the
// campaign contract. The registration is never attempted unless the
// transfer succeeded, and a registration failure never undoes a
// successful transfer.
package campaign

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Kind distinguishes donations from withdrawals
type Kind int

const (
	Donation Kind = iota
	Withdrawal
)

func (k Kind) String() string {
	if k == Withdrawal {
		return "withdrawal"
	}
	return "donation"
}

// Step is the wizard's current position in the flow
type Step int

const (
	StepSelect Step = iota
	StepAmount
	StepConfirm
	StepProcessing
	StepComplete
	StepFailed
)

func (s Step) String() string {
	switch s {
	case StepSelect:
		return "select"
	case StepAmount:
		return "amount"
	case StepConfirm:
		return "confirm"
	case StepProcessing:
		return "processing"
	case StepComplete:
		return "complete"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TransferFunc performs the private transfer and returns the transfer hash
type TransferFunc func(campaign common.Address, amount decimal.Decimal) (common.Hash, error)

// RegisterFunc registers a transfer hash on the campaign contract and
// returns the registration transaction hash
type RegisterFunc func(campaign common.Address, transferHash common.Hash) (string, error)

// Result is the outcome of a completed flow. RegistrationTx is empty when
// the secondary registration call failed.
type Result struct {
	TransferHash   common.Hash
	RegistrationTx string
}

// Wizard sequences one donation or withdrawal
type Wizard struct {
	kind     Kind
	step     Step
	campaign common.Address
	amount   decimal.Decimal
	transfer TransferFunc
	register RegisterFunc
	logf     func(format string, args ...interface{})
}

// NewWizard creates a wizard for one flow
func NewWizard(kind Kind, transfer TransferFunc, register RegisterFunc) *Wizard {
	return &Wizard{
		kind:     kind,
		step:     StepSelect,
		transfer: transfer,
		register: register,
		logf: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
}

// SetLogf overrides where swallowed secondary failures are reported
func (w *Wizard) SetLogf(logf func(format string, args ...interface{})) {
	w.logf = logf
}

// Step returns the wizard's current step
func (w *Wizard) Step() Step {
	return w.step
}

// Kind returns the flow kind
func (w *Wizard) Kind() Kind {
	return w.kind
}

// Amount returns the validated amount
func (w *Wizard) Amount() decimal.Decimal {
	return w.amount
}

// SelectCampaign records the target campaign and advances to the amount step
func (w *Wizard) SelectCampaign(campaign common.Address) error {
	if w.step != StepSelect {
		return fmt.Errorf("cannot select campaign in step %s", w.step)
	}
	if campaign == (common.Address{}) {
		return fmt.Errorf("invalid campaign address")
	}
	w.campaign = campaign
	w.step = StepAmount
	return nil
}

// EnterAmount validates the requested amount against the decrypted balance.
// Validation failures keep the wizard in the amount step.
func (w *Wizard) EnterAmount(raw string, balance decimal.Decimal) error {
	if w.step != StepAmount {
		return fmt.Errorf("cannot enter amount in step %s", w.step)
	}

	amount, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	if err := CheckBalance(amount, balance); err != nil {
		return err
	}

	w.amount = amount
	w.step = StepConfirm
	return nil
}

// Confirm runs the two-step flow: private transfer, then best-effort
// registration. A transfer failure aborts; a registration failure is
// logged and swallowed since the funds have already moved.
func (w *Wizard) Confirm() (*Result, error) {
	if w.step != StepConfirm {
		return nil, fmt.Errorf("cannot confirm in step %s", w.step)
	}
	w.step = StepProcessing

	transferHash, err := w.transfer(w.campaign, w.amount)
	if err != nil {
		w.step = StepFailed
		return nil, fmt.Errorf("private transfer failed: %w", err)
	}

	result := &Result{TransferHash: transferHash}

	txHash, err := w.register(w.campaign, transferHash)
	if err != nil {
		// The transfer went through; losing the on-chain registration only
		// degrades the campaign's public counters.
		w.logf("warning: %s transfer succeeded but registration failed: %v", w.kind, err)
	} else {
		result.RegistrationTx = txHash
	}

	w.step = StepComplete
	return result, nil
}

// Reset returns a failed or completed wizard to the select step
func (w *Wizard) Reset() {
	w.step = StepSelect
	w.campaign = common.Address{}
	w.amount = decimal.Zero
}

package icx

import (
	"math/big"

	"github.com/gogo/protobuf/proto"
	loom "github.com/loomnetwork/go-loom"
	ctypes "github.com/loomnetwork/go-loom/builtin/types/coin"
	"github.com/loomnetwork/go-loom/plugin"
	contract "github.com/loomnetwork/go-loom/plugin/contractpb"
	"github.com/loomnetwork/go-loom/types"
	"github.com/loomnetwork/go-loom/util"
	"github.com/pkg/errors"
)

// ContractName is the name the native currency contract is registered under.
const ContractName = "icx"

const (
	TransferEventTopic = "icx:transfer"
	ApprovalEventTopic = "icx:approval"
)

type (
	InitRequest         = ctypes.InitRequest
	InitialAccount      = ctypes.InitialAccount
	TotalSupplyRequest  = ctypes.TotalSupplyRequest
	TotalSupplyResponse = ctypes.TotalSupplyResponse
	BalanceOfRequest    = ctypes.BalanceOfRequest
	BalanceOfResponse   = ctypes.BalanceOfResponse
	BalancesRequest     = ctypes.BalancesRequest
	BalancesResponse    = ctypes.BalancesResponse
	TransferRequest     = ctypes.TransferRequest
	TransferEvent       = ctypes.TransferEvent
	ApproveRequest      = ctypes.ApproveRequest
	ApprovalEvent       = ctypes.ApprovalEvent
	AllowanceRequest    = ctypes.AllowanceRequest
	AllowanceResponse   = ctypes.AllowanceResponse
	TransferFromRequest = ctypes.TransferFromRequest
	Allowance           = ctypes.Allowance
	Account             = ctypes.Account
	Economy             = ctypes.Economy
)

var (
	// ErrSenderBalanceTooLow is returned when the account being debited can't cover the amount.
	ErrSenderBalanceTooLow = errors.New("[ICX] sender balance is too low")
	// ErrAllowanceTooLow is returned when a spender tries to move more than it was approved for.
	ErrAllowanceTooLow = errors.New("[ICX] amount is over spender's limit")
	// ErrInvalidRequest is returned when a request is missing a required field.
	ErrInvalidRequest = errors.New("[ICX] invalid request")
)

var (
	economyKey         = []byte("economy")
	accountKeyPrefix   = []byte("account")
	allowanceKeyPrefix = []byte("allowance")
	decimals           = int64(18)
)

func accountKey(addr loom.Address) []byte {
	return util.PrefixKey(accountKeyPrefix, addr.Bytes())
}

func allowanceKey(owner, spender loom.Address) []byte {
	return util.PrefixKey(allowanceKeyPrefix, owner.Bytes(), spender.Bytes())
}

// ICX stores the native currency balances. Contracts move ICX by calling Transfer (paying out of
// their own balance) or TransferFrom (pulling an amount the payer approved beforehand).
type ICX struct {
}

func (c *ICX) Meta() (plugin.Meta, error) {
	return plugin.Meta{
		Name:    ContractName,
		Version: "1.0.0",
	}, nil
}

// Init seeds the initial accounts, balances are given in whole ICX.
func (c *ICX) Init(ctx contract.Context, req *InitRequest) error {
	div := loom.NewBigUIntFromInt(10)
	div.Exp(div, loom.NewBigUIntFromInt(decimals), nil)

	supply := loom.NewBigUIntFromInt(0)
	for _, initAcct := range req.Accounts {
		if initAcct.Owner == nil {
			return ErrInvalidRequest
		}
		owner := loom.UnmarshalAddressPB(initAcct.Owner)
		balance := loom.NewBigUInt(new(big.Int).SetUint64(initAcct.Balance))
		balance.Mul(balance, div)

		acct := &Account{
			Owner: owner.MarshalPB(),
			Balance: &types.BigUInt{
				Value: *balance,
			},
		}
		if err := ctx.Set(accountKey(owner), acct); err != nil {
			return err
		}
		supply.Add(supply, &acct.Balance.Value)
	}

	ctx.Logger().Info("ICX Init", "accounts", len(req.Accounts), "supply", supply.String())
	return ctx.Set(economyKey, &Economy{
		TotalSupply: &types.BigUInt{
			Value: *supply,
		},
	})
}

func (c *ICX) TotalSupply(
	ctx contract.StaticContext,
	req *TotalSupplyRequest,
) (*TotalSupplyResponse, error) {
	var econ Economy
	if err := ctx.Get(economyKey, &econ); err != nil {
		return nil, err
	}
	return &TotalSupplyResponse{
		TotalSupply: econ.TotalSupply,
	}, nil
}

func (c *ICX) BalanceOf(
	ctx contract.StaticContext,
	req *BalanceOfRequest,
) (*BalanceOfResponse, error) {
	if req.Owner == nil {
		return nil, ErrInvalidRequest
	}
	acct, err := loadAccount(ctx, loom.UnmarshalAddressPB(req.Owner))
	if err != nil {
		return nil, err
	}
	return &BalanceOfResponse{
		Balance: acct.Balance,
	}, nil
}

func (c *ICX) Balances(
	ctx contract.StaticContext,
	req *BalancesRequest,
) (*BalancesResponse, error) {
	accounts := []*Account{}
	for _, m := range ctx.Range(accountKeyPrefix) {
		var account Account
		if err := proto.Unmarshal(m.Value, &account); err != nil {
			return nil, errors.Wrapf(err, "unmarshal account %x", m.Key)
		}
		accounts = append(accounts, &account)
	}
	return &BalancesResponse{
		Accounts: accounts,
	}, nil
}

// Transfer moves ICX from the sender to another account.
func (c *ICX) Transfer(ctx contract.Context, req *TransferRequest) error {
	if req.To == nil || req.Amount == nil {
		return ErrInvalidRequest
	}
	from := ctx.Message().Sender
	to := loom.UnmarshalAddressPB(req.To)
	return transfer(ctx, from, to, &req.Amount.Value)
}

func (c *ICX) Approve(ctx contract.Context, req *ApproveRequest) error {
	if req.Spender == nil || req.Amount == nil {
		return ErrInvalidRequest
	}

	owner := ctx.Message().Sender
	spender := loom.UnmarshalAddressPB(req.Spender)

	allow, err := loadAllowance(ctx, owner, spender)
	if err != nil {
		return err
	}

	allow.Amount = req.Amount
	if err := saveAllowance(ctx, allow); err != nil {
		return err
	}
	return emitApprovalEvent(ctx, owner, spender, &req.Amount.Value)
}

func (c *ICX) Allowance(
	ctx contract.StaticContext,
	req *AllowanceRequest,
) (*AllowanceResponse, error) {
	if req.Spender == nil || req.Owner == nil {
		return nil, ErrInvalidRequest
	}
	owner := loom.UnmarshalAddressPB(req.Owner)
	spender := loom.UnmarshalAddressPB(req.Spender)

	allow, err := loadAllowance(ctx, owner, spender)
	if err != nil {
		return nil, err
	}

	return &AllowanceResponse{
		Amount: allow.Amount,
	}, nil
}

// TransferFrom moves ICX out of an account that approved the sender as a spender.
func (c *ICX) TransferFrom(ctx contract.Context, req *TransferFromRequest) error {
	if req.Amount == nil || req.From == nil || req.To == nil {
		return ErrInvalidRequest
	}

	from := loom.UnmarshalAddressPB(req.From)
	to := loom.UnmarshalAddressPB(req.To)
	spender := ctx.Message().Sender

	allow, err := loadAllowance(ctx, from, spender)
	if err != nil {
		return err
	}

	allowAmount := allow.Amount.Value
	amount := req.Amount.Value
	if allowAmount.Cmp(&amount) < 0 {
		return ErrAllowanceTooLow
	}

	if err := transfer(ctx, from, to, &amount); err != nil {
		return err
	}

	allowAmount.Sub(&allowAmount, &amount)
	allow.Amount = &types.BigUInt{Value: allowAmount}
	return saveAllowance(ctx, allow)
}

// transfer debits the sender before loading the recipient so that transfers to self leave the
// balance unchanged.
func transfer(ctx contract.Context, from, to loom.Address, amount *loom.BigUInt) error {
	fromAccount, err := loadAccount(ctx, from)
	if err != nil {
		return err
	}

	fromBalance := fromAccount.Balance.Value
	if fromBalance.Cmp(amount) < 0 {
		return ErrSenderBalanceTooLow
	}

	fromBalance.Sub(&fromBalance, amount)
	fromAccount.Balance.Value = fromBalance
	if err := saveAccount(ctx, fromAccount); err != nil {
		return err
	}

	toAccount, err := loadAccount(ctx, to)
	if err != nil {
		return err
	}

	toBalance := toAccount.Balance.Value
	toBalance.Add(&toBalance, amount)
	toAccount.Balance.Value = toBalance
	if err := saveAccount(ctx, toAccount); err != nil {
		return err
	}

	return emitTransferEvent(ctx, from, to, amount)
}

func loadAccount(
	ctx contract.StaticContext,
	owner loom.Address,
) (*Account, error) {
	acct := &Account{
		Owner: owner.MarshalPB(),
		Balance: &types.BigUInt{
			Value: *loom.NewBigUIntFromInt(0),
		},
	}
	err := ctx.Get(accountKey(owner), acct)
	if err != nil && err != contract.ErrNotFound {
		return nil, err
	}
	acct.Balance = normalize(acct.Balance)
	return acct, nil
}

func saveAccount(ctx contract.Context, acct *Account) error {
	owner := loom.UnmarshalAddressPB(acct.Owner)
	return ctx.Set(accountKey(owner), acct)
}

func loadAllowance(
	ctx contract.StaticContext,
	owner, spender loom.Address,
) (*Allowance, error) {
	allow := &Allowance{
		Owner:   owner.MarshalPB(),
		Spender: spender.MarshalPB(),
		Amount: &types.BigUInt{
			Value: *loom.NewBigUIntFromInt(0),
		},
	}
	err := ctx.Get(allowanceKey(owner, spender), allow)
	if err != nil && err != contract.ErrNotFound {
		return nil, err
	}
	allow.Amount = normalize(allow.Amount)
	return allow, nil
}

// normalize replaces a missing or empty stored amount with zero.
func normalize(v *types.BigUInt) *types.BigUInt {
	if v == nil || v.Value.Int == nil {
		return &types.BigUInt{Value: *loom.NewBigUIntFromInt(0)}
	}
	return v
}

func saveAllowance(ctx contract.Context, allow *Allowance) error {
	owner := loom.UnmarshalAddressPB(allow.Owner)
	spender := loom.UnmarshalAddressPB(allow.Spender)
	return ctx.Set(allowanceKey(owner, spender), allow)
}

func emitTransferEvent(ctx contract.Context, from, to loom.Address, amount *loom.BigUInt) error {
	marshalled, err := proto.Marshal(&TransferEvent{
		From:   from.MarshalPB(),
		To:     to.MarshalPB(),
		Amount: &types.BigUInt{Value: *amount},
	})
	if err != nil {
		return err
	}

	ctx.EmitTopics(marshalled, TransferEventTopic)
	return nil
}

func emitApprovalEvent(ctx contract.Context, owner, spender loom.Address, amount *loom.BigUInt) error {
	marshalled, err := proto.Marshal(&ApprovalEvent{
		From:    owner.MarshalPB(),
		Spender: spender.MarshalPB(),
		Amount:  &types.BigUInt{Value: *amount},
	})
	if err != nil {
		return err
	}

	ctx.EmitTopics(marshalled, ApprovalEventTopic)
	return nil
}

var Contract plugin.Contract = contract.MakePluginContract(&ICX{})

package helloworld

import (
	"math/big"

	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/go-loom/plugin"
	contract "github.com/loomnetwork/go-loom/plugin/contractpb"
	"github.com/loomnetwork/go-loom/types"
	"github.com/pkg/errors"
)

const (
	// ContractName is the name the contract is registered under.
	ContractName = "helloworld"
	// Greeting is what Hello always returns.
	Greeting = "Hello, world!"

	ownerRole = "owner"
)

var (
	// ErrNotAuthorized indicates that a contract method failed because the caller didn't have
	// the permission to execute that method.
	ErrNotAuthorized = errors.New("[HelloWorld] not authorized")
	// ErrNotInstalled is returned when the name is read before the contract was initialized.
	ErrNotInstalled = errors.New("[HelloWorld] name not set")
	// ErrInvalidRequest is a generic error that's returned when something is wrong with the
	// request message, e.g. missing or invalid fields.
	ErrInvalidRequest = errors.New("[HelloWorld] invalid request")

	nameKey    = []byte("name")
	updatePerm = []byte("update")
)

type HelloWorld struct {
}

func (c *HelloWorld) Meta() (plugin.Meta, error) {
	return plugin.Meta{
		Name:    ContractName,
		Version: "1.0.0",
	}, nil
}

// Init stores the initial name and grants the owner role to req.Owner, or to the deployer when no
// owner is given. Genesis deployments must name an owner since nobody holds the deployer's key.
func (c *HelloWorld) Init(ctx contract.Context, req *InitRequest) error {
	owner := ctx.Message().Sender
	if req.Owner != nil {
		owner = loom.UnmarshalAddressPB(req.Owner)
	}
	if err := saveName(ctx, req.Name); err != nil {
		return err
	}
	ctx.GrantPermissionTo(owner, updatePerm, ownerRole)
	ctx.Logger().Info("HelloWorld on_install", "name", req.Name, "owner", owner.String())
	return nil
}

// Update replaces the name, only the owner may call it.
func (c *HelloWorld) Update(ctx contract.Context, req *UpdateRequest) error {
	if ok, _ := ctx.HasPermission(updatePerm, []string{ownerRole}); !ok {
		return ErrNotAuthorized
	}
	if err := saveName(ctx, req.Name); err != nil {
		return err
	}
	ctx.Logger().Info("HelloWorld on_update", "name", req.Name)
	return nil
}

func (c *HelloWorld) Name(ctx contract.StaticContext, req *NameRequest) (*NameResponse, error) {
	state, err := loadName(ctx)
	if err != nil {
		return nil, err
	}
	return &NameResponse{
		Name: state.Name,
	}, nil
}

func (c *HelloWorld) Hello(ctx contract.StaticContext, req *HelloRequest) (*HelloResponse, error) {
	ctx.Logger().Info(Greeting)
	return &HelloResponse{
		Greeting: Greeting,
	}, nil
}

// Fallback receives plain ICX payments. A positive value is pulled from the sender, who must have
// approved this contract as a spender on the ICX contract beforehand.
func (c *HelloWorld) Fallback(ctx contract.Context, req *FallbackRequest) error {
	sender := ctx.Message().Sender
	value := bigValue(req.Value)
	ctx.Logger().Info("HelloWorld fallback is called", "sender", sender.String(), "value", value.String())

	if value.Sign() <= 0 {
		return nil
	}
	icx, err := newICXContext(ctx)
	if err != nil {
		return err
	}
	return icx.transferFrom(sender, ctx.ContractAddress(), value)
}

// TokenFallback is invoked by token contracts when tokens are sent to this contract, every
// transfer is accepted.
func (c *HelloWorld) TokenFallback(ctx contract.Context, req *TokenFallbackRequest) error {
	var from string
	if req.From != nil {
		from = loom.UnmarshalAddressPB(req.From).String()
	}
	ctx.Logger().Info(
		"HelloWorld tokenFallback is called",
		"from", from, "value", req.Value, "data", len(req.Data),
	)
	return nil
}

// TransferICX pays amount out of the contract balance, non-positive amounts are ignored.
func (c *HelloWorld) TransferICX(ctx contract.Context, req *TransferICXRequest) error {
	amount, err := ParseInteger(req.Amount)
	if err != nil {
		return errors.Wrap(ErrInvalidRequest, err.Error())
	}
	if amount.Sign() <= 0 {
		return nil
	}
	if req.To == nil {
		return ErrInvalidRequest
	}

	to := loom.UnmarshalAddressPB(req.To)
	ctx.Logger().Info("HelloWorld transferICX", "to", to.String(), "amount", amount.String())

	icx, err := newICXContext(ctx)
	if err != nil {
		return err
	}
	return icx.transfer(to, amount)
}

// API describes the entry points of the contract.
func (c *HelloWorld) API(ctx contract.StaticContext, req *APIRequest) (*APIResponse, error) {
	return &APIResponse{
		Methods: apiMethods(),
	}, nil
}

func loadName(ctx contract.StaticContext) (*NameState, error) {
	var state NameState
	if err := ctx.Get(nameKey, &state); err != nil {
		if err == contract.ErrNotFound {
			return nil, ErrNotInstalled
		}
		return nil, errors.Wrap(err, "failed to load name")
	}
	return &state, nil
}

func saveName(ctx contract.Context, name string) error {
	return ctx.Set(nameKey, &NameState{
		Name:      name,
		Installed: true,
	})
}

func bigValue(v *types.BigUInt) *big.Int {
	if v == nil || v.Value.Int == nil {
		return new(big.Int)
	}
	return v.Value.Int
}

var Contract plugin.Contract = contract.MakePluginContract(&HelloWorld{})

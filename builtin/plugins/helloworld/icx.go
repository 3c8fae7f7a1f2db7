package helloworld

import (
	"math/big"

	loom "github.com/loomnetwork/go-loom"
	contract "github.com/loomnetwork/go-loom/plugin/contractpb"
	"github.com/loomnetwork/go-loom/types"
	"github.com/loomnetwork/helloworld/builtin/plugins/icx"
	"github.com/pkg/errors"
)

// Helper for making calls into the ICX contract on behalf of this contract.
type icxContext struct {
	ctx          contract.Context
	contractAddr loom.Address
}

func newICXContext(ctx contract.Context) (*icxContext, error) {
	contractAddr, err := ctx.Resolve(icx.ContractName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve ICX contract address")
	}
	return &icxContext{
		ctx:          ctx,
		contractAddr: contractAddr,
	}, nil
}

// transfer pays amount out of this contract's balance.
func (c *icxContext) transfer(to loom.Address, amount *big.Int) error {
	req := &icx.TransferRequest{
		To:     to.MarshalPB(),
		Amount: &types.BigUInt{Value: *loom.NewBigUInt(amount)},
	}
	return contract.CallMethod(c.ctx, c.contractAddr, "Transfer", req, nil)
}

// transferFrom pulls amount that from has approved this contract to spend.
func (c *icxContext) transferFrom(from, to loom.Address, amount *big.Int) error {
	req := &icx.TransferFromRequest{
		From:   from.MarshalPB(),
		To:     to.MarshalPB(),
		Amount: &types.BigUInt{Value: *loom.NewBigUInt(amount)},
	}
	return contract.CallMethod(c.ctx, c.contractAddr, "TransferFrom", req, nil)
}

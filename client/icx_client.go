package client

import (
	"math/big"

	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/go-loom/auth"
	"github.com/loomnetwork/go-loom/client"
	"github.com/loomnetwork/go-loom/types"
	"github.com/loomnetwork/helloworld/builtin/plugins/icx"
)

// ICXClient calls the native currency contract.
type ICXClient struct {
	*contractClient
}

func NewICXClient(
	loomClient *client.DAppChainRPCClient,
	caller loom.Address,
	signer auth.Signer,
	logger *loom.Logger,
	metrics *Metrics,
) (*ICXClient, error) {
	cc, err := newContractClient(loomClient, icx.ContractName, caller, signer, logger, metrics)
	if err != nil {
		return nil, err
	}
	return &ICXClient{contractClient: cc}, nil
}

// BalanceOf returns the balance of the given account in the smallest unit.
func (c *ICXClient) BalanceOf(owner loom.Address) (*big.Int, error) {
	var resp icx.BalanceOfResponse
	if err := c.staticCall("BalanceOf", &icx.BalanceOfRequest{Owner: owner.MarshalPB()}, &resp); err != nil {
		return nil, err
	}
	if resp.Balance == nil || resp.Balance.Value.Int == nil {
		return new(big.Int), nil
	}
	return resp.Balance.Value.Int, nil
}

func (c *ICXClient) Approve(spender loom.Address, amount *big.Int) error {
	return c.call("Approve", &icx.ApproveRequest{
		Spender: spender.MarshalPB(),
		Amount:  &types.BigUInt{Value: *loom.NewBigUInt(amount)},
	}, nil)
}

func (c *ICXClient) Transfer(to loom.Address, amount *big.Int) error {
	return c.call("Transfer", &icx.TransferRequest{
		To:     to.MarshalPB(),
		Amount: &types.BigUInt{Value: *loom.NewBigUInt(amount)},
	}, nil)
}

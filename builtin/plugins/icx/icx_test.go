package icx

import (
	"math"
	"math/big"
	"testing"

	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/go-loom/plugin"
	"github.com/loomnetwork/go-loom/plugin/contractpb"
	"github.com/loomnetwork/go-loom/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = loom.MustParseAddress("chain:0xb16a379ec18d4093666f8f38b11a3071c920207d")
	addr2 = loom.MustParseAddress("chain:0xfa4c7920accfd66b86f5fd0e69682a79f762d49e")
	addr3 = loom.MustParseAddress("chain:0x5cecd1f7261e1f4c684e297be3edf03b825e01c4")
)

func sciNot(m, n int64) *loom.BigUInt {
	ret := loom.NewBigUIntFromInt(10)
	ret.Exp(ret, loom.NewBigUIntFromInt(n), nil)
	ret.Mul(ret, loom.NewBigUIntFromInt(m))
	return ret
}

func TestInit(t *testing.T) {
	pctx := plugin.CreateFakeContext(addr1, addr1)
	ctx := contractpb.WrapPluginContext(pctx)

	contract := &ICX{}
	require.NoError(t, contract.Init(ctx, &InitRequest{
		Accounts: []*InitialAccount{
			{Owner: addr1.MarshalPB(), Balance: uint64(29)},
			{Owner: addr2.MarshalPB(), Balance: uint64(31)},
		},
	}))

	supplyResp, err := contract.TotalSupply(ctx, &TotalSupplyRequest{})
	require.NoError(t, err)
	assert.Equal(t, *sciNot(60, 18), supplyResp.TotalSupply.Value)

	balResp, err := contract.BalanceOf(ctx, &BalanceOfRequest{Owner: addr2.MarshalPB()})
	require.NoError(t, err)
	assert.Equal(t, *sciNot(31, 18), balResp.Balance.Value)

	balancesResp, err := contract.Balances(ctx, &BalancesRequest{})
	require.NoError(t, err)
	assert.Len(t, balancesResp.Accounts, 2)

	err = contract.Init(ctx, &InitRequest{
		Accounts: []*InitialAccount{{Balance: uint64(1)}},
	})
	assert.Equal(t, ErrInvalidRequest, err)
}

func TestInitLargeBalance(t *testing.T) {
	pctx := plugin.CreateFakeContext(addr1, addr1)
	ctx := contractpb.WrapPluginContext(pctx)

	contract := &ICX{}
	require.NoError(t, contract.Init(ctx, &InitRequest{
		Accounts: []*InitialAccount{
			{Owner: addr1.MarshalPB(), Balance: math.MaxUint64},
		},
	}))

	expected := new(big.Int).SetUint64(math.MaxUint64)
	expected.Mul(expected, new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

	balResp, err := contract.BalanceOf(ctx, &BalanceOfRequest{Owner: addr1.MarshalPB()})
	require.NoError(t, err)
	assert.Equal(t, 1, balResp.Balance.Value.Sign())
	assert.Equal(t, 0, balResp.Balance.Value.Cmp(expected))

	supplyResp, err := contract.TotalSupply(ctx, &TotalSupplyRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, supplyResp.TotalSupply.Value.Cmp(expected))
}

func TestTransfer(t *testing.T) {
	ctx := contractpb.WrapPluginContext(
		plugin.CreateFakeContext(addr1, addr1),
	)

	amount := loom.NewBigUIntFromInt(100)
	contract := &ICX{}
	err := contract.Transfer(ctx, &TransferRequest{
		To:     addr2.MarshalPB(),
		Amount: &types.BigUInt{Value: *amount},
	})
	assert.Equal(t, ErrSenderBalanceTooLow, err)

	acct := &Account{
		Owner: addr1.MarshalPB(),
		Balance: &types.BigUInt{
			Value: *loom.NewBigUIntFromInt(100),
		},
	}
	require.NoError(t, saveAccount(ctx, acct))

	err = contract.Transfer(ctx, &TransferRequest{
		To:     addr2.MarshalPB(),
		Amount: &types.BigUInt{Value: *amount},
	})
	assert.NoError(t, err)

	resp, err := contract.BalanceOf(ctx, &BalanceOfRequest{
		Owner: addr1.MarshalPB(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, int(resp.Balance.Value.Int64()))

	resp, err = contract.BalanceOf(ctx, &BalanceOfRequest{
		Owner: addr2.MarshalPB(),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, int(resp.Balance.Value.Int64()))

	err = contract.Transfer(ctx, &TransferRequest{
		Amount: &types.BigUInt{Value: *amount},
	})
	assert.Equal(t, ErrInvalidRequest, err)
}

// Verify ICX.Transfer works correctly when the to & from addresses are the same.
func TestTransferToSelf(t *testing.T) {
	pctx := plugin.CreateFakeContext(addr1, addr1)

	contract := &ICX{}
	err := contract.Init(
		contractpb.WrapPluginContext(pctx),
		&InitRequest{
			Accounts: []*InitialAccount{
				{Owner: addr2.MarshalPB(), Balance: uint64(100)},
			},
		},
	)
	require.NoError(t, err)

	amount := sciNot(100, 18)
	err = contract.Transfer(
		contractpb.WrapPluginContext(pctx.WithSender(addr2)),
		&TransferRequest{
			To:     addr2.MarshalPB(),
			Amount: &types.BigUInt{Value: *amount},
		},
	)
	assert.NoError(t, err)

	resp, err := contract.BalanceOf(
		contractpb.WrapPluginContext(pctx),
		&BalanceOfRequest{
			Owner: addr2.MarshalPB(),
		},
	)
	require.NoError(t, err)
	// the transfer was from addr2 to addr2 so the balance of addr2 should remain unchanged
	assert.Equal(t, *amount, resp.Balance.Value)
}

func TestApprove(t *testing.T) {
	contract := &ICX{}

	ctx := contractpb.WrapPluginContext(
		plugin.CreateFakeContext(addr1, addr1),
	)

	err := contract.Approve(ctx, &ApproveRequest{
		Spender: addr3.MarshalPB(),
		Amount: &types.BigUInt{
			Value: *loom.NewBigUIntFromInt(40),
		},
	})
	require.NoError(t, err)

	allowResp, err := contract.Allowance(ctx, &AllowanceRequest{
		Owner:   addr1.MarshalPB(),
		Spender: addr3.MarshalPB(),
	})
	require.NoError(t, err)
	assert.Equal(t, 40, int(allowResp.Amount.Value.Int64()))

	_, err = contract.Allowance(ctx, &AllowanceRequest{Owner: addr1.MarshalPB()})
	assert.Equal(t, ErrInvalidRequest, err)
}

func TestTransferFrom(t *testing.T) {
	contract := &ICX{}

	pctx := plugin.CreateFakeContext(addr1, addr1)
	ctx := contractpb.WrapPluginContext(pctx)
	acct := &Account{
		Owner: addr1.MarshalPB(),
		Balance: &types.BigUInt{
			Value: *loom.NewBigUIntFromInt(100),
		},
	}
	require.NoError(t, saveAccount(ctx, acct))

	err := contract.Approve(ctx, &ApproveRequest{
		Spender: addr3.MarshalPB(),
		Amount: &types.BigUInt{
			Value: *loom.NewBigUIntFromInt(40),
		},
	})
	require.NoError(t, err)

	ctx = contractpb.WrapPluginContext(pctx.WithSender(addr3))
	err = contract.TransferFrom(ctx, &TransferFromRequest{
		From: addr1.MarshalPB(),
		To:   addr2.MarshalPB(),
		Amount: &types.BigUInt{
			Value: *loom.NewBigUIntFromInt(50),
		},
	})
	assert.Equal(t, ErrAllowanceTooLow, err)

	err = contract.TransferFrom(ctx, &TransferFromRequest{
		From: addr1.MarshalPB(),
		To:   addr2.MarshalPB(),
		Amount: &types.BigUInt{
			Value: *loom.NewBigUIntFromInt(30),
		},
	})
	require.NoError(t, err)

	allowResp, err := contract.Allowance(ctx, &AllowanceRequest{
		Owner:   addr1.MarshalPB(),
		Spender: addr3.MarshalPB(),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, int(allowResp.Amount.Value.Int64()))

	balResp, err := contract.BalanceOf(ctx, &BalanceOfRequest{
		Owner: addr1.MarshalPB(),
	})
	require.NoError(t, err)
	assert.Equal(t, 70, int(balResp.Balance.Value.Int64()))

	balResp, err = contract.BalanceOf(ctx, &BalanceOfRequest{
		Owner: addr2.MarshalPB(),
	})
	require.NoError(t, err)
	assert.Equal(t, 30, int(balResp.Balance.Value.Int64()))
}

func TestTransferFromOverBalance(t *testing.T) {
	contract := &ICX{}

	pctx := plugin.CreateFakeContext(addr1, addr1)
	ctx := contractpb.WrapPluginContext(pctx)
	require.NoError(t, saveAccount(ctx, &Account{
		Owner:   addr1.MarshalPB(),
		Balance: &types.BigUInt{Value: *loom.NewBigUIntFromInt(10)},
	}))
	require.NoError(t, contract.Approve(ctx, &ApproveRequest{
		Spender: addr3.MarshalPB(),
		Amount:  &types.BigUInt{Value: *loom.NewBigUIntFromInt(40)},
	}))

	err := contract.TransferFrom(
		contractpb.WrapPluginContext(pctx.WithSender(addr3)),
		&TransferFromRequest{
			From:   addr1.MarshalPB(),
			To:     addr2.MarshalPB(),
			Amount: &types.BigUInt{Value: *loom.NewBigUIntFromInt(20)},
		},
	)
	assert.Equal(t, ErrSenderBalanceTooLow, err)

	allowResp, err := contract.Allowance(ctx, &AllowanceRequest{
		Owner:   addr1.MarshalPB(),
		Spender: addr3.MarshalPB(),
	})
	require.NoError(t, err)
	assert.Equal(t, 40, int(allowResp.Amount.Value.Int64()))
}

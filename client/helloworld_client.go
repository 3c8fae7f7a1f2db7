package client

import (
	"math/big"

	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/go-loom/auth"
	"github.com/loomnetwork/go-loom/client"
	"github.com/loomnetwork/go-loom/types"
	"github.com/loomnetwork/helloworld/builtin/plugins/helloworld"
)

// HelloWorldClient calls the HelloWorld contract on a running DAppChain.
type HelloWorldClient struct {
	*contractClient
}

// NewHelloWorldClient resolves the HelloWorld contract registered under contractName, signer may
// be nil if only read-only methods will be called.
func NewHelloWorldClient(
	loomClient *client.DAppChainRPCClient,
	contractName string,
	caller loom.Address,
	signer auth.Signer,
	logger *loom.Logger,
	metrics *Metrics,
) (*HelloWorldClient, error) {
	cc, err := newContractClient(loomClient, contractName, caller, signer, logger, metrics)
	if err != nil {
		return nil, err
	}
	return &HelloWorldClient{contractClient: cc}, nil
}

func (c *HelloWorldClient) Name() (string, error) {
	var resp helloworld.NameResponse
	if err := c.staticCall("Name", &helloworld.NameRequest{}, &resp); err != nil {
		return "", err
	}
	return resp.Name, nil
}

func (c *HelloWorldClient) Hello() (string, error) {
	var resp helloworld.HelloResponse
	if err := c.staticCall("Hello", &helloworld.HelloRequest{}, &resp); err != nil {
		return "", err
	}
	return resp.Greeting, nil
}

// Update changes the stored name, the signer must be the contract owner.
func (c *HelloWorldClient) Update(name string) error {
	return c.call("Update", &helloworld.UpdateRequest{Name: name}, nil)
}

// Fallback sends value ICX to the contract. A positive value must have been approved for the
// contract on the ICX contract first.
func (c *HelloWorldClient) Fallback(value *big.Int) error {
	req := &helloworld.FallbackRequest{}
	if value != nil {
		req.Value = &types.BigUInt{Value: *loom.NewBigUInt(value)}
	}
	return c.call("Fallback", req, nil)
}

func (c *HelloWorldClient) TokenFallback(from loom.Address, value *big.Int, data []byte) error {
	return c.call("TokenFallback", &helloworld.TokenFallbackRequest{
		From:  from.MarshalPB(),
		Value: helloworld.FormatInteger(value),
		Data:  data,
	}, nil)
}

func (c *HelloWorldClient) TransferICX(to loom.Address, amount *big.Int) error {
	return c.call("TransferICX", &helloworld.TransferICXRequest{
		To:     to.MarshalPB(),
		Amount: helloworld.FormatInteger(amount),
	}, nil)
}

func (c *HelloWorldClient) API() ([]*helloworld.MethodInfo, error) {
	var resp helloworld.APIResponse
	if err := c.staticCall("API", &helloworld.APIRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Methods, nil
}

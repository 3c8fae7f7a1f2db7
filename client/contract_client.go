package client

import (
	"time"

	"github.com/gogo/protobuf/proto"
	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/go-loom/auth"
	"github.com/loomnetwork/go-loom/client"
	"github.com/pkg/errors"
)

// contractCaller is implemented by *client.Contract.
type contractCaller interface {
	Call(method string, args proto.Message, signer auth.Signer, result interface{}) (interface{}, error)
	StaticCall(method string, args proto.Message, caller loom.Address, result interface{}) (interface{}, error)
}

// contractClient holds what every typed contract client needs to talk to a single contract.
type contractClient struct {
	Address  loom.Address
	name     string
	contract contractCaller
	caller   loom.Address
	signer   auth.Signer
	logger   *loom.Logger
	metrics  *Metrics
}

func newContractClient(
	loomClient *client.DAppChainRPCClient,
	contractName string,
	caller loom.Address,
	signer auth.Signer,
	logger *loom.Logger,
	metrics *Metrics,
) (*contractClient, error) {
	contractAddr, err := loomClient.Resolve(contractName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s contract address", contractName)
	}
	return &contractClient{
		Address:  contractAddr,
		name:     contractName,
		contract: client.NewContract(loomClient, contractAddr.Local),
		caller:   caller,
		signer:   signer,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

func (cc *contractClient) call(method string, req proto.Message, resp interface{}) (err error) {
	defer func(begin time.Time) {
		cc.metrics.MethodCalled(begin, method, err)
	}(time.Now())

	if cc.signer == nil {
		return errors.Errorf("can't call %s.%s without a signer", cc.name, method)
	}
	if _, err = cc.contract.Call(method, req, cc.signer, resp); err != nil {
		cc.logger.Error("Contract call failed", "contract", cc.name, "method", method, "err", err)
		return errors.Wrapf(err, "failed to call %s.%s", cc.name, method)
	}
	return nil
}

func (cc *contractClient) staticCall(method string, req proto.Message, resp interface{}) (err error) {
	defer func(begin time.Time) {
		cc.metrics.MethodCalled(begin, method, err)
	}(time.Now())

	if _, err = cc.contract.StaticCall(method, req, cc.caller, resp); err != nil {
		cc.logger.Error("Contract query failed", "contract", cc.name, "method", method, "err", err)
		return errors.Wrapf(err, "failed to query %s.%s", cc.name, method)
	}
	return nil
}

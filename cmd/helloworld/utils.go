package main

import (
	"encoding/base64"
	"io/ioutil"
	"math/big"
	"strings"
	"sync"

	"github.com/gogo/protobuf/jsonpb"
	"github.com/gogo/protobuf/proto"
	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/go-loom/auth"
	loomclient "github.com/loomnetwork/go-loom/client"
	"github.com/loomnetwork/helloworld/builtin/plugins/helloworld"
	"github.com/loomnetwork/helloworld/client"
	"github.com/loomnetwork/helloworld/config"
	"github.com/loomnetwork/helloworld/log"
	"github.com/pkg/errors"
)

// cmdEnv is filled in by the root command before any sub-command runs.
type cmdEnv struct {
	cfg *config.Config
}

var (
	metricsOnce       sync.Once
	helloWorldMetrics *client.Metrics
	icxMetrics        *client.Metrics
)

func clientMetrics() (*client.Metrics, *client.Metrics) {
	metricsOnce.Do(func() {
		helloWorldMetrics = client.NewMetrics("helloworld_contract")
		icxMetrics = client.NewMetrics("icx_contract")
	})
	return helloWorldMetrics, icxMetrics
}

func getDAppChainSigner(privateKey string) (auth.Signer, error) {
	keyStr := privateKey
	if strings.HasPrefix(privateKey, "file://") {
		b64, err := ioutil.ReadFile(strings.TrimPrefix(privateKey, "file://"))
		if err != nil {
			return nil, errors.Wrap(err, "failed to load key file")
		}
		keyStr = strings.TrimSpace(string(b64))
	}

	keyBytes, err := base64.StdEncoding.DecodeString(keyStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode base64 key")
	}
	if len(keyBytes) != 64 {
		return nil, errors.Errorf("invalid ed25519 private key length %d", len(keyBytes))
	}
	return auth.NewEd25519Signer(keyBytes), nil
}

// callerIdentity returns the signer configured for the CLI and the address derived from it. Without
// a key only read-only calls are possible, they're made on behalf of the chain's root address.
func callerIdentity(cfg *config.Config) (loom.Address, auth.Signer, error) {
	if cfg.PrivateKey == "" {
		return loom.RootAddress(cfg.ChainID), nil, nil
	}
	signer, err := getDAppChainSigner(cfg.PrivateKey)
	if err != nil {
		return loom.Address{}, nil, err
	}
	return loom.Address{
		ChainID: cfg.ChainID,
		Local:   loom.LocalAddressFromPublicKey(signer.PublicKey()),
	}, signer, nil
}

func newHelloWorldClient(cfg *config.Config) (*client.HelloWorldClient, error) {
	caller, signer, err := callerIdentity(cfg)
	if err != nil {
		return nil, err
	}
	metrics, _ := clientMetrics()
	rpcClient := loomclient.NewDAppChainRPCClient(cfg.ChainID, cfg.WriteURI, cfg.ReadURI)
	return client.NewHelloWorldClient(rpcClient, cfg.ContractName, caller, signer, log.Root(), metrics)
}

func newICXClient(cfg *config.Config) (*client.ICXClient, error) {
	caller, signer, err := callerIdentity(cfg)
	if err != nil {
		return nil, err
	}
	_, metrics := clientMetrics()
	rpcClient := loomclient.NewDAppChainRPCClient(cfg.ChainID, cfg.WriteURI, cfg.ReadURI)
	return client.NewICXClient(rpcClient, caller, signer, log.Root(), metrics)
}

// parseAddress accepts either a full chain:0x... address or a bare 0x... local address, which is
// assumed to be on the given chain.
func parseAddress(s string, chainID string) (loom.Address, error) {
	if strings.Contains(s, ":") {
		addr, err := loom.ParseAddress(s)
		if err != nil {
			return loom.Address{}, errors.Wrapf(err, "invalid address %s", s)
		}
		return addr, nil
	}
	local, err := loom.LocalAddressFromHexString(s)
	if err != nil {
		return loom.Address{}, errors.Wrapf(err, "invalid address %s", s)
	}
	return loom.Address{ChainID: chainID, Local: local}, nil
}

// parseAmount parses an integer given in the smallest unit, hex (0x...) or decimal.
func parseAmount(s string) (*big.Int, error) {
	return helloworld.ParseInteger(s)
}

func formatJSON(pb proto.Message) (string, error) {
	marshaler := jsonpb.Marshaler{
		Indent:       "  ",
		EmitDefaults: true,
	}
	return marshaler.MarshalToString(pb)
}

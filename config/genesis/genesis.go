package genesis

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/gogo/protobuf/proto"
	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/go-loom/plugin"
	"github.com/loomnetwork/go-loom/plugin/contractpb"
	lvm "github.com/loomnetwork/go-loom/vm"
	"github.com/loomnetwork/helloworld/builtin/plugins/helloworld"
	"github.com/loomnetwork/helloworld/builtin/plugins/icx"
	"github.com/pkg/errors"
)

type ContractConfig struct {
	VMTypeName string          `json:"vm"`
	Format     string          `json:"format,omitempty"`
	Name       string          `json:"name,omitempty"`
	Location   string          `json:"location"`
	Init       json.RawMessage `json:"init"`
}

func (c ContractConfig) VMType() lvm.VMType {
	return lvm.VMType(lvm.VMType_value[c.VMTypeName])
}

// Genesis lists the contracts a DAppChain deploys when it starts.
type Genesis struct {
	Contracts []ContractConfig `json:"contracts"`
}

// Contract returns the entry with the given name, or nil.
func (g *Genesis) Contract(name string) *ContractConfig {
	for i := range g.Contracts {
		if g.Contracts[i].Name == name {
			return &g.Contracts[i]
		}
	}
	return nil
}

func marshalInit(pb proto.Message) (json.RawMessage, error) {
	var buf bytes.Buffer
	marshaler, err := contractpb.MarshalerFactory(plugin.EncodingType_JSON)
	if err != nil {
		return nil, err
	}
	err = marshaler.Marshal(&buf, pb)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// DefaultGenesis returns the ICX and HelloWorld contract entries. The owner is credited with
// ownerBalance whole ICX and may update the name the HelloWorld contract is installed with.
func DefaultGenesis(owner loom.Address, ownerBalance uint64, name string) (*Genesis, error) {
	icxInit, err := marshalInit(&icx.InitRequest{
		Accounts: []*icx.InitialAccount{
			{
				Owner:   owner.MarshalPB(),
				Balance: ownerBalance,
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal ICX init")
	}

	helloInit, err := marshalInit(&helloworld.InitRequest{
		Name:  name,
		Owner: owner.MarshalPB(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal HelloWorld init")
	}

	return &Genesis{
		Contracts: []ContractConfig{
			{
				VMTypeName: "plugin",
				Format:     "plugin",
				Name:       icx.ContractName,
				Location:   "icx:1.0.0",
				Init:       icxInit,
			},
			{
				VMTypeName: "plugin",
				Format:     "plugin",
				Name:       helloworld.ContractName,
				Location:   "helloworld:1.0.0",
				Init:       helloInit,
			},
		},
	}, nil
}

func ReadGenesis(path string) (*Genesis, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	dec := json.NewDecoder(file)

	var gen Genesis
	err = dec.Decode(&gen)
	if err != nil {
		return nil, err
	}

	return &gen, nil
}

func (g *Genesis) WriteToFile(path string) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

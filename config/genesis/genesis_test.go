package genesis

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/go-loom/plugin"
	"github.com/loomnetwork/go-loom/plugin/contractpb"
	lvm "github.com/loomnetwork/go-loom/vm"
	"github.com/loomnetwork/helloworld/builtin/plugins/helloworld"
	"github.com/loomnetwork/helloworld/builtin/plugins/icx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = loom.MustParseAddress("default:0xb16a379ec18d4093666f8f38b11a3071c920207d")

func TestDefaultGenesis(t *testing.T) {
	gen, err := DefaultGenesis(owner, 1000, "Alice")
	require.NoError(t, err)
	require.Len(t, gen.Contracts, 2)

	icxCfg := gen.Contract(icx.ContractName)
	require.NotNil(t, icxCfg)
	assert.Equal(t, "icx:1.0.0", icxCfg.Location)
	assert.Equal(t, lvm.VMType_PLUGIN, icxCfg.VMType())

	helloCfg := gen.Contract(helloworld.ContractName)
	require.NotNil(t, helloCfg)
	assert.Equal(t, "helloworld:1.0.0", helloCfg.Location)
	assert.Nil(t, gen.Contract("coin"))

	unmarshaler, err := contractpb.UnmarshalerFactory(plugin.EncodingType_JSON)
	require.NoError(t, err)

	var helloInit helloworld.InitRequest
	require.NoError(t, unmarshaler.Unmarshal(bytes.NewReader(helloCfg.Init), &helloInit))
	assert.Equal(t, "Alice", helloInit.Name)
	require.NotNil(t, helloInit.Owner)
	assert.Equal(t, 0, loom.UnmarshalAddressPB(helloInit.Owner).Compare(owner))

	var icxInit icx.InitRequest
	require.NoError(t, unmarshaler.Unmarshal(bytes.NewReader(icxCfg.Init), &icxInit))
	require.Len(t, icxInit.Accounts, 1)
	assert.Equal(t, uint64(1000), icxInit.Accounts[0].Balance)
	assert.Equal(t, 0, loom.UnmarshalAddressPB(icxInit.Accounts[0].Owner).Compare(owner))
}

func TestGenesisFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "genesis")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	gen, err := DefaultGenesis(owner, 1, "")
	require.NoError(t, err)

	path := filepath.Join(dir, "genesis.json")
	require.NoError(t, gen.WriteToFile(path))

	read, err := ReadGenesis(path)
	require.NoError(t, err)
	require.Len(t, read.Contracts, 2)
	assert.Equal(t, gen.Contracts[1].Location, read.Contracts[1].Location)
	assert.JSONEq(t, string(gen.Contracts[0].Init), string(read.Contracts[0].Init))

	_, err = ReadGenesis(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

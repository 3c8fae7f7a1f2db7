package main

import (
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"os"

	loom "github.com/loomnetwork/go-loom"
	"github.com/loomnetwork/helloworld/config"
	"github.com/loomnetwork/helloworld/config/genesis"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ed25519"
)

type genKeyFlags struct {
	PublicFile string
	PrivFile   string
}

func newGenKeyCommand() *cobra.Command {
	var flags genKeyFlags
	keygenCmd := &cobra.Command{
		Use:   "genkey",
		Short: "generate a public and private key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, priv, err := ed25519.GenerateKey(nil)
			if err != nil {
				return errors.Wrap(err, "error generating key pair")
			}
			encoder := base64.StdEncoding
			if flags.PublicFile != "" {
				if err := ioutil.WriteFile(flags.PublicFile, []byte(encoder.EncodeToString(pub[:])), 0664); err != nil {
					return errors.Wrap(err, "unable to write public key")
				}
			}
			if err := ioutil.WriteFile(flags.PrivFile, []byte(encoder.EncodeToString(priv[:])), 0600); err != nil {
				return errors.Wrap(err, "unable to write private key")
			}
			addr := loom.LocalAddressFromPublicKey(pub[:])
			fmt.Printf("local address: %s\n", addr.String())
			return nil
		},
	}
	keygenCmd.Flags().StringVarP(&flags.PublicFile, "public_key", "a", "", "public key file")
	keygenCmd.Flags().StringVarP(&flags.PrivFile, "private_key", "p", "priv.key", "private key file")
	return keygenCmd
}

type genesisFlags struct {
	Owner   string
	Balance uint64
	Name    string
	Output  string
}

const genesisCmdExample = `
helloworld genesis --owner 0xb16a379ec18d4093666f8f38b11a3071c920207d --balance 1000 --name Alice
`

func newGenesisCommand(env *cmdEnv) *cobra.Command {
	var flags genesisFlags
	cmd := &cobra.Command{
		Use:     "genesis",
		Short:   "Generate the genesis entries for the ICX and HelloWorld contracts",
		Example: genesisCmdExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var owner loom.Address
			var err error
			if flags.Owner != "" {
				owner, err = parseAddress(flags.Owner, env.cfg.ChainID)
			} else {
				owner, _, err = callerIdentity(env.cfg)
			}
			if err != nil {
				return err
			}

			gen, err := genesis.DefaultGenesis(owner, flags.Balance, flags.Name)
			if err != nil {
				return err
			}
			if err := gen.WriteToFile(flags.Output); err != nil {
				return errors.Wrapf(err, "failed to write %s", flags.Output)
			}
			fmt.Printf("genesis written to %s\n", flags.Output)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.Owner, "owner", "", "account credited with the initial ICX supply and owning the HelloWorld contract, defaults to the caller")
	cmd.Flags().Uint64Var(&flags.Balance, "balance", 1000, "initial ICX balance of the owner in whole ICX")
	cmd.Flags().StringVar(&flags.Name, "name", "HelloWorld", "name the HelloWorld contract is installed with")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "genesis.json", "genesis file to write")
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool
	var filename string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(filename); err == nil && !force {
				return errors.Errorf("%s already exists, use --force to overwrite it", filename)
			}
			if err := config.DefaultConfig().WriteToFile(filename); err != nil {
				return err
			}
			fmt.Printf("config written to %s\n", filename)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	cmd.Flags().StringVarP(&filename, "output", "o", "helloworld.yaml", "config file to write")
	return cmd
}

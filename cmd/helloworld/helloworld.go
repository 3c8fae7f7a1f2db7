package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/loomnetwork/helloworld/builtin/plugins/helloworld"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func addHelloWorldCommands(root *cobra.Command, env *cmdEnv) {
	root.AddCommand(
		newNameCommand(env),
		newHelloCommand(env),
		newUpdateCommand(env),
		newFallbackCommand(env),
		newTokenFallbackCommand(env),
		newTransferICXCommand(env),
		newAPICommand(env),
	)
}

func newNameCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "name",
		Short: "Show the name stored in the HelloWorld contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hw, err := newHelloWorldClient(env.cfg)
			if err != nil {
				return err
			}
			name, err := hw.Name()
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		},
	}
}

func newHelloCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Get a greeting from the HelloWorld contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hw, err := newHelloWorldClient(env.cfg)
			if err != nil {
				return err
			}
			greeting, err := hw.Hello()
			if err != nil {
				return err
			}
			fmt.Println(greeting)
			return nil
		},
	}
}

const updateCmdExample = `
helloworld update Bob -k file://./priv.key
`

func newUpdateCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "update <name>",
		Short:   "Replace the name stored in the HelloWorld contract (owner only)",
		Example: updateCmdExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hw, err := newHelloWorldClient(env.cfg)
			if err != nil {
				return err
			}
			return hw.Update(args[0])
		},
	}
}

const fallbackCmdExample = `
helloworld fallback 0xde0b6b3a7640000 -k file://./priv.key
`

func newFallbackCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "fallback [value]",
		Short:   "Send ICX to the HelloWorld contract, value is in the smallest unit",
		Example: fallbackCmdExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var amount string
			if len(args) > 0 {
				amount = args[0]
			}
			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			if value.Sign() < 0 {
				return errors.New("value can't be negative")
			}

			hw, err := newHelloWorldClient(env.cfg)
			if err != nil {
				return err
			}
			if value.Sign() > 0 {
				icxClient, err := newICXClient(env.cfg)
				if err != nil {
					return err
				}
				if err := icxClient.Approve(hw.Address, value); err != nil {
					return errors.Wrap(err, "failed to approve payment")
				}
			}
			return hw.Fallback(value)
		},
	}
}

const tokenFallbackCmdExample = `
helloworld token-fallback 0xb16a379ec18d4093666f8f38b11a3071c920207d 0x64 0x68656c6c6f -k file://./priv.key
`

func newTokenFallbackCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "token-fallback <from> <value> [data]",
		Short:   "Notify the HelloWorld contract of a token transfer, data is hex encoded",
		Example: tokenFallbackCmdExample,
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseAddress(args[0], env.cfg.ChainID)
			if err != nil {
				return err
			}
			value, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			var data []byte
			if len(args) > 2 {
				data, err = hexutil.Decode(args[2])
				if err != nil {
					return errors.Wrap(err, "invalid data")
				}
			}

			hw, err := newHelloWorldClient(env.cfg)
			if err != nil {
				return err
			}
			return hw.TokenFallback(from, value, data)
		},
	}
}

const transferICXCmdExample = `
helloworld transfer-icx 0xfa4c7920accfd66b86f5fd0e69682a79f762d49e 0x64 -k file://./priv.key
helloworld transfer-icx -k file://./priv.key -- 0xfa4c7920accfd66b86f5fd0e69682a79f762d49e -0x5
`

func newTransferICXCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "transfer-icx <to> <amount>",
		Short:   "Pay ICX out of the HelloWorld contract balance, non-positive amounts do nothing",
		Example: transferICXCmdExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := parseAddress(args[0], env.cfg.ChainID)
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			hw, err := newHelloWorldClient(env.cfg)
			if err != nil {
				return err
			}
			return hw.TransferICX(to, amount)
		},
	}
}

func newAPICommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "List the entry points of the HelloWorld contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hw, err := newHelloWorldClient(env.cfg)
			if err != nil {
				return err
			}
			methods, err := hw.API()
			if err != nil {
				return err
			}
			out, err := formatJSON(&helloworld.APIResponse{Methods: methods})
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

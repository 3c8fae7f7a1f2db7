package main

import (
	"fmt"

	loom "github.com/loomnetwork/go-loom"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func addICXCommands(icxCmd *cobra.Command, env *cmdEnv) {
	icxCmd.AddCommand(
		newICXBalanceCommand(env),
		newICXApproveCommand(env),
		newICXTransferCommand(env),
	)
}

func newICXBalanceCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Fetch the ICX balance of an account, defaults to the HelloWorld contract",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			icxClient, err := newICXClient(env.cfg)
			if err != nil {
				return err
			}

			var owner loom.Address
			if len(args) > 0 {
				if owner, err = parseAddress(args[0], env.cfg.ChainID); err != nil {
					return err
				}
			} else {
				hw, err := newHelloWorldClient(env.cfg)
				if err != nil {
					return err
				}
				owner = hw.Address
			}

			balance, err := icxClient.BalanceOf(owner)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", owner.String(), balance.String())
			return nil
		},
	}
}

func newICXApproveCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <spender> <amount>",
		Short: "Allow another account to spend ICX on your behalf",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spender, err := parseAddress(args[0], env.cfg.ChainID)
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if amount.Sign() < 0 {
				return errors.New("amount can't be negative")
			}

			icxClient, err := newICXClient(env.cfg)
			if err != nil {
				return err
			}
			return icxClient.Approve(spender, amount)
		},
	}
}

func newICXTransferCommand(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <to> <amount>",
		Short: "Transfer ICX to another account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := parseAddress(args[0], env.cfg.ChainID)
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if amount.Sign() < 0 {
				return errors.New("amount can't be negative")
			}

			icxClient, err := newICXClient(env.cfg)
			if err != nil {
				return err
			}
			return icxClient.Transfer(to, amount)
		},
	}
}

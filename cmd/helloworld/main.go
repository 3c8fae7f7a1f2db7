package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/loomnetwork/helloworld"
	"github.com/loomnetwork/helloworld/config"
	"github.com/loomnetwork/helloworld/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

type callFlags struct {
	WriteURI     string
	ReadURI      string
	ChainID      string
	PrivateKey   string
	ContractName string
	LogLevel     string
}

func addCallFlags(flagSet *flag.FlagSet, flags *callFlags) {
	flagSet.StringVarP(&flags.WriteURI, "write", "w", "", "URI for sending txs")
	flagSet.StringVarP(&flags.ReadURI, "read", "r", "", "URI for quering app state")
	flagSet.StringVarP(&flags.ChainID, "chain", "", "", "chain ID")
	flagSet.StringVarP(&flags.PrivateKey, "key", "k", "", "private key, base64 encoded or file://<path>")
	flagSet.StringVarP(&flags.ContractName, "contract", "", "", "name of the HelloWorld contract")
	flagSet.StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, error)")
}

// applyCallFlags overrides settings from the config file with the flags that were set.
func applyCallFlags(cfg *config.Config, flags *callFlags) *config.Config {
	cfg = cfg.Clone()
	if flags.WriteURI != "" {
		cfg.WriteURI = flags.WriteURI
	}
	if flags.ReadURI != "" {
		cfg.ReadURI = flags.ReadURI
	}
	if flags.ChainID != "" {
		cfg.ChainID = flags.ChainID
	}
	if flags.PrivateKey != "" {
		cfg.PrivateKey = flags.PrivateKey
	}
	if flags.ContractName != "" {
		cfg.ContractName = flags.ContractName
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	return cfg
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the helloworld CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(helloworld.FullVersion())
			return nil
		},
	}
}

func startMetricsServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Root().Error("Metrics server stopped", "addr", addr, "err", err)
		}
	}()
}

func newRootCommand() *cobra.Command {
	var flags callFlags
	env := &cmdEnv{}

	cmd := &cobra.Command{
		Use:          "helloworld",
		Short:        "Interact with the HelloWorld contract",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig()
			if err != nil {
				return err
			}
			env.cfg = applyCallFlags(cfg, &flags)
			log.Setup(env.cfg.LogLevel, env.cfg.LogDestination)
			if env.cfg.MetricsListenAddress != "" {
				startMetricsServer(env.cfg.MetricsListenAddress)
			}
			return nil
		},
	}
	addCallFlags(cmd.PersistentFlags(), &flags)

	icxCmd := &cobra.Command{
		Use:   "icx <command>",
		Short: "Methods available in the ICX contract",
	}
	addICXCommands(icxCmd, env)

	configCmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage the helloworld CLI config",
	}
	configCmd.AddCommand(newConfigInitCommand())

	addHelloWorldCommands(cmd, env)
	cmd.AddCommand(
		newVersionCommand(),
		newGenKeyCommand(),
		newGenesisCommand(env),
		icxCmd,
		configCmd,
	)
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

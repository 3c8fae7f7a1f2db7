package config

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the settings the helloworld CLI needs to reach a DAppChain node.
type Config struct {
	ChainID  string
	WriteURI string
	ReadURI  string
	// Private key used to sign txs, either base64 encoded or a file://<path> reference.
	PrivateKey string
	// Name the HelloWorld contract is registered under.
	ContractName   string
	LogLevel       string
	LogDestination string
	// Prometheus metrics are exposed on this address while a command runs, empty disables them.
	MetricsListenAddress string
}

func DefaultConfig() *Config {
	return &Config{
		ChainID:              "default",
		WriteURI:             "http://localhost:46658/rpc",
		ReadURI:              "http://localhost:46658/query",
		PrivateKey:           "",
		ContractName:         "helloworld",
		LogLevel:             "info",
		LogDestination:       "",
		MetricsListenAddress: "",
	}
}

// Clone returns a deep clone of the config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// ParseConfig looks for helloworld.yaml in the working directory and ./config, missing files are
// ignored. Settings can be overridden with HELLOWORLD_* environment variables.
func ParseConfig() (*Config, error) {
	return ParseConfigFrom("helloworld")
}

// ParseConfigFrom reads the named config file (without extension).
func ParseConfigFrom(filename string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("HELLOWORLD")

	// viper only consults the environment for keys it already knows about
	setDefaults(v, DefaultConfig())

	v.SetConfigName(filename)                      // name of config file (without extension)
	v.AddConfigPath("./")                          // search root directory
	v.AddConfigPath(filepath.Join("./", "config")) // search root directory /config

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrapf(err, "failed to read %s config", filename)
		}
	}
	conf := DefaultConfig()
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func setDefaults(v *viper.Viper, conf *Config) {
	v.SetDefault("ChainID", conf.ChainID)
	v.SetDefault("WriteURI", conf.WriteURI)
	v.SetDefault("ReadURI", conf.ReadURI)
	v.SetDefault("PrivateKey", conf.PrivateKey)
	v.SetDefault("ContractName", conf.ContractName)
	v.SetDefault("LogLevel", conf.LogLevel)
	v.SetDefault("LogDestination", conf.LogDestination)
	v.SetDefault("MetricsListenAddress", conf.MetricsListenAddress)
}

func (c *Config) WriteToFile(filename string) error {
	var buf bytes.Buffer
	cfgTemplate, err := parseCfgTemplate()
	if err != nil {
		return err
	}
	if err := cfgTemplate.Execute(&buf, c); err != nil {
		return err
	}
	return ioutil.WriteFile(filename, buf.Bytes(), 0644)
}

var cfgTemplate *template.Template

func parseCfgTemplate() (*template.Template, error) {
	if cfgTemplate != nil {
		return cfgTemplate, nil
	}

	var err error
	cfgTemplate, err = template.New("helloworldYamlTemplate").Parse(defaultHelloWorldYamlTemplate)
	if err != nil {
		return nil, err
	}
	return cfgTemplate, nil
}

const defaultHelloWorldYamlTemplate = `# helloworld CLI config file

#
# Node settings
#
ChainID: "{{ .ChainID }}"
WriteURI: "{{ .WriteURI }}"
ReadURI: "{{ .ReadURI }}"

#
# Signing key, base64 encoded or file://<path>
#
PrivateKey: "{{ .PrivateKey }}"

#
# Contract settings
#
ContractName: "{{ .ContractName }}"

#
# Logging
#
LogLevel: "{{ .LogLevel }}"
LogDestination: "{{ .LogDestination }}"

#
# Metrics
#
MetricsListenAddress: "{{ .MetricsListenAddress }}"
`

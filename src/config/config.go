package config

import (
	"strings"

	"NFTAuctionEngine/src/engine"
	"NFTAuctionEngine/src/pkg/gdb"
	"NFTAuctionEngine/src/pkg/xzap"

	"github.com/spf13/viper"
)

type Config struct {
	Api        Api           `toml:"api" mapstructure:"api" json:"api"`
	ProjectCfg *ProjectCfg   `toml:"project_cfg" mapstructure:"project_cfg" json:"project_cfg"`
	Log        xzap.Config   `toml:"log" mapstructure:"log" json:"log"`
	DB         gdb.Config    `toml:"db" mapstructure:"db" json:"db"`
	Kv         *KvConfig     `toml:"kv" mapstructure:"kv" json:"kv"`
	Auction    engine.Config `toml:"auction" mapstructure:"auction" json:"auction"`
}

type Api struct {
	Port   string `toml:"port" mapstructure:"port" json:"port"`
	MaxNum int64  `toml:"max_num" mapstructure:"max_num" json:"max_num"`
}

type ProjectCfg struct {
	Name string `toml:"name" mapstructure:"name" json:"name"`
}

type KvConfig struct {
	Redis []*Redis `toml:"redis" mapstructure:"redis" json:"redis"`
}

type Redis struct {
	MasterName string `toml:"master_name" mapstructure:"master_name" json:"master_name"`
	Host       string `toml:"host" json:"host"`
	Type       string `toml:"type" json:"type"`
	Pass       string `toml:"pass" json:"pass"`
}

// UnmarshalConfig loads the toml config file, with AUCTION_-prefixed env
// variables overriding file values.
func UnmarshalConfig(configFilePath string) (*Config, error) {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTION")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	config, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	return config, nil
}

func DefaultConfig() (*Config, error) {
	return &Config{
		Auction: engine.Config{
			MaxFeeBps:       2000,
			EarlyCloseNoBid: engine.EarlyCloseCancel,
		},
	}, nil
}

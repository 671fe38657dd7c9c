package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/public-awesome/marketplace-sub000/src/ordermanager"
	"github.com/public-awesome/marketplace-sub000/src/pkg/gdb"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xzap"
)

var validate = validator.New()

type Config struct {
	Api     Api           `toml:"api" mapstructure:"api" json:"api"`
	Monitor *Monitor      `toml:"monitor" mapstructure:"monitor" json:"monitor"`
	Log     xzap.LogConf  `toml:"log" mapstructure:"log" json:"log"`
	Kv      *KvConf       `toml:"kv" mapstructure:"kv" json:"kv"`
	DB      *gdb.Config   `toml:"db" mapstructure:"db" json:"db"`
	Market  MarketDefault `toml:"market" mapstructure:"market" json:"market"`
}

type Api struct {
	Port int `toml:"port" mapstructure:"port" json:"port"`
}

type Monitor struct {
	PprofEnable bool  `toml:"pprof_enable" mapstructure:"pprof_enable" json:"pprof_enable"`
	PprofPort   int64 `toml:"pprof_port" mapstructure:"pprof_port" json:"pprof_port"`
}

type KvConf struct {
	Redis []*Redis `toml:"redis" mapstructure:"redis" json:"redis"`
}

type Redis struct {
	Host string `toml:"host" mapstructure:"host" json:"host"`
	Type string `toml:"type" mapstructure:"type" json:"type"`
	Pass string `toml:"pass" mapstructure:"pass" json:"pass"`
}

// MarketDefault seeds the params row on first boot. After that the admin
// operations own the values and the config is ignored.
type MarketDefault struct {
	Admin         string `toml:"admin" mapstructure:"admin" json:"admin" validate:"required"`
	FeeManager    string `toml:"fee_manager" mapstructure:"fee_manager" json:"fee_manager" validate:"required"`
	EscrowAddress string `toml:"escrow_address" mapstructure:"escrow_address" json:"escrow_address" validate:"required"`

	ProtocolFeeBps   uint64 `toml:"protocol_fee_bps" mapstructure:"protocol_fee_bps" json:"protocol_fee_bps"`
	MakerRewardBps   uint64 `toml:"maker_reward_bps" mapstructure:"maker_reward_bps" json:"maker_reward_bps"`
	TakerRewardBps   uint64 `toml:"taker_reward_bps" mapstructure:"taker_reward_bps" json:"taker_reward_bps"`
	MaxRoyaltyFeeBps uint64 `toml:"max_royalty_fee_bps" mapstructure:"max_royalty_fee_bps" json:"max_royalty_fee_bps"`

	DefaultDenom    string   `toml:"default_denom" mapstructure:"default_denom" json:"default_denom" validate:"required"`
	TradingEnabled  bool     `toml:"trading_enabled" mapstructure:"trading_enabled" json:"trading_enabled"`
	Operators       []string `toml:"operators" mapstructure:"operators" json:"operators"`
	MaxOrdersPruned int      `toml:"max_orders_pruned" mapstructure:"max_orders_pruned" json:"max_orders_pruned"`
}

// Params converts the configured defaults into an engine params snapshot.
func (m MarketDefault) Params() *ordermanager.Params {
	return &ordermanager.Params{
		Admin:            m.Admin,
		FeeManager:       m.FeeManager,
		EscrowAddress:    m.EscrowAddress,
		ProtocolFeeBps:   m.ProtocolFeeBps,
		MakerRewardBps:   m.MakerRewardBps,
		TakerRewardBps:   m.TakerRewardBps,
		MaxRoyaltyFeeBps: m.MaxRoyaltyFeeBps,
		DefaultDenom:     m.DefaultDenom,
		TradingEnabled:   m.TradingEnabled,
		Operators:        m.Operators,
		MaxOrdersPruned:  m.MaxOrdersPruned,
	}
}

// UnmarshalConfig loads the toml config at the given path. Environment
// variables prefixed MKT override file values, e.g. MKT_DB_DSN.
func UnmarshalConfig(configFilePath string) (*Config, error) {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("MKT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	if err := validate.Struct(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UnmarshalCmdConfig parses the config file already registered with viper by
// the command layer.
func UnmarshalCmdConfig() (*Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	if err := validate.Struct(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

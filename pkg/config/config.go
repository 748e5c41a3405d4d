package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
		Port string `mapstructure:"port"`
	} `mapstructure:"app"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Postgres struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		DBName   string `mapstructure:"dbname"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"postgres"`

	CoinDesk struct {
		URL            string `mapstructure:"url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"coindesk"`

	RSA struct {
		// PEM-encoded keys. Both empty means an ephemeral keypair is
		// generated at startup (non-production mode).
		PrivateKey string `mapstructure:"private_key"`
		PublicKey  string `mapstructure:"public_key"`
	} `mapstructure:"rsa"`

	AES struct {
		Key string `mapstructure:"key"`
		IV  string `mapstructure:"iv"`
	} `mapstructure:"aes"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")
	v.AddConfigPath("../../config")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("coindesk.url", "https://api.coindesk.com/v1/bpi/currentprice.json")
	v.SetDefault("coindesk.timeout_seconds", 10)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validateKeys(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateKeys enforces that ciphering can work predictably for the whole
// process lifetime. RSA keys are allowed to be absent (ephemeral mode), AES
// material is not.
func (c *Config) validateKeys() error {
	switch len(c.AES.Key) {
	case 16, 24, 32:
	default:
		return errors.New("aes.key must be 16, 24 or 32 bytes")
	}
	if len(c.AES.IV) != 16 {
		return errors.New("aes.iv must be 16 bytes")
	}
	if (c.RSA.PrivateKey == "") != (c.RSA.PublicKey == "") {
		return errors.New("rsa.private_key and rsa.public_key must be set together")
	}
	return nil
}

package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type option struct {
	cfg        string
	name       string
	envPrefix  string
	configType string
	defaults   map[string]interface{}
}

type Option func(*option)

func WithConfigFile(cfg string) Option {
	return func(o *option) {
		o.cfg = cfg
	}
}

func WithConfigType(configType string) Option {
	return func(o *option) {
		o.configType = configType
	}
}

func WithName(name string) Option {
	return func(o *option) {
		o.name = name
	}
}

func WithEnvPrefix(envPrefix string) Option {
	return func(o *option) {
		o.envPrefix = envPrefix
	}
}

// WithDefaults 配置文件与环境变量都未设置时的取值
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *option) {
		o.defaults = defaults
	}
}

// LoadConfig init Config
func LoadConfig(opts ...Option) error {
	o := &option{
		name:       ".rbac",
		envPrefix:  "rbac",
		configType: "yaml",
	}

	for _, opt := range opts {
		opt(o)
	}
	for key, value := range o.defaults {
		viper.SetDefault(key, value)
	}
	if o.cfg != "" {
		// Use config file from the flag.
		viper.SetConfigFile(o.cfg)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(o.name)
		viper.SetConfigType(o.configType)
	}

	viper.SetEnvPrefix(o.envPrefix) // set environment variables prefix to avoid conflict
	// jwt.secret -> RBAC_JWT_SECRET
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	return viper.ReadInConfig()
}

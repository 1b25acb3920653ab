package configutils

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// ProvideViper provides an fx module that builds a viper instance from an
// optional config file and the environment. Flags already parsed by cobra
// are bound so they take precedence over file values.
func ProvideViper(envPrefix string, pflags *pflag.FlagSet, configFilePath string) fx.Option {
	return fx.Provide(func() (*viper.Viper, error) {
		v := viper.New()

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if pflags != nil {
			if err := v.BindPFlags(pflags); err != nil {
				return nil, err
			}
		}

		if configFilePath != "" {
			if err := ResolveAndMergeFile(v, configFilePath); err != nil {
				return nil, err
			}
		}

		return v, nil
	})
}

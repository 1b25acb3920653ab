package s3file

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/rcmdnk/s3-file/pkg/logging"
)

// ProvideFile builds a File from viper configuration and binds its
// temporary file to the fx application lifecycle: the file is released when
// the app stops, regardless of how it exits.
func ProvideFile(lc fx.Lifecycle, v *viper.Viper, logger logging.Interface) (*File, error) {
	f, err := New(context.Background(), WithViper(v), WithLogger(logger))
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return f.Close()
		},
	})

	return f, nil
}

// Module is an fx module that provides a resolved *File.
var Module = fx.Provide(ProvideFile)

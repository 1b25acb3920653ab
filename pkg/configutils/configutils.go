package configutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// ResolveAndMergeFile reads the given configuration file into the provided
// viper after checking the extension is one viper knows how to parse.
func ResolveAndMergeFile(v *viper.Viper, filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return err
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == "" {
		return errors.New("configuration file has no extension")
	}

	supported := false
	for _, e := range viper.SupportedExts {
		if ext[1:] == e {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported configuration file extension: %s", ext)
	}

	v.SetConfigType(ext[1:])
	v.SetConfigFile(filePath)

	return v.ReadInConfig()
}

// BindEnvsRecursive walks a mapstructure-tagged struct and binds each field
// path as an environment variable in viper. Viper only binds env vars for
// keys it has already seen, so without this, fields absent from the config
// file could not be supplied through the environment.
func BindEnvsRecursive(v *viper.Viper, iface interface{}, path string) error {
	val := reflect.ValueOf(iface).Elem()
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		fullPath := tag
		if path != "" {
			fullPath = path + "." + tag
		}

		field := val.Field(i)
		if field.Kind() == reflect.Ptr {
			if field.IsNil() && field.Type().Elem().Kind() == reflect.Struct {
				field.Set(reflect.New(field.Type().Elem()))
			}
			field = field.Elem()
		}

		if field.Kind() == reflect.Struct {
			if err := BindEnvsRecursive(v, field.Addr().Interface(), fullPath); err != nil {
				return err
			}
		}

		if err := v.BindEnv(fullPath); err != nil {
			return fmt.Errorf("failed to bind environment variable: %w", err)
		}
	}

	return nil
}

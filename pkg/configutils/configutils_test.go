package configutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveAndMergeFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", "path: s3://bucket/key.csv\nregion_name: us-east-1\n")

	v := viper.New()
	require.NoError(t, ResolveAndMergeFile(v, path))

	assert.Equal(t, "s3://bucket/key.csv", v.GetString("path"))
	assert.Equal(t, "us-east-1", v.GetString("region_name"))
}

func TestResolveAndMergeFileMissing(t *testing.T) {
	v := viper.New()
	err := ResolveAndMergeFile(v, "/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestResolveAndMergeFileNoExtension(t *testing.T) {
	path := writeConfig(t, "config", "path: x\n")

	v := viper.New()
	err := ResolveAndMergeFile(v, path)
	assert.ErrorContains(t, err, "no extension")
}

func TestResolveAndMergeFileUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.xyz", "path: x\n")

	v := viper.New()
	err := ResolveAndMergeFile(v, path)
	assert.ErrorContains(t, err, "unsupported configuration file extension")
}

func TestBindEnvsRecursive(t *testing.T) {
	type inner struct {
		Region string `mapstructure:"region_name"`
	}
	type outer struct {
		Path   string `mapstructure:"path"`
		Client *inner `mapstructure:"client"`
	}

	v := viper.New()
	v.SetEnvPrefix("S3FILE")
	v.AutomaticEnv()

	require.NoError(t, BindEnvsRecursive(v, &outer{}, ""))

	t.Setenv("S3FILE_PATH", "s3://b/k")
	assert.Equal(t, "s3://b/k", v.GetString("path"))
}

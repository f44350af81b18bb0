package server

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWritesDefaults(t *testing.T) {
	defer viper.Reset()
	home, err := ioutil.TempDir("", "govledger-config")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	cfg, err := LoadConfig(home)
	require.NoError(t, err)
	require.Equal(t, home, cfg.RootDir)
	require.Equal(t, DefaultConfig().REST, cfg.REST)
	require.Equal(t, DefaultConfig().LogLevel, cfg.LogLevel)

	bz, err := ioutil.ReadFile(cfg.ConfigFile())
	require.NoError(t, err)
	require.True(t, strings.Contains(string(bz), "inv-check-period"))
}

func TestLoadConfigReadsFile(t *testing.T) {
	defer viper.Reset()
	home, err := ioutil.TempDir("", "govledger-config")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	custom := DefaultConfig().SetRoot(home)
	custom.InvCheckPeriod = 5
	custom.REST.Listen = "0.0.0.0:9000"
	custom.REST.Metrics = false
	require.NoError(t, WriteConfigFile(custom.ConfigFile(), custom))

	cfg, err := LoadConfig(home)
	require.NoError(t, err)
	require.Equal(t, uint(5), cfg.InvCheckPeriod)
	require.Equal(t, "0.0.0.0:9000", cfg.REST.Listen)
	require.False(t, cfg.REST.Metrics)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
)

func TestLoadSampleConfig(t *testing.T) {
	var c Config
	require.NoError(t, conf.Load("../../etc/solana-api.yaml", &c))

	assert.Equal(t, "solana-api", c.Name)
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, "console", c.LogConf.Format)

	opt := c.LogConf.ToLogOption()
	assert.Equal(t, c.LogConf.Level, opt.Level)
	assert.Equal(t, c.LogConf.LogDir, opt.LogDir)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	require.NoError(t, conf.LoadFromYamlBytes([]byte("Name: t\nHost: 127.0.0.1\nPort: 9000\n"), &c))

	assert.Equal(t, "console", c.LogConf.Format)
	assert.Equal(t, "info", c.LogConf.Level)
	assert.Empty(t, c.LogConf.LogDir)
	assert.False(t, c.LogConf.Compress)
}

package config

import (
	"os"
	"pokerhands/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	config = Config{}
}

func TestInstance(t *testing.T) {
	reset()
	defer reset()

	clear1 := util.SetEnv("PH_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("PH_MAX_HANDS", "30")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal(30, cfg.MaxHands)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal([]string{"https://poker.example.com"}, cfg.CORS.AllowedOrigins)

	// defaults survive a partial file
	a.Equal(5, cfg.ReadTimeout)
	a.Equal(10, cfg.WriteTimeout)

	// ensure that it's only loaded once
	_ = os.Setenv("PH_MAX_HANDS", "40")
	// ensure we aren't using a pointer
	cfg.Addr = "bad"
	cfg = Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal(30, cfg.MaxHands)
}

func TestDefaults(t *testing.T) {
	reset()
	defer reset()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, 100, cfg.MaxHands)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "5s", cfg.ReadTimeoutDuration().String())
	assert.Equal(t, "10s", cfg.WriteTimeoutDuration().String())
}

func TestLoad_Errors(t *testing.T) {
	reset()
	defer reset()

	unset := util.SetEnv("PH_CONFIG_FILE", "testdata/missing.yaml")
	assert.Error(t, Load())
	unset()

	unset = util.SetEnv("PH_CONFIG_FILE", "testdata/bad.yaml")
	assert.Error(t, Load())
	unset()

	unset = util.SetEnv("PH_MAX_HANDS", "lots")
	assert.Error(t, Load())
	unset()

	assert.Panics(t, func() {
		unset := util.SetEnv("PH_CONFIG_FILE", "testdata/missing.yaml")
		defer unset()
		_ = Instance()
	})
}

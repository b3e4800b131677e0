package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TAX_RATE", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("QR_BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0725", cfg.TaxRate.String())
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, DefaultQRBaseURL, cfg.QRBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Env)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TAX_RATE", "0.08")
	t.Setenv("HTTP_ADDR", ":9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.08", cfg.TaxRate.String())
	assert.Equal(t, ":9000", cfg.HTTPAddr)
}

func TestParseTaxRate(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"0", false},
		{"0.0725", false},
		{"0.08", false},
		{"-0.01", true},
		{"eight percent", true},
	}
	for _, testCase := range tests {
		_, err := ParseTaxRate(testCase.raw)
		if testCase.wantErr {
			assert.Error(t, err, testCase.raw)
		} else {
			assert.NoError(t, err, testCase.raw)
		}
	}
}

func TestLoad_InvalidTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", "development")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud", "production")
	assert.Error(t, err)
}

package docdata_soap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigEndpoints(t *testing.T) {
	live := Config{MerchantName: "shop", MerchantPassword: "pw"}
	require.Equal(t, "https://secure.docdatapayments.com/ps/services/paymentservice/1_2", live.ServiceURL())
	require.Equal(t, "https://secure.docdatapayments.com/ps/services/paymentservice/1_2?wsdl", live.WSDLURL())
	require.Equal(t, "https://secure.docdatapayments.com/ps/menu", live.MenuURL())

	test := Config{Test: true}
	require.Equal(t, "https://test.docdatapayments.com/ps/services/paymentservice/1_2", test.ServiceURL())

	override := Config{Test: true, BaseURL: "http://127.0.0.1:8080/"}
	require.Equal(t, "http://127.0.0.1:8080/ps/services/paymentservice/1_2", override.ServiceURL())
}

func TestConfigTimeout(t *testing.T) {
	require.Equal(t, 30*time.Second, Config{}.EffectiveTimeout())
	require.Equal(t, 5*time.Second, Config{Timeout: 5 * time.Second}.EffectiveTimeout())

	err := Config{MerchantName: "shop", MerchantPassword: "pw", Timeout: -time.Second}.Validate()
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "Timeout", ce.Field)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DOCDATA_MERCHANT_NAME", "shop")
	t.Setenv("DOCDATA_MERCHANT_PASSWORD", "pw")
	t.Setenv("DOCDATA_TEST", "true")
	t.Setenv("DOCDATA_TIMEOUT", "12")
	t.Setenv("DOCDATA_USER_AGENT", "webshop/2.0")
	t.Setenv("DOCDATA_BASE_URL", "")
	t.Setenv("DOCDATA_P12_PATH", "")
	t.Setenv("DOCDATA_P12_PASSWORD", "")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	require.Equal(t, Config{
		MerchantName:     "shop",
		MerchantPassword: "pw",
		Test:             true,
		Timeout:          12 * time.Second,
		UserAgent:        "webshop/2.0",
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv_Malformed(t *testing.T) {
	t.Setenv("DOCDATA_TEST", "maybe")
	t.Setenv("DOCDATA_TIMEOUT", "")

	_, err := LoadConfigFromEnv()
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "DOCDATA_TEST", ce.Field)

	t.Setenv("DOCDATA_TEST", "")
	t.Setenv("DOCDATA_TIMEOUT", "thirty")
	_, err = LoadConfigFromEnv()
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "DOCDATA_TIMEOUT", ce.Field)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("DOCDATA_MERCHANT_NAME=dotenv-shop\nDOCDATA_MERCHANT_PASSWORD=dotenv-pw\n"), 0o600))

	// existing variables win over the file
	t.Setenv("DOCDATA_MERCHANT_NAME", "env-shop")
	t.Setenv("DOCDATA_MERCHANT_PASSWORD", "")
	os.Unsetenv("DOCDATA_MERCHANT_PASSWORD")
	t.Setenv("DOCDATA_TEST", "")
	t.Setenv("DOCDATA_TIMEOUT", "")

	cfg, err := LoadConfigFromDotEnv(file)
	require.NoError(t, err)
	require.Equal(t, "env-shop", cfg.MerchantName)
	require.Equal(t, "dotenv-pw", cfg.MerchantPassword)

	_, err = LoadConfigFromDotEnv(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
}

package docdata_soap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// APIVersion is the Docdata Order API version this package speaks.
	APIVersion = "1.2"

	// DefaultTimeout applies when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	defaultHost = "docdatapayments.com"
)

// Config holds the credentials and settings needed to interact with
// the Docdata Payments Order API.
type Config struct {
	// MerchantName is the Docdata merchant account name.
	MerchantName string

	// MerchantPassword is the password of the merchant account.
	MerchantPassword string

	// Test selects the test environment (test.docdatapayments.com)
	// instead of production (secure.docdatapayments.com).
	Test bool

	// Timeout bounds every remote call. Zero means DefaultTimeout.
	Timeout time.Duration

	// UserAgent identifies your application, e.g. "webshop/1.4".
	UserAgent string

	// BaseURL optionally overrides the scheme and host, e.g. "http://127.0.0.1:8080".
	// When empty, the host is derived from Test.
	BaseURL string

	// P12Path optionally points to a PKCS#12 client certificate used for mutual TLS.
	P12Path string

	// P12Password is the password that protects the P12 file.
	P12Password string
}

// Validate checks that the required configuration fields are present.
func (c Config) Validate() error {
	if c.MerchantName == "" {
		return &ConfigError{Field: "MerchantName", Reason: "is required"}
	}
	if c.MerchantPassword == "" {
		return &ConfigError{Field: "MerchantPassword", Reason: "is required"}
	}
	if c.Timeout < 0 {
		return &ConfigError{Field: "Timeout", Reason: "must not be negative"}
	}
	return nil
}

// EffectiveTimeout returns Timeout or DefaultTimeout when unset.
func (c Config) EffectiveTimeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Test {
		return "https://test." + defaultHost
	}
	return "https://secure." + defaultHost
}

// ServiceURL returns the SOAP endpoint of the payment service.
func (c Config) ServiceURL() string {
	return c.baseURL() + "/ps/services/paymentservice/" + strings.ReplaceAll(APIVersion, ".", "_")
}

// WSDLURL returns the location of the service description.
func (c Config) WSDLURL() string {
	return c.ServiceURL() + "?wsdl"
}

// MenuURL returns the hosted payment menu address.
func (c Config) MenuURL() string {
	return c.baseURL() + "/ps/menu"
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	DOCDATA_MERCHANT_NAME      – merchant account name (required)
//	DOCDATA_MERCHANT_PASSWORD  – merchant password (required)
//	DOCDATA_TEST               – "true" selects the test environment
//	DOCDATA_TIMEOUT            – timeout in seconds (default 30)
//	DOCDATA_USER_AGENT         – identification string sent as User-Agent
//	DOCDATA_BASE_URL           – optional endpoint override
//	DOCDATA_P12_PATH           – optional client certificate
//	DOCDATA_P12_PASSWORD       – client certificate password
//
// Malformed values are reported as *ConfigError.
func LoadConfigFromEnv() (Config, error) {
	return configFromEnv()
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. If the file does not exist it silently falls
// back to the current process environment.
func LoadConfigFromDotEnv(filenames ...string) (Config, error) {
	// godotenv.Load does NOT override existing env vars.
	_ = godotenv.Load(filenames...)
	return configFromEnv()
}

func configFromEnv() (Config, error) {
	cfg := Config{
		MerchantName:     os.Getenv("DOCDATA_MERCHANT_NAME"),
		MerchantPassword: os.Getenv("DOCDATA_MERCHANT_PASSWORD"),
		UserAgent:        os.Getenv("DOCDATA_USER_AGENT"),
		BaseURL:          os.Getenv("DOCDATA_BASE_URL"),
		P12Path:          os.Getenv("DOCDATA_P12_PATH"),
		P12Password:      os.Getenv("DOCDATA_P12_PASSWORD"),
	}

	if v := strings.TrimSpace(os.Getenv("DOCDATA_TEST")); v != "" {
		test, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, &ConfigError{Field: "DOCDATA_TEST", Reason: fmt.Sprintf("must be a boolean, got %q", v)}
		}
		cfg.Test = test
	}

	if v := strings.TrimSpace(os.Getenv("DOCDATA_TIMEOUT")); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 0 {
			return Config{}, &ConfigError{Field: "DOCDATA_TIMEOUT", Reason: fmt.Sprintf("must be a non-negative number of seconds, got %q", v)}
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

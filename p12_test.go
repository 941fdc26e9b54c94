package docdata_soap

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

var certNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func writeTestP12(t *testing.T, password string, usage x509.ExtKeyUsage) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "shop"},
		NotBefore:    certNow.Add(-24 * time.Hour),
		NotAfter:     certNow.Add(365 * 24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{usage},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	data, err := pkcs12.Modern.Encode(key, cert, nil, password)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "client.p12")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadP12Certificate(t *testing.T) {
	path := writeTestP12(t, "secret", x509.ExtKeyUsageClientAuth)

	cert, err := loadP12Certificate(path, "secret")
	require.NoError(t, err)
	require.Len(t, cert.Certificate, 1)
	require.Equal(t, "shop", cert.Leaf.Subject.CommonName)
	require.NotNil(t, cert.PrivateKey)

	_, err = loadP12Certificate(path, "wrong")
	require.ErrorContains(t, err, "decode P12 certificate")

	_, err = loadP12Certificate(filepath.Join(t.TempDir(), "missing.p12"), "secret")
	require.ErrorContains(t, err, "read P12 file")
}

func TestClientTLSConfig(t *testing.T) {
	cfg := Config{P12Path: writeTestP12(t, "secret", x509.ExtKeyUsageClientAuth), P12Password: "secret"}

	tlsConfig, err := clientTLSConfig(cfg, clockwork.NewFakeClockAt(certNow))
	require.NoError(t, err)
	require.Len(t, tlsConfig.Certificates, 1)
	require.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion)

	none, err := clientTLSConfig(Config{}, clockwork.NewFakeClockAt(certNow))
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestClientTLSConfig_Rejects(t *testing.T) {
	valid := Config{P12Path: writeTestP12(t, "secret", x509.ExtKeyUsageClientAuth), P12Password: "secret"}

	_, err := clientTLSConfig(valid, clockwork.NewFakeClockAt(certNow.AddDate(2, 0, 0)))
	require.ErrorContains(t, err, "expired on")

	_, err = clientTLSConfig(valid, clockwork.NewFakeClockAt(certNow.AddDate(0, 0, -2)))
	require.ErrorContains(t, err, "is not valid before")

	serverOnly := Config{P12Path: writeTestP12(t, "secret", x509.ExtKeyUsageServerAuth), P12Password: "secret"}
	_, err = clientTLSConfig(serverOnly, clockwork.NewFakeClockAt(certNow))
	require.ErrorContains(t, err, "not usable for client authentication")
}

func TestNewSOAPTransport_WithCertificate(t *testing.T) {
	tr, err := newSOAPTransport(Config{
		MerchantName:     "shop",
		MerchantPassword: "pw",
		P12Path:          writeTestP12(t, "secret", x509.ExtKeyUsageClientAuth),
		P12Password:      "secret",
	}, clockwork.NewFakeClockAt(certNow))
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, tr.httpClient.Timeout)

	httpTransport, ok := tr.httpClient.Transport.(*http.Transport)
	require.True(t, ok)
	require.Len(t, httpTransport.TLSClientConfig.Certificates, 1)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, "certs/client.p12"), expandHome("~/certs/client.p12"))
	require.Equal(t, "/etc/client.p12", expandHome("/etc/client.p12"))
}

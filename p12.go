package docdata_soap

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"
	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// clientTLSConfig returns the TLS settings for mutual TLS with the payment
// service, or nil when no client certificate is configured.
func clientTLSConfig(cfg Config, clock clockwork.Clock) (*tls.Config, error) {
	if cfg.P12Path == "" {
		return nil, nil
	}
	cert, err := loadP12Certificate(cfg.P12Path, cfg.P12Password)
	if err != nil {
		return nil, err
	}
	if err := checkClientCertificate(cert.Leaf, clock); err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// loadP12Certificate decodes a PKCS#12 bundle into a TLS certificate.
// The leaf comes first in the chain, followed by any CA certificates.
func loadP12Certificate(p12Path, password string) (tls.Certificate, error) {
	path := expandHome(p12Path)
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("read P12 file %s: %w", path, err)
	}

	key, leaf, cas, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decode P12 certificate: %w", err)
	}

	cert := tls.Certificate{PrivateKey: key, Leaf: leaf}
	cert.Certificate = append(cert.Certificate, leaf.Raw)
	for _, ca := range cas {
		cert.Certificate = append(cert.Certificate, ca.Raw)
	}
	return cert, nil
}

// checkClientCertificate rejects certificates outside their validity window
// and certificates restricted to usages other than client authentication.
func checkClientCertificate(leaf *x509.Certificate, clock clockwork.Clock) error {
	now := clock.Now()
	if now.Before(leaf.NotBefore) {
		return fmt.Errorf("client certificate %q is not valid before %s", leaf.Subject.CommonName, leaf.NotBefore.UTC().Format("2006-01-02"))
	}
	if now.After(leaf.NotAfter) {
		return fmt.Errorf("client certificate %q expired on %s", leaf.Subject.CommonName, leaf.NotAfter.UTC().Format("2006-01-02"))
	}
	if len(leaf.ExtKeyUsage) == 0 {
		return nil
	}
	for _, usage := range leaf.ExtKeyUsage {
		if usage == x509.ExtKeyUsageClientAuth || usage == x509.ExtKeyUsageAny {
			return nil
		}
	}
	return fmt.Errorf("client certificate %q is not usable for client authentication", leaf.Subject.CommonName)
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

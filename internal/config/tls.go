package config

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultMinTLSVersion = tls.VersionTLS12

var systemCertPool = x509.SystemCertPool

type TlsConfig struct {
	CAFile                   string   `yaml:"caFile"`
	CAPem                    string   `yaml:"caPem"`
	IncludeSystemCACertsPool bool     `yaml:"includeSystemCaCertsPool"`
	CertFile                 string   `yaml:"certFile"`
	CertPem                  string   `yaml:"certPem"`
	KeyFile                  string   `yaml:"keyFile"`
	KeyPem                   string   `yaml:"keyPem"`
	MinVersion               string   `yaml:"minVersion"`
	CipherSuites             []string `yaml:"cipherSuites"`
	Insecure                 bool     `yaml:"insecure"`
	InsecureSkipVerify       bool     `yaml:"insecureSkipVerify"`
	ServerName               string   `yaml:"serverNameOverride"`
	RequireClientCert        bool     `yaml:"requireClientCert"`
}

func (c TlsConfig) Validate() error {
	if c.hasCAFile() && c.hasCAPem() {
		return errors.New("provide either a CA file or the PEM-encoded string, but not both")
	}
	if c.hasCert() != c.hasKey() {
		return errors.New("provide both certificate and key, or neither")
	}
	if _, err := convertVersion(c.MinVersion); err != nil {
		return fmt.Errorf("invalid TLS minVersion: %w", err)
	}
	return nil
}

// LoadTLSConfig returns the client side TLS config, or nil when the
// connection should be made in plaintext.
func (c TlsConfig) LoadTLSConfig() (*tls.Config, error) {
	if c.Insecure && !c.hasCA() {
		return nil, nil
	}
	tlsCfg, err := c.baseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS config: %w", err)
	}
	tlsCfg.RootCAs = tlsCfg.ClientCAs
	tlsCfg.ClientCAs = nil
	tlsCfg.ServerName = c.ServerName
	tlsCfg.InsecureSkipVerify = c.InsecureSkipVerify
	return tlsCfg, nil
}

// LoadServerTLSConfig returns the listener side TLS config, or nil when no
// certificate is configured.
func (c TlsConfig) LoadServerTLSConfig() (*tls.Config, error) {
	if !c.hasCert() {
		return nil, nil
	}
	tlsCfg, err := c.baseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server TLS config: %w", err)
	}
	if c.RequireClientCert {
		tlsCfg.ClientAuth = tls.RequireAndVerifyClientCert
	}
	return tlsCfg, nil
}

func (c TlsConfig) baseConfig() (*tls.Config, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	certPool, err := c.loadCACertPool()
	if err != nil {
		return nil, err
	}
	minTLS, _ := convertVersion(c.MinVersion)
	cipherSuites, err := convertCipherSuites(c.CipherSuites)
	if err != nil {
		return nil, err
	}
	tlsCfg := &tls.Config{
		ClientCAs:    certPool,
		MinVersion:   minTLS,
		CipherSuites: cipherSuites,
	}
	if c.hasCert() {
		cert, err := c.loadCertificate()
		if err != nil {
			return nil, err
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}
	return tlsCfg, nil
}

func convertCipherSuites(cipherSuites []string) ([]uint16, error) {
	var result []uint16
	var errs []error
	for _, suite := range cipherSuites {
		found := false
		for _, supported := range tls.CipherSuites() {
			if suite == supported.Name {
				result = append(result, supported.ID)
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("invalid TLS cipher suite: %q", suite))
		}
	}
	return result, errors.Join(errs...)
}

func (c TlsConfig) loadCACertPool() (*x509.CertPool, error) {
	var pemBytes []byte
	switch {
	case c.hasCAFile():
		b, err := os.ReadFile(filepath.Clean(c.CAFile))
		if err != nil {
			return nil, fmt.Errorf("failed to load CA file %s: %w", c.CAFile, err)
		}
		pemBytes = b
	case c.hasCAPem():
		pemBytes = []byte(c.CAPem)
	default:
		return nil, nil
	}
	certPool := x509.NewCertPool()
	if c.IncludeSystemCACertsPool {
		scp, err := systemCertPool()
		if err != nil {
			return nil, err
		}
		if scp != nil {
			certPool = scp
		}
	}
	if !certPool.AppendCertsFromPEM(pemBytes) {
		return nil, errors.New("failed to parse CA cert")
	}
	return certPool, nil
}

func (c TlsConfig) loadCertificate() (tls.Certificate, error) {
	certPem := []byte(c.CertPem)
	if c.hasCertFile() {
		b, err := os.ReadFile(c.CertFile)
		if err != nil {
			return tls.Certificate{}, err
		}
		certPem = b
	}
	keyPem := []byte(c.KeyPem)
	if c.hasKeyFile() {
		b, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return tls.Certificate{}, err
		}
		keyPem = b
	}
	certificate, err := tls.X509KeyPair(certPem, keyPem)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load TLS cert and key PEMs: %w", err)
	}
	return certificate, nil
}

func (c TlsConfig) hasCA() bool   { return c.hasCAFile() || c.hasCAPem() }
func (c TlsConfig) hasCert() bool { return c.hasCertFile() || c.hasCertPem() }
func (c TlsConfig) hasKey() bool  { return c.KeyFile != "" || len(c.KeyPem) != 0 }

func (c TlsConfig) hasCAFile() bool { return c.CAFile != "" }
func (c TlsConfig) hasCAPem() bool  { return len(c.CAPem) != 0 }

func (c TlsConfig) hasCertFile() bool { return c.CertFile != "" }
func (c TlsConfig) hasCertPem() bool  { return len(c.CertPem) != 0 }

func (c TlsConfig) hasKeyFile() bool { return c.KeyFile != "" }

func convertVersion(v string) (uint16, error) {
	if v == "" {
		return defaultMinTLSVersion, nil
	}
	val, ok := tlsVersions[v]
	if !ok {
		return 0, fmt.Errorf("unsupported TLS version: %q", v)
	}
	return val, nil
}

var tlsVersions = map[string]uint16{
	"1.2": tls.VersionTLS12,
	"1.3": tls.VersionTLS13,
}

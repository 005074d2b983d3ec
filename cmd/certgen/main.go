package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	certFile = "cert.pem"
	keyFile  = "key.pem"
	keyBits  = 4096
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var outDir, ipFlag string
	flag.StringVar(&outDir, "out", ".", "output directory")
	flag.StringVar(&ipFlag, "ip", "", "comma separated IP addresses for the certificate")
	flag.Parse()

	certPath := filepath.Join(outDir, certFile)
	keyPath := filepath.Join(outDir, keyFile)
	if !isCertMissing(certPath, keyPath) {
		return errors.New("cert exists")
	}

	ips, err := parseIPs(ipFlag)
	if err != nil {
		return err
	}

	ca := newTemplate()
	ca.IsCA = true
	ca.KeyUsage = x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign
	ca.BasicConstraintsValid = true

	caPrivKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return err
	}
	if _, err := x509.CreateCertificate(rand.Reader, ca, ca, &caPrivKey.PublicKey, caPrivKey); err != nil {
		return err
	}

	cert := newTemplate()
	cert.IPAddresses = ips
	cert.DNSNames = []string{"localhost"}
	cert.SubjectKeyId = []byte{1, 2, 3, 4, 6}
	cert.KeyUsage = x509.KeyUsageDigitalSignature

	certPrivKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return err
	}
	certBytes, err := x509.CreateCertificate(rand.Reader, cert, ca, &certPrivKey.PublicKey, caPrivKey)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := writePEM(certPath, "CERTIFICATE", certBytes); err != nil {
		return err
	}
	return writePEM(keyPath, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(certPrivKey))
}

func newTemplate() *x509.Certificate {
	return &x509.Certificate{
		SerialNumber: randomInt(),
		Subject: pkix.Name{
			Organization: []string{"Scoreboard"},
		},
		NotBefore:   time.Now(),
		NotAfter:    time.Now().AddDate(10, 0, 0),
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
	}
}

func parseIPs(s string) ([]net.IP, error) {
	if s == "" {
		return []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}, nil
	}
	var ips []net.IP
	for _, part := range strings.Split(s, ",") {
		ip := net.ParseIP(strings.TrimSpace(part))
		if ip == nil {
			return nil, fmt.Errorf("bad ip %q", part)
		}
		ips = append(ips, ip)
	}
	return ips, nil
}

func writePEM(path, blockType string, b []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := pem.Encode(f, &pem.Block{Type: blockType, Bytes: b}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func isCertMissing(certPath, keyPath string) bool {
	_, err := os.Stat(certPath)
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	_, err = os.Stat(keyPath)
	return errors.Is(err, os.ErrNotExist)
}

func randomInt() *big.Int {
	i, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		panic(err)
	}
	return i
}

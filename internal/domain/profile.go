package domain

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

type ProfileID string

// Profile is a set of wallet endpoints for one chain.
type Profile struct {
	ID                ProfileID
	Name              string
	ChainID           string
	SigningURL        string
	AutoSigningURL    string
	RPCURL            string
	MetricURL         string
	ActivationURL     string
	DappOrigin        string
	ReturnTempAccount bool
}

const DefaultProfileID ProfileID = "mainnet"

func DefaultProfile() Profile {
	return Profile{
		ID:             DefaultProfileID,
		Name:           "WAX mainnet",
		ChainID:        "1064487b3cd1a897ce03ae5b6a865651747e2e152090f99c1d19d44e01aea5a4",
		SigningURL:     "https://www.mycloudwallet.com",
		AutoSigningURL: "https://api-idm.wax.io/v1/accounts/auto-accept/",
		RPCURL:         "https://wax.greymass.com",
	}
}

func (p Profile) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if err := requireHTTPURL("signing url", p.SigningURL); err != nil {
		return err
	}
	if err := requireHTTPURL("rpc url", p.RPCURL); err != nil {
		return err
	}
	for name, raw := range map[string]string{
		"auto-signing url": p.AutoSigningURL,
		"metric url":       p.MetricURL,
		"activation url":   p.ActivationURL,
	} {
		if raw == "" {
			continue
		}
		if err := requireHTTPURL(name, raw); err != nil {
			return err
		}
	}
	return nil
}

var defaultPorts = map[string]string{"http": "80", "https": "443"}

// WalletOrigin is the origin wallet messages must come from, serialized the
// way browsers send it: lowercase scheme and host, no default port.
func (p Profile) WalletOrigin() (string, error) {
	parsed, err := url.Parse(p.SigningURL)
	if err != nil {
		return "", fmt.Errorf("parse signing url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("signing url %q has no origin", p.SigningURL)
	}

	scheme := strings.ToLower(parsed.Scheme)
	host := strings.ToLower(parsed.Hostname())
	port := parsed.Port()
	if port == defaultPorts[scheme] {
		port = ""
	}

	switch {
	case port != "":
		host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		host = "[" + host + "]"
	}
	return scheme + "://" + host, nil
}

func requireHTTPURL(name, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s is required", name)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", name)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", name)
	}
	return nil
}

package config

import (
	"testing"
)

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Zendesk.Subdomain = "testcompany"
		cfg.Zendesk.Email = "agent@example.com"
		cfg.Zendesk.Token = "zd-token"
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{
			name:      "valid config",
			mutate:    func(cfg *Config) {},
			expectErr: false,
		},
		{
			name:      "missing subdomain",
			mutate:    func(cfg *Config) { cfg.Zendesk.Subdomain = "" },
			expectErr: true,
		},
		{
			name:      "missing email",
			mutate:    func(cfg *Config) { cfg.Zendesk.Email = "" },
			expectErr: true,
		},
		{
			name:      "missing token",
			mutate:    func(cfg *Config) { cfg.Zendesk.Token = "" },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if (err != nil) != tt.expectErr {
				t.Errorf("validateConfig() error = %v, expectErr %v", err, tt.expectErr)
			}
		})
	}
}

func TestConfigurator(t *testing.T) {
	configurator := NewConfigurator()

	configurator.SetSubdomain("testcompany.zendesk.com")
	configurator.SetEmail("agent@example.com")
	configurator.SetToken("zd-token")
	configurator.SetDirectoryPath("/etc/zendesk-mcp/agents.json")

	// The .zendesk.com suffix is stripped so either form works.
	if configurator.config.Zendesk.Subdomain != "testcompany" {
		t.Errorf("subdomain not normalized, got %s, want %s",
			configurator.config.Zendesk.Subdomain, "testcompany")
	}

	if configurator.config.Zendesk.Email != "agent@example.com" {
		t.Errorf("email not set correctly, got %s, want %s",
			configurator.config.Zendesk.Email, "agent@example.com")
	}

	if configurator.config.Zendesk.Token != "zd-token" {
		t.Errorf("token not set correctly, got %s, want %s",
			configurator.config.Zendesk.Token, "zd-token")
	}

	if configurator.config.Directory.Path != "/etc/zendesk-mcp/agents.json" {
		t.Errorf("directory path not set correctly, got %s, want %s",
			configurator.config.Directory.Path, "/etc/zendesk-mcp/agents.json")
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	encoded := encodeCredentials("secret-token")
	if encoded == "secret-token" {
		t.Error("token stored without encoding")
	}

	decoded, err := decodeCredentials(encoded)
	if err != nil {
		t.Fatalf("decodeCredentials returned error: %v", err)
	}
	if decoded != "secret-token" {
		t.Errorf("round trip produced %q, want %q", decoded, "secret-token")
	}
}

func TestDecodeCredentialsRejectsGarbage(t *testing.T) {
	if _, err := decodeCredentials("not base64!!!"); err == nil {
		t.Error("decodeCredentials accepted invalid input")
	}
}

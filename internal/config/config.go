package config

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Zendesk struct {
		Subdomain string
		Email     string
		Token     string
	}
	Directory struct {
		// Path optionally points at an external agent roster file. When
		// empty, the roster bundled with the binary is used.
		Path string
	}
	Server struct {
		// HTTPAddr switches serving from stdio to streamable HTTP when set.
		HTTPAddr string
	}
	Logging struct {
		Output     io.Writer `json:"-"`
		Level      string
		JSONFormat bool
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".zendesk-mcp", "config.json")
}

// Exists checks if configuration file exists
func Exists() bool {
	_, err := os.Stat(GetConfigPath())
	return err == nil
}

// encodeCredentials encodes sensitive credentials using base64
func encodeCredentials(value string) string {
	return base64.StdEncoding.EncodeToString([]byte(value))
}

// decodeCredentials decodes base64 encoded credentials
func decodeCredentials(value string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", fmt.Errorf("failed to decode credential: %w", err)
	}
	return string(decoded), nil
}

// Load loads configuration from the config file, a local .env file, and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	config := &Config{}
	config.Logging.Level = "info"

	configPath := GetConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("unable to decode config: %w", err)
		}

		// The API token is stored base64 encoded
		if config.Zendesk.Token != "" {
			decodedToken, err := decodeCredentials(config.Zendesk.Token)
			if err != nil {
				return nil, fmt.Errorf("failed to decode Zendesk token: %w", err)
			}
			config.Zendesk.Token = decodedToken
		}
	}

	// A .env file in the working directory fills in anything the config
	// file left unset. Missing .env is not an error.
	_ = godotenv.Load()

	if subdomain := os.Getenv("ZENDESK_SUBDOMAIN"); subdomain != "" {
		config.Zendesk.Subdomain = subdomain
	}
	if email := os.Getenv("ZENDESK_EMAIL"); email != "" {
		config.Zendesk.Email = email
	}
	if token := os.Getenv("ZENDESK_API_TOKEN"); token != "" {
		config.Zendesk.Token = token
	}
	if path := os.Getenv("ZENDESK_AGENTS_FILE"); path != "" {
		config.Directory.Path = path
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig checks if the required configuration is present
func validateConfig(config *Config) error {
	if config.Zendesk.Subdomain == "" {
		return fmt.Errorf("zendesk subdomain is required")
	}

	if config.Zendesk.Email == "" {
		return fmt.Errorf("zendesk email is required")
	}

	if config.Zendesk.Token == "" {
		return fmt.Errorf("zendesk api token is required")
	}

	return nil
}

// Configurator helps build and save configuration
type Configurator struct {
	config Config
}

// NewConfigurator creates a new configurator
func NewConfigurator() *Configurator {
	return &Configurator{
		config: Config{},
	}
}

// SetSubdomain sets the Zendesk subdomain
func (c *Configurator) SetSubdomain(subdomain string) {
	c.config.Zendesk.Subdomain = strings.TrimSuffix(subdomain, ".zendesk.com")
}

// SetEmail sets the Zendesk account email
func (c *Configurator) SetEmail(email string) {
	c.config.Zendesk.Email = email
}

// SetToken sets the Zendesk API token
func (c *Configurator) SetToken(token string) {
	c.config.Zendesk.Token = token
}

// SetDirectoryPath sets an external agent roster path
func (c *Configurator) SetDirectoryPath(path string) {
	c.config.Directory.Path = path
}

// Save saves the configuration to the user's home directory
func (c *Configurator) Save() error {
	configDir := filepath.Join(os.Getenv("HOME"), ".zendesk-mcp")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Make a copy of the config with the token encoded
	configToSave := c.config
	if configToSave.Zendesk.Token != "" {
		configToSave.Zendesk.Token = encodeCredentials(configToSave.Zendesk.Token)
	}

	configJSON, err := json.MarshalIndent(configToSave, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")
	if err := os.WriteFile(configPath, configJSON, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Prompt reads a single line of input with the given label.
func Prompt(label string) (string, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("%s: ", label)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(value), nil
}

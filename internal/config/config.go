package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigDir  = ".blox"

	cookiePrefix = ".ROBLOSECURITY="
)

// Manager handles blox configuration
type Manager struct {
	configPath string
	config     *BloxConfig
	viper      *viper.Viper
}

// NewManager creates a new configuration manager
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &BloxConfig{},
	}
}

// Load loads the blox configuration from file
func (m *Manager) Load() (*BloxConfig, error) {
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		// Check ~/.blox/config.yaml
		m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	m.viper.SetEnvPrefix("BLOX")
	m.viper.AutomaticEnv()

	m.config = &BloxConfig{}

	if err := m.viper.ReadInConfig(); err != nil {
		// A missing file is not an error, the first `add account` creates it
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		m.applyDefaults()
		return m.config, nil
	}

	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.applyDefaults()

	if err := m.validate(); err != nil {
		return nil, err
	}

	return m.config, nil
}

// Save saves the current configuration to file
func (m *Manager) Save() error {
	if m.configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		m.configPath = filepath.Join(home, defaultConfigDir, defaultConfigName+".yaml")
	}

	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := m.viper.WriteConfigAs(m.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// The file holds session cookies
	if err := os.Chmod(m.configPath, 0600); err != nil {
		return fmt.Errorf("failed to restrict config file permissions: %w", err)
	}

	return nil
}

// Path returns the file the configuration is loaded from and saved to
func (m *Manager) Path() string {
	if m.configPath != "" {
		return m.configPath
	}
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return ""
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *BloxConfig {
	return m.config
}

// Accounts returns the configured accounts in the order they were added
func (m *Manager) Accounts() []Account {
	accounts := make([]Account, len(m.config.Accounts))
	copy(accounts, m.config.Accounts)
	return accounts
}

// AddAccount appends a new account
// Names are unique regardless of case and are stored lower-case
func (m *Manager) AddAccount(name, cookie string) (Account, error) {
	name = strings.TrimSpace(name)
	cookie = strings.TrimPrefix(strings.TrimSpace(cookie), cookiePrefix)

	if name == "" {
		return Account{}, util.NewValidationError("name", nil, "account name is required")
	}
	if cookie == "" {
		return Account{}, util.NewValidationError("cookie", nil, "cookie is required")
	}

	for _, existing := range m.config.Accounts {
		if strings.EqualFold(existing.Name, name) {
			return Account{}, util.WrapAccountError(name, util.ErrAccountExists)
		}
	}

	account := Account{
		Name:   strings.ToLower(name),
		Cookie: cookie,
	}

	m.config.Accounts = append(m.config.Accounts, account)
	m.viper.Set("accounts", m.config.Accounts)

	return account, nil
}

// FindAccount looks an account up by name, ignoring case
// An empty name selects the first configured account
func (m *Manager) FindAccount(name string) (Account, error) {
	if len(m.config.Accounts) == 0 {
		return Account{}, util.ErrNoAccounts
	}

	if name == "" {
		return m.config.Accounts[0], nil
	}

	for _, account := range m.config.Accounts {
		if strings.EqualFold(account.Name, name) {
			return account, nil
		}
	}

	return Account{}, util.WrapAccountError(name, util.ErrAccountNotFound)
}

// SetDownloadPath changes where downloaded files are written
func (m *Manager) SetDownloadPath(path string) {
	m.config.DownloadPath = path
	m.viper.Set("downloadPath", path)
}

// DownloadDir resolves the downloadPath setting to a directory
func (m *Manager) DownloadDir() (string, error) {
	switch strings.ToLower(m.config.DownloadPath) {
	case "", DownloadPathRelative:
		return ".", nil

	case DownloadPathDownloads:
		if dir := os.Getenv("XDG_DOWNLOAD_DIR"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Downloads"), nil

	default:
		path := m.config.DownloadPath
		if strings.HasPrefix(path, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			path = filepath.Join(home, path[2:])
		}
		return path, nil
	}
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.Defaults.Timeout == 0 {
		m.config.Defaults.Timeout = 30 * time.Second
	}

	if m.config.Defaults.Parallel == 0 {
		m.config.Defaults.Parallel = 4
	}

	if m.config.Defaults.OutputFormat == "" {
		m.config.Defaults.OutputFormat = "tree"
	}

	if m.config.DownloadPath == "" {
		m.config.DownloadPath = DownloadPathRelative
	}
}

// validate rejects files that would make account selection ambiguous
func (m *Manager) validate() error {
	seen := make(map[string]bool, len(m.config.Accounts))
	for i, account := range m.config.Accounts {
		key := strings.ToLower(account.Name)
		if key == "" {
			return util.NewValidationError(fmt.Sprintf("accounts[%d].name", i), nil, "account name is required")
		}
		if seen[key] {
			return util.NewValidationError(fmt.Sprintf("accounts[%d].name", i), account.Name, "duplicate account name")
		}
		seen[key] = true
	}

	if m.config.Defaults.Parallel < 0 {
		return util.NewValidationError("defaults.parallel", m.config.Defaults.Parallel, "must not be negative")
	}

	return nil
}

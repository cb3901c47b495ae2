package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

type (
	// Config -.
	Config struct {
		App     `yaml:"app"`
		HMC     `yaml:"hmc"`
		Log     `yaml:"logger"`
		Output  `yaml:"output"`
		Cache   `yaml:"cache"`
		Secrets `yaml:"secrets"`
	}

	// App -.
	App struct {
		Name    string `yaml:"name" env:"APP_NAME"`
		Repo    string `yaml:"repo" env:"APP_REPO"`
		Version string
	}

	// HMC is the management appliance endpoint and credentials.
	HMC struct {
		Host       string        `yaml:"host" env:"HMC_HOST"`
		Port       string        `yaml:"port" env:"HMC_PORT"`
		Userid     string        `yaml:"userid" env:"HMC_USERID"`
		Password   string        `yaml:"password" env:"HMC_PASSWORD"`
		VerifyCert bool          `yaml:"verify_cert" env:"HMC_VERIFY_CERT"`
		CACertFile string        `yaml:"ca_cert_file" env:"HMC_CA_CERT_FILE"`
		Timeout    time.Duration `yaml:"timeout" env:"HMC_TIMEOUT"`
	}

	// Log -.
	Log struct {
		Level string `yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Output -.
	Output struct {
		Format string `yaml:"format" env:"ZHMC_OUTPUT_FORMAT"`
	}

	// Cache -.
	Cache struct {
		TTL time.Duration `yaml:"ttl" env:"CACHE_TTL"`
	}

	// Secrets is the optional Vault lookup for the HMC password.
	Secrets struct {
		Address     string `yaml:"address" env:"SECRETS_ADDR"`
		Token       string `yaml:"token" env:"SECRETS_TOKEN"`
		Path        string `yaml:"path" env:"SECRETS_PATH"`
		PasswordKey string `yaml:"password_key" env:"SECRETS_PASSWORD_KEY"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "zhmc",
			Repo:    "zhmc-toolkit/zhmc",
			Version: "DEVELOPMENT",
		},
		HMC: HMC{
			Host:       "",
			Port:       "6794",
			Userid:     "",
			Password:   "",
			VerifyCert: true,
			CACertFile: "",
			Timeout:    5 * time.Minute,
		},
		Log: Log{
			Level: "info",
		},
		Output: Output{
			Format: "table",
		},
		Cache: Cache{
			TTL: 30 * time.Second,
		},
		Secrets: Secrets{
			Address:     "",
			Token:       "",
			Path:        "secret/data/zhmc",
			PasswordKey: "hmc-password",
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".zhmc", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// NewConfig returns app config. An empty configPath uses the default
// location under the user's home directory; env vars override either way.
func NewConfig(configPath string) (*Config, error) {
	cfg := defaultConfig()

	path, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(path, cfg); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

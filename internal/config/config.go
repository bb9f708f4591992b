package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/extwizard/extwizard/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys read by the wizard.
const (
	KeyTemplatePaths    = "template_paths"
	KeyTemplateKeys     = "template_keys"
	KeyBuiltinTemplates = "builtin_templates"
	KeyVerbose          = "verbose"
)

// Dir returns the path to the config directory (~/.extwizard/).
// EXTWIZARD_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.extwizard/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// TemplatePaths returns the configured [CATEGORY=]PATH entries, in file order.
func TemplatePaths() []string {
	return viper.GetStringSlice(KeyTemplatePaths)
}

// TemplateKeys returns the configured kind → substitution key overrides.
func TemplateKeys() map[string]string {
	return viper.GetStringMapString(KeyTemplateKeys)
}

// BuiltinTemplatesDir returns the root holding the built-in "extensions" and
// "modules" template directories. It defaults to ../Templates relative to the
// running executable.
func BuiltinTemplatesDir() string {
	if dir := viper.GetString(KeyBuiltinTemplates); dir != "" {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "Templates")
}

// Verbose reports whether debug logging was requested through config or env.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}

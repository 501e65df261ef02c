package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// loadConfig layers sanitize.yaml and SANITIZE_* environment variables
// under the flags already bound to v. An explicit configFile must exist;
// the default places are optional.
func loadConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix("sanitize")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config %s: %w", configFile, err)
		}
		return nil
	}

	for _, dir := range configDirs() {
		v.AddConfigPath(dir)
	}
	v.SetConfigName("sanitize")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("could not parse configuration file: %w", err)
		}
	}
	return nil
}

// configDirs lists the directories searched for sanitize.yaml, most
// specific first.
func configDirs() []string {
	dirs := []string{"."}
	if c := os.Getenv("SANITIZE_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}
	if c, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(c, "sanitize"))
	}
	return dirs
}

// Config loading for the chronicler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/dukaforge/chronicler/internal/paths"
	"github.com/dukaforge/chronicler/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyDatabase   = "database"
	cfgKeyDBName     = "dbname"
	cfgKeyOutput     = "output"
	cfgKeyCompressed = "compressed"
	cfgKeyLogLevel   = "log_level"

	// Defaults applied when the config file omits a key. The database
	// location defaults through paths.ResolveDatabase instead.
	defaultDBName     = "chronicles"
	defaultOutput     = "chronicles.zip"
	defaultCompressed = true
	defaultLogLevel   = "info"
)

// loadConfig reads config.yaml using Viper. An explicit file path wins;
// otherwise the search covers the working directory and the platform
// config directory. A missing config file is not an error and yields the
// defaults.
func loadConfig(path string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDBName, defaultDBName)
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyCompressed, defaultCompressed)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := paths.ResolveConfigDir(""); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit path that does not exist surfaces here too.
			if path != "" || !os.IsNotExist(err) {
				return types.Config{}, fmt.Errorf("read config: %w", err)
			}
		}
		// Missing config file falls through to the defaults.
	}

	return types.Config{
		Database:   v.GetString(cfgKeyDatabase),
		DBName:     v.GetString(cfgKeyDBName),
		Output:     v.GetString(cfgKeyOutput),
		Compressed: v.GetBool(cfgKeyCompressed),
		LogLevel:   v.GetString(cfgKeyLogLevel),
	}, nil
}

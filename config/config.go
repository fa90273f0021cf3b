package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Parser struct {
	URL           string `mapstructure:"url"`
	TimeoutSecs   int    `mapstructure:"timeout"`
	LeaveExisting bool   `mapstructure:"leave_existing"`
}

type Corpus struct {
	Genre    string `mapstructure:"genre"`
	Speakers string `mapstructure:"speakers"` // optional demographic sidecar
}

type Root struct {
	Pipeline struct {
		Name   string `mapstructure:"name"`
		LogLvl string `mapstructure:"log_level"`
	} `mapstructure:"pipeline"`
	Corpus Corpus `mapstructure:"corpus"`
	Parser Parser `mapstructure:"parser"`
	Paths  struct {
		Data    string `mapstructure:"data"`
		Outputs string `mapstructure:"outputs"`
	} `mapstructure:"paths"`
}

func Load() (*Root, error) {
	v := viper.New()
	v.SetDefault("pipeline.name", "dialogue-pipeline")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("corpus.genre", "transcript")
	v.SetDefault("parser.timeout", 60)
	v.SetDefault("parser.leave_existing", false)
	v.SetDefault("paths.data", "data")
	v.SetDefault("paths.outputs", "outputs")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join("config", env))
	v.AddConfigPath(".")
	v.SetEnvPrefix("CORPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// missing config file is fine, defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (p Parser) Timeout() time.Duration { return time.Duration(p.TimeoutSecs) * time.Second }

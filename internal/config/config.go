package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	OpenJobs struct {
		FeedURL      string `yaml:"feed_url"`
		RefreshHours int    `yaml:"refresh_hours"`
		MaxAgeDays   int    `yaml:"max_age_days"` // 0 = no age filter
	} `yaml:"open_jobs"`

	Extract struct {
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"extract"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

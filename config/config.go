package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
	} `yaml:"database"`
	Server struct {
		Port             string `yaml:"port"`
		BaseURL          string `yaml:"base_url"`
		DefaultAvatarURL string `yaml:"default_avatar_url"`
	} `yaml:"server"`
	Google struct {
		RedirectURL string `yaml:"redirect_url"`
	} `yaml:"google"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

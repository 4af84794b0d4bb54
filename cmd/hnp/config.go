package main

import (
	"fmt"

	"github.com/dhamidi/hnp/name"
)

var configFile string

func loadConfig() (name.Config, error) {
	if configFile == "" {
		return name.DefaultConfig(), nil
	}
	cfg, err := name.LoadConfig(configFile)
	if err != nil {
		return name.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newParser(opts ...name.Option) (*name.Parser, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	p, err := name.New(append([]name.Option{name.WithConfig(cfg)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("build parser: %w", err)
	}
	return p, nil
}

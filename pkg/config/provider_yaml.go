package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	if y.config != nil {
		return y.config, nil
	}

	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config, err := ParseYAML(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", y.filename, err)
	}

	y.config = config
	return config, nil
}

// ParseYAML converts a YAML document into ConfigData
func ParseYAML(data []byte) (*ConfigData, error) {
	var yamlConfig ConfigYAML
	if err := yaml.UnmarshalStrict(data, &yamlConfig); err != nil {
		return nil, err
	}

	config := &ConfigData{
		Dataset: DatasetData{
			Endpoint: yamlConfig.Dataset.Endpoint,
		},
		REST: RESTData{
			Cert:       yamlConfig.REST.Cert,
			Key:        yamlConfig.REST.Key,
			Port:       yamlConfig.REST.Port,
			ListenAddr: yamlConfig.REST.ListenAddr,
		},
		Log: LogData{
			Debug:      yamlConfig.Log.Debug,
			File:       yamlConfig.Log.File,
			MaxSizeMB:  yamlConfig.Log.MaxSizeMB,
			MaxBackups: yamlConfig.Log.MaxBackups,
			MaxAgeDays: yamlConfig.Log.MaxAgeDays,
		},
		Calendar: CalendarData{
			DefaultZone:   yamlConfig.Calendar.DefaultZone,
			IncludePublic: yamlConfig.Calendar.IncludePublic,
			ProductID:     yamlConfig.Calendar.ProductID,
		},
	}

	if yamlConfig.Dataset.Timeout != "" {
		timeout, err := time.ParseDuration(yamlConfig.Dataset.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid dataset.timeout %q: %w", yamlConfig.Dataset.Timeout, err)
		}
		config.Dataset.Timeout = timeout
	}

	return config, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags
type ConfigYAML struct {
	Dataset  DatasetYAML  `yaml:"dataset,omitempty"`
	REST     RESTYAML     `yaml:"rest,omitempty"`
	Log      LogYAML      `yaml:"log,omitempty"`
	Calendar CalendarYAML `yaml:"calendar,omitempty"`
}

type DatasetYAML struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
}

type RESTYAML struct {
	Cert       string `yaml:"cert,omitempty"`
	Key        string `yaml:"key,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	ListenAddr string `yaml:"listen-addr,omitempty"`
}

type LogYAML struct {
	Debug      bool   `yaml:"debug,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max-size-mb,omitempty"`
	MaxBackups int    `yaml:"max-backups,omitempty"`
	MaxAgeDays int    `yaml:"max-age-days,omitempty"`
}

type CalendarYAML struct {
	DefaultZone   string `yaml:"default-zone,omitempty"`
	IncludePublic bool   `yaml:"include-public,omitempty"`
	ProductID     string `yaml:"product-id,omitempty"`
}

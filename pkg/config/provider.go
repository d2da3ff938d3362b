package config

import (
	"fmt"
	"time"
)

// Defaults applied to unset configuration values
const (
	DefaultListenAddr = "0.0.0.0"
	DefaultPort       = 8080
	DefaultTimeout    = 10 * time.Second
	DefaultLogMaxSize = 100 // megabytes
	DefaultLogBackups = 3
	DefaultLogMaxAge  = 28 // days
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Dataset  DatasetData  `json:"dataset"`
	REST     RESTData     `json:"rest"`
	Log      LogData      `json:"log"`
	Calendar CalendarData `json:"calendar"`
}

// DatasetData configures access to the holiday dataset
type DatasetData struct {
	Endpoint string        `json:"endpoint,omitempty"`
	Timeout  time.Duration `json:"timeout,omitempty"`
}

// RESTData configures the HTTP server
type RESTData struct {
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
	Port       int    `json:"port,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
}

// TLS reports whether both a certificate and a key are configured
func (r RESTData) TLS() bool {
	return r.Cert != "" && r.Key != ""
}

// Addr returns the listen address in host:port form
func (r RESTData) Addr() string {
	return fmt.Sprintf("%s:%d", r.ListenAddr, r.Port)
}

// LogData configures logging. File is optional; when set, logs are also
// written there and rotated.
type LogData struct {
	Debug      bool   `json:"debug,omitempty"`
	File       string `json:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty"`
}

// CalendarData holds defaults for calendar output
type CalendarData struct {
	DefaultZone   string `json:"default_zone,omitempty"`
	IncludePublic bool   `json:"include_public,omitempty"`
	ProductID     string `json:"product_id,omitempty"`
}

// ApplyDefaults fills unset values and returns a description of each
// default applied so the caller can log them.
func (c *ConfigData) ApplyDefaults() []string {
	var applied []string

	if c.Dataset.Timeout == 0 {
		c.Dataset.Timeout = DefaultTimeout
		applied = append(applied, fmt.Sprintf("dataset.timeout not provided; defaulting to %v", DefaultTimeout))
	}
	if c.REST.ListenAddr == "" {
		c.REST.ListenAddr = DefaultListenAddr
		applied = append(applied, fmt.Sprintf("rest.listen-addr not provided; defaulting to %s", DefaultListenAddr))
	}
	if c.REST.Port == 0 {
		c.REST.Port = DefaultPort
		applied = append(applied, fmt.Sprintf("rest.port not provided; defaulting to %d", DefaultPort))
	}
	if c.Log.File != "" {
		if c.Log.MaxSizeMB == 0 {
			c.Log.MaxSizeMB = DefaultLogMaxSize
		}
		if c.Log.MaxBackups == 0 {
			c.Log.MaxBackups = DefaultLogBackups
		}
		if c.Log.MaxAgeDays == 0 {
			c.Log.MaxAgeDays = DefaultLogMaxAge
		}
	}

	return applied
}

// Validate checks values that defaults cannot repair
func (c *ConfigData) Validate() error {
	if c.REST.Port < 0 || c.REST.Port > 65535 {
		return fmt.Errorf("rest.port %d out of range", c.REST.Port)
	}
	if (c.REST.Cert == "") != (c.REST.Key == "") {
		return fmt.Errorf("rest.cert and rest.key must be set together")
	}
	if c.Dataset.Timeout < 0 {
		return fmt.Errorf("dataset.timeout must not be negative")
	}
	return nil
}

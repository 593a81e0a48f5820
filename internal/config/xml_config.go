// Package config provides XML-based configuration management for the
// maintenance notice generator.
package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// AppConfig represents the root XML configuration structure
type AppConfig struct {
	XMLName xml.Name `xml:"MaintNoticeGenerator"`

	// Server configuration
	Server ServerConfig `xml:"Server"`

	// Parsing configuration
	Parsing ParsingConfig `xml:"Parsing"`

	// Session configuration
	Sessions SessionConfig `xml:"Sessions"`

	// Advanced options
	Advanced AdvancedConfig `xml:"Advanced"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         int    `xml:"Port"`
	BindAddress  string `xml:"BindAddress"`
	EnableCORS   bool   `xml:"EnableCORS"`
	AllowOrigins string `xml:"AllowOrigins"`
	ReadTimeout  int    `xml:"ReadTimeoutSeconds"`
	WriteTimeout int    `xml:"WriteTimeoutSeconds"`
	IdleTimeout  int    `xml:"IdleTimeoutSeconds"`
	BodyLimit    string `xml:"BodyLimit"`
}

// ParsingConfig contains circuit-list parsing settings
type ParsingConfig struct {
	// VocabularyFile points to an optional YAML file overriding the built-in
	// header-keyword / noise-token / purpose-preset vocabulary.
	VocabularyFile         string `xml:"VocabularyFile"`
	IncludeOtherCategory   bool   `xml:"IncludeOtherCategory"`
	MaxBlocksPerSubmission int    `xml:"MaxBlocksPerSubmission"`
}

// SessionConfig contains preview session settings
type SessionConfig struct {
	TimeoutMinutes         int `xml:"TimeoutMinutes"`
	CleanupIntervalMinutes int `xml:"CleanupIntervalMinutes"`
}

// AdvancedConfig contains advanced/tuning options
type AdvancedConfig struct {
	EnableRequestLogging bool `xml:"EnableRequestLogging"`
	EnableCompression    bool `xml:"EnableCompression"`
	CompressionLevel     int  `xml:"CompressionLevel"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8090,
			BindAddress:  "0.0.0.0",
			EnableCORS:   true,
			AllowOrigins: "*",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  120,
			BodyLimit:    "8M",
		},
		Parsing: ParsingConfig{
			VocabularyFile:         "",
			IncludeOtherCategory:   false,
			MaxBlocksPerSubmission: 16,
		},
		Sessions: SessionConfig{
			TimeoutMinutes:         30,
			CleanupIntervalMinutes: 5,
		},
		Advanced: AdvancedConfig{
			EnableRequestLogging: true,
			EnableCompression:    true,
			CompressionLevel:     5,
		},
	}
}

// LoadConfig loads configuration from XML file
func LoadConfig(configPath string) (*AppConfig, error) {
	// If file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &AppConfig{}
	if err := xml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides
	config.applyEnvironmentOverrides()

	// Resolve relative paths
	config.resolvePaths(filepath.Dir(configPath))

	return config, nil
}

// Save saves the configuration to XML file
func (c *AppConfig) Save(configPath string) error {
	output, err := xml.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(xml.Header + "\n<!-- Maintenance Notice Generator Configuration -->\n<!-- This file is auto-generated on first run -->\n\n")
	content := append(header, output...)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides allows environment variables to override config values
func (c *AppConfig) applyEnvironmentOverrides() {
	// PORT override
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	// VOCAB_FILE override
	if vocab := os.Getenv("VOCAB_FILE"); vocab != "" {
		c.Parsing.VocabularyFile = vocab
	}
}

// resolvePaths converts relative paths to absolute based on config file location
func (c *AppConfig) resolvePaths(configDir string) {
	if c.Parsing.VocabularyFile != "" && !filepath.IsAbs(c.Parsing.VocabularyFile) {
		c.Parsing.VocabularyFile = filepath.Join(configDir, c.Parsing.VocabularyFile)
	}
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

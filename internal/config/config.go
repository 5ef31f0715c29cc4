// Package config holds the knobs shared by the merge CLI and serve mode.
// Values layer as flag > environment (DOCNAV_ prefix) > config file >
// default; the CLI binds its flags into viper so the layering is uniform.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Merge options
	Output      string
	MenuTitle   string
	BackLabel   string
	CategorySep string

	// Serve mode
	Port           string
	APIKey         string
	MaxUploadBytes int64

	// PDF conversion
	PDFFallbackPdftotext bool
}

// SetDefaults registers every default with viper. Called once at CLI
// startup, before flags are bound.
func SetDefaults() {
	viper.SetDefault("output", "all_documents.docx")
	viper.SetDefault("menu_title", "Menu")
	viper.SetDefault("back_label", "Back to menu")
	viper.SetDefault("category_sep", "_")

	viper.SetDefault("port", "8091")
	viper.SetDefault("max_upload_bytes", int64(52428800)) // 50MB

	viper.SetDefault("pdf_fallback_pdftotext", true)
}

// Load snapshots the current viper state into a Config.
func Load() Config {
	cfg := Config{
		Output:      viper.GetString("output"),
		MenuTitle:   viper.GetString("menu_title"),
		BackLabel:   viper.GetString("back_label"),
		CategorySep: viper.GetString("category_sep"),

		Port:           viper.GetString("port"),
		APIKey:         viper.GetString("api_key"),
		MaxUploadBytes: viper.GetInt64("max_upload_bytes"),

		PDFFallbackPdftotext: viper.GetBool("pdf_fallback_pdftotext"),
	}

	if cfg.Output == "" {
		cfg.Output = "all_documents.docx"
	}
	if cfg.MenuTitle == "" {
		cfg.MenuTitle = "Menu"
	}
	if cfg.BackLabel == "" {
		cfg.BackLabel = "Back to menu"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

// ValidateServe checks the settings serve mode cannot run without.
func (c Config) ValidateServe() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCNAV_API_KEY is required")
	}
	if c.Port == "" {
		return fmt.Errorf("DOCNAV_PORT must not be empty")
	}
	return nil
}

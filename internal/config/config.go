// Package config provides configuration data structures for nullfill.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dbmrq/nullfill/internal/fill"
)

// Config represents the complete nullfill configuration loaded from config.yaml.
type Config struct {
	Fill      FillConfig      `yaml:"fill"      json:"fill"      mapstructure:"fill"`
	Clipboard ClipboardConfig `yaml:"clipboard" json:"clipboard" mapstructure:"clipboard"`
	UI        UIConfig        `yaml:"ui"        json:"ui"        mapstructure:"ui"`
	Log       LogConfig       `yaml:"log"       json:"log"       mapstructure:"log"`
}

// FillConfig configures the forward-fill transformation.
type FillConfig struct {
	// Mode is numeric or text (default: numeric).
	Mode fill.ValueKind `yaml:"mode" json:"mode" mapstructure:"mode"`
	// Fallback is emitted for leading sentinels. Empty means -1 (numeric) or "" (text).
	Fallback string `yaml:"fallback" json:"fallback" mapstructure:"fallback"`
	// OnMalformed is passthrough or reject (default: passthrough).
	OnMalformed fill.MalformedPolicy `yaml:"on_malformed" json:"on_malformed" mapstructure:"on_malformed"`
}

// ClipboardConfig configures clipboard access.
type ClipboardConfig struct {
	// Timeout bounds a single clipboard read or write (default: 5s).
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// UIConfig configures labels and notices shown by the TUI.
type UIConfig struct {
	ImportLabel    string `yaml:"import_label"    json:"import_label"    mapstructure:"import_label"`
	ExportLabel    string `yaml:"export_label"    json:"export_label"    mapstructure:"export_label"`
	OriginalHeader string `yaml:"original_header" json:"original_header" mapstructure:"original_header"`
	FilledHeader   string `yaml:"filled_header"   json:"filled_header"   mapstructure:"filled_header"`
	PasteNotice    string `yaml:"paste_notice"    json:"paste_notice"    mapstructure:"paste_notice"`
	CopyNotice     string `yaml:"copy_notice"     json:"copy_notice"     mapstructure:"copy_notice"`
	// NoticeDuration is how long a toast notice stays visible (default: 3s).
	NoticeDuration time.Duration `yaml:"notice_duration" json:"notice_duration" mapstructure:"notice_duration"`
}

// LogConfig configures file logging.
type LogConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the log directory. Empty means the user cache directory.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// JSON switches log files to JSON lines.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultClipboardTimeout = 5 * time.Second
	DefaultNoticeDuration   = 3 * time.Second
	DefaultImportLabel      = "Uvoz"
	DefaultExportLabel      = "Izvoz"
	DefaultOriginalHeader   = "Stari"
	DefaultFilledHeader     = "Pretvorjeni"
	DefaultPasteNotice      = "Novi podatki"
	DefaultCopyNotice       = "Skopirano!"
	DefaultLogLevel         = "info"
)

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Fill: FillConfig{
			Mode:        fill.KindNumeric,
			Fallback:    "",
			OnMalformed: fill.MalformedPassthrough,
		},
		Clipboard: ClipboardConfig{
			Timeout: DefaultClipboardTimeout,
		},
		UI: UIConfig{
			ImportLabel:    DefaultImportLabel,
			ExportLabel:    DefaultExportLabel,
			OriginalHeader: DefaultOriginalHeader,
			FilledHeader:   DefaultFilledHeader,
			PasteNotice:    DefaultPasteNotice,
			CopyNotice:     DefaultCopyNotice,
			NoticeDuration: DefaultNoticeDuration,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Fill.Mode == "" {
		c.Fill.Mode = defaults.Fill.Mode
	}
	if c.Fill.OnMalformed == "" {
		c.Fill.OnMalformed = defaults.Fill.OnMalformed
	}

	if c.Clipboard.Timeout == 0 {
		c.Clipboard.Timeout = defaults.Clipboard.Timeout
	}

	ui := &c.UI
	setDefault(&ui.ImportLabel, defaults.UI.ImportLabel)
	setDefault(&ui.ExportLabel, defaults.UI.ExportLabel)
	setDefault(&ui.OriginalHeader, defaults.UI.OriginalHeader)
	setDefault(&ui.FilledHeader, defaults.UI.FilledHeader)
	setDefault(&ui.PasteNotice, defaults.UI.PasteNotice)
	setDefault(&ui.CopyNotice, defaults.UI.CopyNotice)
	if ui.NoticeDuration == 0 {
		ui.NoticeDuration = defaults.UI.NoticeDuration
	}

	setDefault(&c.Log.Level, defaults.Log.Level)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// FillOptions converts the fill section into transform options.
func (c *Config) FillOptions() (fill.Options, error) {
	fallback, err := fill.ParseFallback(c.Fill.Mode, c.Fill.Fallback)
	if err != nil {
		return fill.Options{}, err
	}
	return fill.Options{
		Kind:        c.Fill.Mode,
		Fallback:    fallback,
		OnMalformed: c.Fill.OnMalformed,
	}, nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	// Options lists accepted values, when the field is an enumeration.
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Fill.Mode != "" && !c.Fill.Mode.Valid() {
		errs = append(errs, enumError("fill.mode", kindNames()))
	}

	if c.Fill.OnMalformed != "" {
		switch c.Fill.OnMalformed {
		case fill.MalformedPassthrough, fill.MalformedReject:
			// valid
		default:
			errs = append(errs, enumError("fill.on_malformed", policyNames()))
		}
	}

	if c.Fill.Mode.Valid() {
		if _, err := fill.ParseFallback(c.Fill.Mode, c.Fill.Fallback); err != nil {
			errs = append(errs, &ValidationError{Field: "fill.fallback", Message: err.Error()})
		}
	}

	if c.Clipboard.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "clipboard.timeout", Message: "must be non-negative"})
	}
	if c.UI.NoticeDuration < 0 {
		errs = append(errs, &ValidationError{Field: "ui.notice_duration", Message: "must be non-negative"})
	}

	if c.Log.Level != "" && !contains(LogLevels, c.Log.Level) {
		errs = append(errs, enumError("log.level", LogLevels))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func enumError(field string, options []string) *ValidationError {
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = fmt.Sprintf("'%s'", o)
	}
	return &ValidationError{
		Field:   field,
		Message: "must be " + joinOr(quoted),
		Options: options,
	}
}

// joinOr joins items as "a, b, or c".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}

func kindNames() []string {
	names := make([]string, len(fill.ValidKinds))
	for i, k := range fill.ValidKinds {
		names[i] = string(k)
	}
	return names
}

func policyNames() []string {
	names := make([]string, len(fill.ValidMalformedPolicies))
	for i, p := range fill.ValidMalformedPolicies {
		names[i] = string(p)
	}
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

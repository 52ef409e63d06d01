package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Glossary
		Database
		Audit
		Export
	}

	Glossary struct {
		FilePath      string
		SkipMalformed bool // Skip lines with fewer than three fields instead of failing the load
	}
	Database struct {
		Path string
	}
	Audit struct {
		Enabled bool
		Dir     string
	}
	Export struct {
		Dir string // Directory for markdown exports
	}
)

// getGlossaryFile returns the glossary path, checking both new and legacy env vars
func getGlossaryFile(v *viper.Viper) string {
	if path := v.GetString("GLOSSARY_FILE"); path != "" {
		return path
	}
	if path := v.GetString("DICTIONARY_FILE"); path != "" {
		return path
	}
	return DefaultGlossaryPath
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("glossary_skip_malformed", false)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("audit_enabled", false)
	v.SetDefault("audit_dir", DefaultAuditDir)
	v.SetDefault("export_dir", DefaultExportDir)

	return &Config{
		Glossary: Glossary{
			FilePath:      getGlossaryFile(v),
			SkipMalformed: v.GetBool("GLOSSARY_SKIP_MALFORMED"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Audit: Audit{
			Enabled: v.GetBool("AUDIT_ENABLED"),
			Dir:     v.GetString("AUDIT_DIR"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}
}

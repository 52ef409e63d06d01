package config

// Default paths
const (
	// DefaultGlossaryPath is the glossary text file read when none is given
	DefaultGlossaryPath = "./glossary.txt"

	// DefaultDatabasePath is the sqlite database holding glossary snapshots
	DefaultDatabasePath = "./glossary.db"

	DefaultAuditDir  = "./audit"
	DefaultExportDir = "./markdown"
)

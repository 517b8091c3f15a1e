package config

// GlobalFlags contains common flags used across commands
type GlobalFlags struct {
	ConfigPath  string
	Format      string
	Verbose     bool
	NoColor     bool
	Interactive bool

	// Command-specific configurations
	Scan ScanFlags
}

// ScanFlags holds the overrides accepted by the scan command
type ScanFlags struct {
	Profile  string
	Platform string
	Dir      string
}

// Global is the shared instance of GlobalFlags
var Global = GlobalFlags{}

// Package config provides configuration management for GNnutri.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: recipes, reference, sqlite_table
//   - Report: dir, nutrients, rations, format
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Filter.UT, Filter.RecipeType, Filter.AgeGroup (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNNUTRI_ prefix with underscores for nesting:
//
//	GNNUTRI_INPUT_RECIPES=/data/recetas.xlsx
//	GNNUTRI_INPUT_REFERENCE=/data/tpca.xlsx
//	GNNUTRI_REPORT_RATIONS=2
//	GNNUTRI_DATABASE_HOST=localhost
//	GNNUTRI_LOG_LEVEL=info
package config

// Config represents the complete GNnutri configuration.
type Config struct {
	// Input contains locations of the recipe and reference tables.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Report contains settings of summaries, details and exports.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	// Filter limits recipes used in summaries and details.
	Filter FilterConfig `mapstructure:"-" yaml:"-"`

	// Database contains PostgreSQL connection settings for stored runs.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, reports and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// InputConfig describes where input tables are.
type InputConfig struct {
	// Recipes is the path to the recipe-ingredient table
	// (.xlsx, .csv, .tsv or .txt).
	Recipes string `mapstructure:"recipes" yaml:"recipes"`

	// Reference is the path to the food-composition table. Besides
	// spreadsheet and text formats it can be a SQLite database.
	Reference string `mapstructure:"reference" yaml:"reference"`

	// SQLiteTable is the table name used when Reference is a SQLite
	// database.
	SQLiteTable string `mapstructure:"sqlite_table" yaml:"sqlite_table"`
}

// ReportConfig contains settings of generated reports.
type ReportConfig struct {
	// Dir is where export workbooks are written. Empty value means
	// ~/.local/share/gnnutri/reports.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Nutrients is the default nutrient selection. Internal names and
	// display labels are both accepted. Empty list means the default
	// set of nutrients.
	Nutrients []string `mapstructure:"nutrients" yaml:"nutrients"`

	// Rations multiplies recipe totals. Must be 1 or more.
	Rations int `mapstructure:"rations" yaml:"rations"`

	// Format of terminal output: "table", "csv" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// FilterConfig keeps recipe rows by their descriptive attributes.
type FilterConfig struct {
	UT         []string
	RecipeType []string
	AgeGroup   []string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows sent in one CopyFrom call when a
	// run is stored.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), stderr or stdout
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			SQLiteTable: "tpca",
		},
		Report: ReportConfig{
			Rations: 1,
			Format:  "table",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnnutri",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// ReportsDir returns the directory for exports: Report.Dir if it is set,
// the default reports directory otherwise.
func (c *Config) ReportsDir() string {
	if c.Report.Dir != "" {
		return c.Report.Dir
	}
	return ReportDir(c.HomeDir)
}

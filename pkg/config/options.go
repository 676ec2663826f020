package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputRecipes sets the path to the recipe table.
func OptInputRecipes(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Recipes", s) {
			c.Input.Recipes = s
		}
	}
}

// OptInputReference sets the path to the reference food-composition
// table.
func OptInputReference(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Reference", s) {
			c.Input.Reference = s
		}
	}
}

// OptInputSQLiteTable sets the table name of a SQLite reference.
func OptInputSQLiteTable(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input SQLite Table", s) {
			c.Input.SQLiteTable = s
		}
	}
}

// OptReportDir sets the directory for exported workbooks.
func OptReportDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Dir", s) {
			c.Report.Dir = s
		}
	}
}

// OptReportNutrients sets the default nutrient selection. Blank entries
// are skipped, an empty list keeps the current value.
func OptReportNutrients(ss []string) Option {
	var vals []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			vals = append(vals, v)
		}
	}
	return func(c *Config) {
		if len(vals) > 0 {
			c.Report.Nutrients = vals
		}
	}
}

// OptReportRations sets the ration multiplier of recipe totals.
func OptReportRations(i int) Option {
	return func(c *Config) {
		if isValidInt("Report Rations", i) {
			c.Report.Rations = i
		}
	}
}

// OptReportFormat sets the format of terminal output.
// Valid values: "table", "csv", "json".
func OptReportFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Report.Format", s) {
			c.Report.Format = s
		}
	}
}

// OptFilterUT keeps only rows with given UT values.
// Runtime-only field - not in ToOptions().
func OptFilterUT(ss []string) Option {
	return func(c *Config) {
		c.Filter.UT = cleanList(ss)
	}
}

// OptFilterRecipeType keeps only rows with given recipe types.
// Runtime-only field - not in ToOptions().
func OptFilterRecipeType(ss []string) Option {
	return func(c *Config) {
		c.Filter.RecipeType = cleanList(ss)
	}
}

// OptFilterAgeGroup keeps only rows with given age groups.
// Runtime-only field - not in ToOptions().
func OptFilterAgeGroup(ss []string) Option {
	return func(c *Config) {
		c.Filter.AgeGroup = cleanList(ss)
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per CopyFrom batch.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, reports, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func cleanList(ss []string) []string {
	var res []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

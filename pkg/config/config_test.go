package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnnutri/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnnutri"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnnutri", "logs"),
		},
		{
			msg: "report dir",
			fn:  config.ReportDir,
			res: filepath.Join(tempHome, ".local", "share", "gnnutri", "reports"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnnutri", "config.yaml"),
		},
		{
			msg: "layout file",
			fn:  config.LayoutFilePath,
			res: filepath.Join(tempHome, ".config", "gnnutri", "layout.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Input defaults
		assert.Equal(t, "", cfg.Input.Recipes)
		assert.Equal(t, "", cfg.Input.Reference)
		assert.Equal(t, "tpca", cfg.Input.SQLiteTable)

		// Report defaults
		assert.Equal(t, "", cfg.Report.Dir)
		assert.Nil(t, cfg.Report.Nutrients)
		assert.Equal(t, 1, cfg.Report.Rations)
		assert.Equal(t, "table", cfg.Report.Format)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "gnnutri", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10_000, cfg.Database.BatchSize)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
	})
}

func TestReportsDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal(t,
		filepath.Join("/home/user", ".local", "share", "gnnutri", "reports"),
		cfg.ReportsDir(),
	)

	cfg.Update([]config.Option{config.OptReportDir("/tmp/reports")})
	assert.Equal(t, "/tmp/reports", cfg.ReportsDir())
}

func TestOptionInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid path",
			input:    "/data/recetas.xlsx",
			expected: "/data/recetas.xlsx",
		},
		{
			name:     "trims whitespace",
			input:    "  /data/recetas.xlsx ",
			expected: "/data/recetas.xlsx",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{
				config.OptInputRecipes(tt.input),
				config.OptInputReference(tt.input),
			})
			assert.Equal(t, tt.expected, cfg.Input.Recipes)
			assert.Equal(t, tt.expected, cfg.Input.Reference)
		})
	}

	cfg := config.New()
	cfg.Update([]config.Option{config.OptInputSQLiteTable(" ")})
	assert.Equal(t, "tpca", cfg.Input.SQLiteTable)
	cfg.Update([]config.Option{config.OptInputSQLiteTable("tpca_2017")})
	assert.Equal(t, "tpca_2017", cfg.Input.SQLiteTable)
}

func TestOptionReportRations(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid rations",
			input:    30,
			expected: 30,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 1, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -2,
			expected: 1, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptReportRations(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Report.Rations)
		})
	}
}

func TestOptionReportNutrients(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets nutrients",
			input:    []string{"Energía (kcal)", " hierrofe_mg "},
			expected: []string{"Energía (kcal)", "hierrofe_mg"},
		},
		{
			name:     "skips blank names",
			input:    []string{"", "zinczn_mg", "  "},
			expected: []string{"zinczn_mg"},
		},
		{
			name:     "ignores empty slice",
			input:    []string{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptReportNutrients(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Report.Nutrients)
		})
	}
}

func TestOptionReportFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets csv",
			input:    "csv",
			expected: "csv",
		},
		{
			name:     "normalizes to lowercase",
			input:    "JSON",
			expected: "json",
		},
		{
			name:     "ignores invalid value",
			input:    "xml",
			expected: "table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptReportFormat(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Report.Format)
		})
	}
}

func TestOptionFilter(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptFilterUT([]string{" UT1 ", ""}),
		config.OptFilterRecipeType([]string{"Almuerzo"}),
		config.OptFilterAgeGroup(nil),
	})
	assert.Equal(t, []string{"UT1"}, cfg.Filter.UT)
	assert.Equal(t, []string{"Almuerzo"}, cfg.Filter.RecipeType)
	assert.Nil(t, cfg.Filter.AgeGroup)
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid ssl mode - require",
			input:    "require",
			expected: "require",
		},
		{
			name:     "normalizes to lowercase",
			input:    "VERIFY-FULL",
			expected: "verify-full",
		},
		{
			name:     "ignores invalid value",
			input:    "invalid",
			expected: "disable", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseSSLMode(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionLog(t *testing.T) {
	tests := []struct {
		name     string
		opt      config.Option
		field    func(*config.Config) string
		expected string
	}{
		{
			name:     "level debug",
			opt:      config.OptLogLevel("DEBUG"),
			field:    func(c *config.Config) string { return c.Log.Level },
			expected: "debug",
		},
		{
			name:     "level ignores trace",
			opt:      config.OptLogLevel("trace"),
			field:    func(c *config.Config) string { return c.Log.Level },
			expected: "info",
		},
		{
			name:     "format text",
			opt:      config.OptLogFormat("text"),
			field:    func(c *config.Config) string { return c.Log.Format },
			expected: "text",
		},
		{
			name:     "format ignores tint",
			opt:      config.OptLogFormat("tint"),
			field:    func(c *config.Config) string { return c.Log.Format },
			expected: "json",
		},
		{
			name:     "destination stderr",
			opt:      config.OptLogDestination("stderr"),
			field:    func(c *config.Config) string { return c.Log.Destination },
			expected: "stderr",
		},
		{
			name:     "destination ignores stdin",
			opt:      config.OptLogDestination("stdin"),
			field:    func(c *config.Config) string { return c.Log.Destination },
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.expected, tt.field(cfg))
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptInputRecipes("recetas.xlsx"),
			config.OptReportRations(3),
			config.OptDatabasePort(3306),
			config.OptLogLevel("debug"),
		}

		cfg.Update(opts)

		assert.Equal(t, "recetas.xlsx", cfg.Input.Recipes)
		assert.Equal(t, 3, cfg.Report.Rations)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Equal(t, "debug", cfg.Log.Level)

		// Unchanged fields keep defaults
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptReportRations(2),
			config.OptReportRations(5),
		}

		cfg.Update(opts)

		assert.Equal(t, 5, cfg.Report.Rations)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptInputRecipes("/data/recetas.xlsx"),
			config.OptInputReference("/data/tpca.sqlite"),
			config.OptInputSQLiteTable("tpca_2017"),
			config.OptReportDir("/data/reports"),
			config.OptReportNutrients([]string{"hierrofe_mg", "zinczn_mg"}),
			config.OptReportRations(4),
			config.OptReportFormat("csv"),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(3306),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabaseBatchSize(500),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
		}
		original.Update(opts)

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Input, newCfg.Input)
		assert.Equal(t, original.Report, newCfg.Report)
		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Log, newCfg.Log)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptFilterUT([]string{"UT1"}),
			config.OptFilterAgeGroup([]string{"Niños"}),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Nil(t, newCfg.Filter.UT)
		assert.Nil(t, newCfg.Filter.AgeGroup)
	})
}

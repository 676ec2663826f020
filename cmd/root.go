/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/internal/iofs"
	"github.com/gnames/gnnutri/internal/iologger"
	app "github.com/gnames/gnnutri/pkg"
	"github.com/gnames/gnnutri/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "gnnutri",
	Short:   "Computes nutritional content of recipes",
	Long: `GNnutri joins a recipe-ingredient table with a food-composition
reference table by food code and group, converts per-100g nutrient values
to the weight of every ingredient and sums them per recipe.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNNUTRI_*)
  3. Config file (~/.config/gnnutri/config.yaml)
  4. Built-in defaults

Column names of input tables are set in ~/.config/gnnutri/layout.yaml.

Examples:
  gnnutri calc -r recetas.xlsx -t tpca.xlsx
  gnnutri summary -n "Energía (kcal)" -x 2
  gnnutri detail "Arroz con leche"`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	err = iologger.Init(config.LogDir(homeDir), defaultLog, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureLayoutFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// started above
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"layout_file", config.LayoutFilePath(homeDir),
	)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "gnnutri version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnnutri")

	rootCmd.AddCommand(
		getCalcCmd(),
		getSummaryCmd(),
		getDetailCmd(),
		getNutrientsCmd(),
		getCreateCmd(),
		getMigrateCmd(),
	)
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNNUTRI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.recipes", "GNNUTRI_INPUT_RECIPES")
	v.BindEnv("input.reference", "GNNUTRI_INPUT_REFERENCE")
	v.BindEnv("input.sqlite_table", "GNNUTRI_INPUT_SQLITE_TABLE")

	// Report configuration
	v.BindEnv("report.dir", "GNNUTRI_REPORT_DIR")
	v.BindEnv("report.nutrients", "GNNUTRI_REPORT_NUTRIENTS")
	v.BindEnv("report.rations", "GNNUTRI_REPORT_RATIONS")
	v.BindEnv("report.format", "GNNUTRI_REPORT_FORMAT")

	// Database configuration
	v.BindEnv("database.host", "GNNUTRI_DATABASE_HOST")
	v.BindEnv("database.port", "GNNUTRI_DATABASE_PORT")
	v.BindEnv("database.user", "GNNUTRI_DATABASE_USER")
	v.BindEnv("database.password", "GNNUTRI_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNNUTRI_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNNUTRI_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "GNNUTRI_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "GNNUTRI_LOG_LEVEL")
	v.BindEnv("log.format", "GNNUTRI_LOG_FORMAT")
	v.BindEnv("log.destination", "GNNUTRI_LOG_DESTINATION")

	v.AutomaticEnv()
}

package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resmap/internal/app"
	"resmap/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	envPrefix          = "RESMAP"
	defaultProjectFile = "resmap-project.yaml"
)

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	Project    string
	Workers    int
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:          "resmap",
		Short:        "Resource identifier resolution for test projects",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.Project, "project", defaultProjectFile, "Project file path")
	cmd.PersistentFlags().IntVar(&cfg.Workers, "workers", 4, "Parallel library table reads")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("project", cmd.PersistentFlags().Lookup("project"))
	_ = viper.BindPFlag("workers", cmd.PersistentFlags().Lookup("workers"))

	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newResolveIDCommand())
	cmd.AddCommand(newResolveNameCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newStringCommand())
	cmd.AddCommand(newLibrariesCommand())
	return cmd
}

func newAppService() app.Service {
	service := app.NewService()
	if workers := viper.GetInt("workers"); workers > 0 {
		service.TableWorkers = workers
	}
	return service
}

func projectPath(cmd *cobra.Command) string {
	var value string
	if cmd != nil {
		value, _ = cmd.Flags().GetString("project")
	}
	path := resolveString(cmd, value, "project", "project")
	if strings.TrimSpace(path) == "" {
		return defaultProjectFile
	}
	return path
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("resmap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/resmap")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// exitCodeForError maps engine errors first, then falls back to the
// errbuilder code carried by adapter errors.
func exitCodeForError(err error) int {
	var configuration *core.ConfigurationError
	var duplicate *core.DuplicateIdentifierError
	var collision *core.IdentifierCollisionError
	var unknown *core.UnknownLibraryResourceError
	switch {
	case errors.As(err, &configuration), errors.As(err, &duplicate):
		return 2
	case errors.As(err, &collision):
		return 3
	case errors.As(err, &unknown):
		return 4
	}

	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

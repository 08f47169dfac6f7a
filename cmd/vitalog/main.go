package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/cli/askcmd"
	"github.com/julianstephens/vitalog/internal/cli/backups"
	"github.com/julianstephens/vitalog/internal/cli/fitbitcmd"
	"github.com/julianstephens/vitalog/internal/cli/food"
	"github.com/julianstephens/vitalog/internal/cli/metrics"
	"github.com/julianstephens/vitalog/internal/cli/profile"
	"github.com/julianstephens/vitalog/internal/cli/settings"
	"github.com/julianstephens/vitalog/internal/cli/trends"
	"github.com/julianstephens/vitalog/internal/cli/workouts"
	"github.com/julianstephens/vitalog/internal/config"
	"github.com/julianstephens/vitalog/internal/constants"
	apperrors "github.com/julianstephens/vitalog/internal/errors"
	"github.com/julianstephens/vitalog/internal/keyring"
	"github.com/julianstephens/vitalog/internal/logger"
	"github.com/julianstephens/vitalog/internal/storage"
	"github.com/julianstephens/vitalog/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Storage string `help:"Storage location: a .json file, a .db SQLite database, or a postgres:// marker. Overrides the config file."`

	Today   cli.TodayCmd       `cmd:"" help:"Show today's log." default:"1"`
	Weight  cli.WeightCmd      `cmd:"" help:"Record a body weight."`
	Metrics metrics.MetricsCmd `cmd:"" help:"Record daily wellness metrics."`
	Food    struct {
		Add    food.FoodAddCmd    `cmd:"" help:"Log a meal." default:"1"`
		Edit   food.FoodEditCmd   `cmd:"" help:"Edit a logged meal."`
		Delete food.FoodDeleteCmd `cmd:"" help:"Delete a logged meal."`
		List   food.FoodListCmd   `cmd:"" help:"List a day's meals."`
		Save   food.FoodSaveCmd   `cmd:"" help:"Save a logged meal as a favorite."`
		Common food.FoodCommonCmd `cmd:"" help:"List saved favorites."`
	} `cmd:"" help:"Manage meals."`
	Workout struct {
		Add    workouts.WorkoutAddCmd    `cmd:"" help:"Log a workout." default:"1"`
		Edit   workouts.WorkoutEditCmd   `cmd:"" help:"Edit a logged workout."`
		Delete workouts.WorkoutDeleteCmd `cmd:"" help:"Delete a logged workout."`
		List   workouts.WorkoutListCmd   `cmd:"" help:"List a day's workouts."`
	} `cmd:"" help:"Manage workouts."`
	Trends  trends.TrendsCmd `cmd:"" help:"Chart a metric over time."`
	Library cli.LibraryCmd   `cmd:"" help:"List the exercise library."`
	Profile struct {
		Show profile.ProfileShowCmd `cmd:"" help:"Show the profile." default:"1"`
		Edit profile.ProfileEditCmd `cmd:"" help:"Update profile fields."`
	} `cmd:"" help:"Manage the user profile."`
	Measure profile.MeasureCmd `cmd:"" help:"Record a body measurement."`
	Fitbit  struct {
		Connect    fitbitcmd.ConnectCmd    `cmd:"" help:"Authorize Fitbit access."`
		Disconnect fitbitcmd.DisconnectCmd `cmd:"" help:"Revoke Fitbit access."`
		Sync       fitbitcmd.SyncCmd       `cmd:"" help:"Sync a day's Fitbit activity." default:"1"`
	} `cmd:"" help:"Fitbit integration."`
	Ask    askcmd.AskCmd `cmd:"" help:"Ask the assistant or log in plain language."`
	Eat    askcmd.EatCmd `cmd:"" help:"Log food described in plain language."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Export   cli.ExportCmd        `cmd:"" help:"Export the full document to JSON."`
	Import   cli.ImportCmd        `cmd:"" help:"Import a previously exported document."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or update settings and targets."`
}

func openAdapter(path string) (storage.Adapter, error) {
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		if storage.HasEmbeddedCredentials(path) {
			return nil, fmt.Errorf("connection strings with embedded credentials are not allowed; store the full string in the OS keyring or %s and pass the credential-free form", constants.EnvDBConnection)
		}
		connStr := path
		if stored, err := keyring.GetConnectionString(); err == nil {
			connStr = stored
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Keyring lookup failed, using connection string as given", "error", err)
		}
		if env := os.Getenv(constants.EnvDBConnection); env != "" {
			connStr = env
		}
		return storage.NewPostgresAdapter(connStr)
	}
	if strings.HasSuffix(path, ".db") {
		return storage.NewSQLiteAdapter(path)
	}
	return storage.NewFileAdapter(path), nil
}

func main() {
	_ = godotenv.Load()

	configPath := config.DefaultPath()
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			configPath = os.Args[i+1]
		} else if strings.HasPrefix(arg, "--config=") {
			configPath = strings.TrimPrefix(arg, "--config=")
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		apperrors.Fatal(err)
	}
	cfg.ApplyEnv()

	ctx := kong.Parse(&CLI,
		kong.Name("vitalog"),
		kong.Description("Personal fitness and nutrition tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if CLI.Storage != "" {
		cfg.StoragePath = CLI.Storage
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir()}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	adapter, err := openAdapter(cfg.StoragePath)
	if err != nil {
		apperrors.Fatal(err)
	}

	st := store.Open(adapter)
	appCtx := &cli.Context{Store: st, Config: cfg}

	runErr := ctx.Run(appCtx)

	st.Flush()
	if err := adapter.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}
	if runErr != nil {
		apperrors.Fatal(runErr)
	}
}

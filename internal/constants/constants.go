package constants

const (
	AppName           = "vitalog"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/vitalog/vitalog.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DocumentKey is the fixed key the serialized document is stored under,
	// regardless of which storage backend holds it.
	DocumentKey = "vitalogData"

	// Keyring users
	KeyringFitbitUser   = "fitbit-tokens"
	KeyringPostgresUser = "database-connection"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "vitalog-"

	// ExportFilePrefix is the prefix for exported document files; the current
	// date and ".json" are appended.
	ExportFilePrefix = "vitalog_data_"

	// RecentLogCount is how many recent daily logs are folded into the
	// assistant context bundle.
	RecentLogCount = 3

	// Environment variables read at startup (godotenv loads .env first).
	EnvFitbitClientID     = "FITBIT_CLIENT_ID"
	EnvFitbitClientSecret = "FITBIT_CLIENT_SECRET"
	EnvGeminiAPIKey       = "GEMINI_API_KEY"
	EnvDBConnection       = "VITALOG_DB_CONNECTION"
)

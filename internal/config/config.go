package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Data    DataConfig    `mapstructure:"data" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Study   StudyConfig   `mapstructure:"study" validate:"required"`
}

// DataConfig locates the on-disk stores. Dir is the base directory;
// the three file settings are resolved relative to it unless absolute.
type DataConfig struct {
	Dir         string `mapstructure:"dir" validate:"required"`
	CatalogFile string `mapstructure:"catalog_file" validate:"required"`
	ReviewFile  string `mapstructure:"review_file" validate:"required"`
	DailyFile   string `mapstructure:"daily_file" validate:"required"`
}

// LoggingConfig contains all logging-related configuration settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// StudyConfig contains the scheduler tunables.
type StudyConfig struct {
	SessionSize   int `mapstructure:"session_size" validate:"required,gt=0,lte=500"`
	DefaultNewCap int `mapstructure:"default_new_cap" validate:"required,gt=0,lte=1000"`
}

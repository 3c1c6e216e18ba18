package service

import "time"

// Config defines application settings.
type Config struct {
	HTTPPort        int           `envconfig:"HTTP_PORT" default:"8080" desc:"HTTP listen port."`
	DBPath          string        `envconfig:"DB_PATH" default:"mockva.db" desc:"SQLite database file."`
	SwaggerFilePath string        `envconfig:"SWAGGER_FILE_PATH" desc:"Swagger UI distribution directory, embedded assets are served if empty."`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" desc:"Log level: debug, info, warn, error."`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s" desc:"Graceful shutdown deadline."`

	Version string `ignored:"true"`
}

package database

import "fmt"

// Driver identifies a supported database backend. The set is closed; adding
// a backend means adding a constant and a connection function here.
type Driver string

const (
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
)

// Config holds configuration for a database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"recon"`
	// Driver is the database driver (mysql, postgres).
	Driver Driver `mapstructure:"driver" default:"mysql"`
	// TimeoutSeconds bounds connection setup and per-query I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports whether the configured driver is one of the supported
// backends.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverMySQL, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

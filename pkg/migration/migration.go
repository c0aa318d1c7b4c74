package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	// drivers for migrate
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func newMigrate(rootDir string, dsn string) *migrate.Migrate {
	sourceURL := "file://" + path.Join(rootDir, "migrations")
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateUpForTesting drops everything and migrates up to the latest version
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate(rootDir, dsn)
	if err := m.Drop(); err != nil {
		panic(err)
	}
	_, _ = m.Close()

	m = newMigrate(rootDir, dsn)
	defer func() { _, _ = m.Close() }()

	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}

// CommandUp ...
func CommandUp(rootDir string, getDSN func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "migrate up to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(rootDir, getDSN())
			defer func() { _, _ = m.Close() }()
			return ignoreNoChange(m.Up())
		},
	}
}

// CommandDown ...
func CommandDown(rootDir string, getDSN func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "migrate down by the number of steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[0])
			if err != nil || steps <= 0 {
				return fmt.Errorf("invalid steps: %q", args[0])
			}
			m := newMigrate(rootDir, getDSN())
			defer func() { _, _ = m.Close() }()
			return ignoreNoChange(m.Steps(-steps))
		},
	}
}

// CommandForce sets the version without running migrations, for recovering a dirty state
func CommandForce(rootDir string, getDSN func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "force [version]",
		Short: "force the migration version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version: %q", args[0])
			}
			m := newMigrate(rootDir, getDSN())
			defer func() { _, _ = m.Close() }()
			return m.Force(version)
		},
	}
}

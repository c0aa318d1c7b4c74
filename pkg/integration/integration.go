package integration

import (
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/QuangTung97/finledger/config"
	"github.com/QuangTung97/finledger/pkg/migration"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// TestCase ...
type TestCase struct {
	DB     *sqlx.DB
	Conf   config.Config
	Logger *zap.Logger
}

var initOnce sync.Once

var globalConf config.Config
var globalDB *sqlx.DB
var globalLogger *zap.Logger

// NewTestCase migrates the test database once per process
func NewTestCase() *TestCase {
	initOnce.Do(func() {
		rootDir := findRootDir()

		conf := config.LoadTestConfig(rootDir)
		migration.MigrateUpForTesting(rootDir, conf.MySQL.DSN())

		logger := config.NewLogger(conf.Log)
		db := conf.MySQL.MustConnect(logger)

		globalConf = conf
		globalDB = db
		globalLogger = logger
	})

	return &TestCase{
		Conf:   globalConf,
		DB:     globalDB,
		Logger: globalLogger,
	}
}

// Truncate ...
func (tc *TestCase) Truncate(table string) {
	tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
}

// TruncateAll empties the event, outbox and read model tables
func (tc *TestCase) TruncateAll() {
	for _, table := range []string{
		"events", "outbox", "projection_checkpoint",
		"account_projection", "daily_aggregate", "budget_status",
	} {
		tc.Truncate(table)
	}
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		files, err := os.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if file.Name() == "go.mod" {
				return directory
			}
		}

		directory = path.Dir(directory)
	}
}

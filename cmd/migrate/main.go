package main

import (
	"fmt"
	"os"

	"github.com/QuangTung97/finledger/config"
	"github.com/QuangTung97/finledger/pkg/migration"
	"github.com/spf13/cobra"
)

func main() {
	getDSN := func() string {
		return config.Load().MySQL.DSN()
	}

	rootCmd := cobra.Command{
		Use:   "migrate",
		Short: "manage the ledger database schema",
	}
	rootCmd.AddCommand(
		migration.CommandUp(".", getDSN),
		migration.CommandDown(".", getDSN),
		migration.CommandForce(".", getDSN),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}
}

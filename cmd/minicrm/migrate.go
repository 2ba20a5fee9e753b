package main

import (
	"github.com/Shattajit/Mini-CRM/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, log, gdb, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			_ = db.Close(gdb)
			_ = log.Sync()
		}()

		log.Info("database schema is up to date")
		return nil
	},
}

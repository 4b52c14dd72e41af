/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suggestion-board/board/internal/db"
	"github.com/suggestion-board/board/internal/services"
	"github.com/suggestion-board/board/internal/storage"
	"github.com/suggestion-board/board/internal/store"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON snapshot of the board to object storage",
	Long: `Writes every user (without password hashes), suggestion and like to
exports/board-<UTC timestamp>.json in the configured MinIO or GCS bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbConn, err := db.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		objects, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return err
		}

		exporter := services.NewExportService(
			store.NewUserRepository(dbConn),
			store.NewSuggestionRepository(dbConn),
			store.NewLikeRepository(dbConn),
			objects,
		)
		key, err := exporter.Export(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "exported board to %s/%s\n", objects.Bucket(), key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

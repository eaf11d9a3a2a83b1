package cmd

import (
	"fmt"

	"github.com/BerniceZTT/estate_end/repository"
	"github.com/BerniceZTT/estate_end/service"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every property; call records are kept",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "confirm removal of all properties")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return fmt.Errorf("refusing to clear properties without --yes")
	}

	db, err := connectMongo(cmd.Context())
	if err != nil {
		return fmt.Errorf("连接MongoDB失败: %w", err)
	}
	defer closeMongo(db)

	properties := service.NewPropertyService(repository.NewPropertyRepository(db))
	removed, err := properties.Clear(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d properties\n", removed)
	return nil
}

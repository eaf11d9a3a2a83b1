package cmd

import (
	"fmt"
	"os"

	"github.com/BerniceZTT/estate_end/repository"
	"github.com/BerniceZTT/estate_end/service"

	"github.com/spf13/cobra"
)

var importFile string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import properties from an Excel workbook",
	Long:  "Import properties from the first worksheet of an .xlsx or .xls file, same as POST /api/upload-excel",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Excel file to import (required)")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(importFile)
	if err != nil {
		return fmt.Errorf("打开文件失败: %w", err)
	}
	defer f.Close()

	db, err := connectMongo(cmd.Context())
	if err != nil {
		return fmt.Errorf("连接MongoDB失败: %w", err)
	}
	defer closeMongo(db)

	properties := service.NewPropertyService(repository.NewPropertyRepository(db))
	count, err := properties.Upload(cmd.Context(), importFile, f)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), service.UploadMessage(count))
	return nil
}

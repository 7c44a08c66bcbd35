package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"munchies/internal/reports"
	"munchies/internal/storage"
)

func buildExportCmd() *cobra.Command {
	var (
		outDir string
		dated  bool
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write index.html plus a PNG and JSON description per chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.ExportDir
			}

			generator, err := reports.NewReportGenerator(reports.Options{
				SpoonImagePath: cfg.SpoonImagePath,
				EChartsURL:     cfg.EChartsCDNURL,
				DebugAssets:    cfg.DebugAssets,
			})
			if err != nil {
				return err
			}

			files, err := generator.GenerateFiles(cmd.Context())
			if err != nil {
				return err
			}
			if dated {
				files.FolderPath = storage.GenerateExportFolderPath(time.Now())
			}

			client, err := storage.NewLocalStorageClient(outDir)
			if err != nil {
				return err
			}
			defer client.Close()

			stored, err := reports.NewStorageOrchestrator(client).StoreAllFiles(cmd.Context(), files)
			if err != nil {
				return err
			}

			for _, p := range stored {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	exportCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to EXPORT_DIR)")
	exportCmd.Flags().BoolVar(&dated, "dated", false, "Store below a YYYY/MM/DD/munchies-<timestamp> folder")

	return exportCmd
}

// Package main provides the CLI entry point for messmenu.
package main

import (
	"errors"
	goflag "flag"
	"fmt"
	"os"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu"
	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/config"
	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/output"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	outputPath     string
	pretty         bool
	rowsOnly       bool
	summaryOnly    bool
	configPath     string
	usePrintArea   bool
	headerScanRows int
)

// errParseFailed marks a run whose workbook produced no menu.
var errParseFailed = errors.New("menu parse failed")

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errParseFailed) {
			klog.Error(err)
		}
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "messmenu [menu.xlsx]",
		Short: "Parse a mess menu spreadsheet",
		Long: `messmenu reads the first sheet of a mess menu workbook, infers where the
day columns and meal sections are, and outputs the weekly menu as JSON.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&rowsOnly, "items", false, "Output a flat list of menu rows instead of the full result")
	rootCmd.Flags().BoolVar(&summaryOnly, "summary", false, "Output the admin summary text instead of JSON")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML options file (default: $"+config.EnvConfigPath+")")
	rootCmd.Flags().BoolVar(&usePrintArea, "use-print-area", false, "Parse only the sheet's print area when defined")
	rootCmd.Flags().IntVar(&headerScanRows, "header-scan-rows", 0, "Rows searched for the day header (default 15)")

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if err := config.LoadEnv(); err != nil {
		klog.Warningf("%v", err)
	}

	opts, err := config.Load(config.ResolvePath(configPath))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("use-print-area") {
		opts.UsePrintArea = &usePrintArea
	}
	if headerScanRows > 0 {
		opts.HeaderScanRows = headerScanRows
	}

	result, err := messmenu.ParseFile(inputPath, opts)
	if err != nil {
		return err
	}
	klog.V(1).Infof("parsed %s: %s", inputPath, output.StatsLine(result.Stats))

	data, err := render(result)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(string(data))
	}

	if !result.OK() {
		return errParseFailed
	}
	return nil
}

func render(result *models.ParseResult) ([]byte, error) {
	switch {
	case summaryOnly:
		return []byte(output.Summary(result)), nil
	case rowsOnly:
		return output.RowsToJSON(result, pretty)
	default:
		return output.ToJSON(result, pretty)
	}
}

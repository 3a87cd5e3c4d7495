package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/xab-mack/stylusaudit/internal/config"
	"github.com/xab-mack/stylusaudit/internal/engine"
	"github.com/xab-mack/stylusaudit/internal/model"
	"github.com/xab-mack/stylusaudit/internal/report"
	"github.com/xab-mack/stylusaudit/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newAuditCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRulesCmd())
}

func newAuditCmd() *cobra.Command {
	var (
		format        string
		failOn        string
		outputFile    string
		useTUI        bool
		baselinePath  string
		writeBaseline string
		verbose       bool
	)
	cmd := &cobra.Command{
		Use:   "audit <contract>",
		Short: "Audit a smart contract source file for weaknesses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			cfg, _, err := config.Load(filepath.Dir(path))
			if err != nil {
				return err
			}

			level := hclog.Warn
			if verbose {
				level = hclog.Debug
			}
			log := hclog.New(&hclog.LoggerOptions{
				Name:   "stylusaudit",
				Output: cmd.ErrOrStderr(),
				Level:  level,
			})

			eng := engine.New(cfg, log)
			res, err := eng.Audit(cmd.Context(), string(source), path)
			if err != nil {
				return err
			}

			res, err = engine.ApplyBaseline(res, baselinePath)
			if err != nil {
				return err
			}
			rep := report.Summarize(res)

			if writeBaseline != "" {
				if err := engine.WriteBaseline(writeBaseline, res); err != nil {
					return err
				}
			}

			if useTUI {
				// TUI mode ignores format flags
				return tui.Run(rep)
			}
			switch format {
			case "json":
				data, _ := json.MarshalIndent(rep, "", "  ")
				if outputFile != "" {
					return os.WriteFile(outputFile, data, 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "sarif":
				data, err := report.ToSARIF(rep, path)
				if err != nil {
					return err
				}
				if outputFile != "" {
					return os.WriteFile(outputFile, data, 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				fmt.Fprint(cmd.OutOrStdout(), report.Render(rep, path))
			}

			if failOn != "" {
				threshold := model.ParseSeverity(failOn)
				for _, v := range rep.All() {
					if model.SeverityGTE(v.Severity, threshold) {
						return fmt.Errorf("fail-on threshold met: %s", v.Severity)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|sarif")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Fail if a finding of severity or higher is found (low|medium|high|critical)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file instead of stdout")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Render interactive TUI output")
	cmd.Flags().StringVar(&baselinePath, "baseline", "", "Suppress findings listed in a baseline file")
	cmd.Flags().StringVar(&writeBaseline, "write-baseline", "", "Write a baseline file with finding fingerprints")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

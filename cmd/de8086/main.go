package main

import (
	"bufio"
	"fmt"
	"os"

	"de8086/pkg/batch"
	"de8086/pkg/decode"
	"de8086/pkg/report"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "de8086",
		Short: "de8086 — Intel 8086 disassembler",
	}

	var verbose bool
	var jsonOut string

	disasmCmd := &cobra.Command{
		Use:   "disasm <file>",
		Short: "Disassemble a flat bits-16 binary to NASM-compatible assembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			input, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			result, err := decode.Run(input, verbose)
			if err != nil {
				return fmt.Errorf("disassembling %s: %w", path, err)
			}

			w := bufio.NewWriter(os.Stdout)
			if _, err := w.WriteString(decode.Banner(path)); err != nil {
				return err
			}
			if _, err := w.Write(result.Text); err != nil {
				return err
			}
			if verbose && result.UnparsedBytes > 0 {
				if _, err := w.WriteString(decode.UnparsedWarning(input, result.ConsumedBytes)); err != nil {
					return err
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if jsonOut != "" {
				summary := report.Summary{
					File:          path,
					BytesTotal:    len(input),
					BytesConsumed: result.ConsumedBytes,
					Instructions:  result.Instructions,
					Labels:        result.Labels,
					UnparsedBytes: result.UnparsedBytes,
				}
				if err := report.WriteJSON(jsonOut, []report.Summary{summary}); err != nil {
					return fmt.Errorf("writing %s: %w", jsonOut, err)
				}
			}
			return nil
		},
	}
	disasmCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "annotate each line with its raw input bytes")
	disasmCmd.Flags().StringVar(&jsonOut, "json", "", "write a run summary to this JSON file")

	var batchWorkers int
	var batchOutputDir string
	var batchJSONOut string

	batchCmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Disassemble multiple files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if batchOutputDir != "" {
				if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
					return fmt.Errorf("creating %s: %w", batchOutputDir, err)
				}
			}

			jobs := make([]batch.Job, len(args))
			for i, path := range args {
				jobs[i] = batch.Job{Path: path}
			}

			wp := batch.NewWorkerPool(batchWorkers)
			summaries := wp.Run(jobs, batch.Options{
				Verbose:   verbose,
				OutputDir: batchOutputDir,
			})

			failed := 0
			for _, s := range summaries {
				status := "ok"
				if s.Error != "" {
					status = "error: " + s.Error
					failed++
				} else if s.UnparsedBytes > 0 {
					status = fmt.Sprintf("%d byte(s) unparsed", s.UnparsedBytes)
				}
				fmt.Printf("  %-40s %4d instructions  %s\n", s.File, s.Instructions, status)
			}

			if batchJSONOut != "" {
				if err := report.WriteJSON(batchJSONOut, summaries); err != nil {
					return fmt.Errorf("writing %s: %w", batchJSONOut, err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed", failed, len(summaries))
			}
			return nil
		},
	}
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "number of concurrent workers (0 = NumCPU)")
	batchCmd.Flags().StringVar(&batchOutputDir, "output", "", "directory to write each file's .asm output")
	batchCmd.Flags().StringVar(&batchJSONOut, "json", "", "write aggregated run summaries to this JSON file")
	batchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "annotate each line with its raw input bytes")

	rootCmd.AddCommand(disasmCmd, batchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

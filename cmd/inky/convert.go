package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inky/core/logger"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Convert templates to table markup",
		Long: `Converts each file and prints the result. With no files the template is read from stdin.
With --out the results are written to that directory under their original names.`,
		RunE: runConvert,
	}
	cmd.Flags().StringP("out", "o", "", "directory to write converted files to")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	converter, log, err := newConverter(cmd)
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("out")
	ctx := cmd.Context()

	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		html, err := converter.Transform(ctx, string(src))
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), html)
		return err
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		html, err := converter.Transform(ctx, string(src))
		if err != nil {
			log.ErrorContext(ctx, "conversion failed", logger.Path(path), logger.Error(err))
			return fmt.Errorf("convert %s: %w", path, err)
		}

		if outDir == "" {
			if _, err := io.WriteString(cmd.OutOrStdout(), html); err != nil {
				return err
			}
			continue
		}

		dst := filepath.Join(outDir, filepath.Base(path))
		if err := os.WriteFile(dst, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		log.InfoContext(ctx, "template converted", logger.Path(dst))
	}
	return nil
}

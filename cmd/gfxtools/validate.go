package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bow/gfxtools/refflat"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <refflat-file>",
		Short: "Stream a refFlat file through gene-model inference and report the first error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
	return cmd
}

func runValidate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	tr := refflat.NewTranscriptReader(f)
	var count int
	for {
		tx, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Errorw("transcript rejected", "path", path, "index", count, "error", err.Error())
			return fmt.Errorf("record %d: %w", count, err)
		}
		count++
		id, _ := tx.ID()
		logger.Debugw("transcript accepted", "id", id, "exons", len(tx.Exons()))
	}
	fmt.Printf("%s: %d transcripts valid\n", path, count)
	return nil
}

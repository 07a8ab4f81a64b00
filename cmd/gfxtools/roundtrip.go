package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bow/gfxtools/refflat"
)

func newRoundtripCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "roundtrip <refflat-file>",
		Short: "Read genes from a refFlat file and re-emit them, proving the codec round-trips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundtrip(args[0], outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default stdout)")
	return cmd
}

func runRoundtrip(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)
	defer bw.Flush()

	gr := refflat.NewGeneReader(in)
	rw := refflat.NewRecordWriter(bw)
	var genes int
	for {
		gene, err := gr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Errorw("gene rejected", "path", inPath, "index", genes, "error", err.Error())
			return fmt.Errorf("gene %d: %w", genes, err)
		}
		if err := rw.WriteGene(gene); err != nil {
			return fmt.Errorf("writing gene %d: %w", genes, err)
		}
		genes++
	}
	if err := rw.Flush(); err != nil {
		return err
	}
	logger.Infow("roundtrip complete", "path", inPath, "genes", genes)
	return nil
}

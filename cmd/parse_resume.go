package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hiringplatform/backend/resume"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume <file>",
	Short: "Extract structured fields from a PDF or DOCX resume and print them as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		parser := resume.NewParser()

		if !parser.IsSupportedFormat(path) {
			return fmt.Errorf("unsupported file format %q", filepath.Ext(path))
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		parsed, err := parser.Parse(content, filepath.Base(path))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	},
}

func init() {
	rootCmd.AddCommand(parseResumeCmd)
}

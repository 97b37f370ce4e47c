package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"coursebuild/internal/export"
	"coursebuild/internal/logging"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export <builder.json>",
		Short: "Write a builder JSON file out as a playback course folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.WithComponent(ctx.ensureLogger(), "export")

			c, err := readBuilderFile(args[0])
			if err != nil {
				return err
			}
			if c.CourseCode == "" {
				return fmt.Errorf("builder json has no courseCode")
			}

			target := outputDir
			if target == "" {
				if err := cfg.EnsureDirectories(); err != nil {
					return err
				}
				target = filepath.Join(cfg.Paths.OutputDir, c.CourseCode)
			}
			if err := export.WriteCourse(target, *c); err != nil {
				return fmt.Errorf("write course: %w", err)
			}

			logger.Info("course exported",
				"code", c.CourseCode,
				"lessons", len(c.Lessons),
				"dir", target)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d lessons to %s\n", len(c.Lessons), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Course directory to write (default <output_dir>/<courseCode>)")
	return cmd
}

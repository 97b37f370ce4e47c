package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"coursebuild/internal/draft"
)

func newDraftCommand(ctx *commandContext) *cobra.Command {
	draftCmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage autosaved course drafts",
	}

	draftCmd.AddCommand(newDraftSaveCommand(ctx))
	draftCmd.AddCommand(newDraftLoadCommand(ctx))
	draftCmd.AddCommand(newDraftListCommand(ctx))
	draftCmd.AddCommand(newDraftDeleteCommand(ctx))

	return draftCmd
}

func (c *commandContext) withDraftStore(fn func(*draft.SQLStore) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	store, err := draft.Open(cfg.Paths.StatePath)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newDraftSaveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save <course-code> [builder.json]",
		Short: "Save a builder JSON file as a draft (reads stdin without a file)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if len(args) == 2 {
				raw, err = os.ReadFile(args[1])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read draft payload: %w", err)
			}

			return ctx.withDraftStore(func(store *draft.SQLStore) error {
				if err := store.Set(cmd.Context(), args[0], string(raw)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved draft %s (%d bytes)\n", args[0], len(raw))
				return nil
			})
		},
	}
}

func newDraftLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load <course-code>",
		Short: "Print a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withDraftStore(func(store *draft.SQLStore) error {
				payload, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), payload)
				return nil
			})
		},
	}
}

func newDraftListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withDraftStore(func(store *draft.SQLStore) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No drafts saved")
					return nil
				}
				headers := []string{"Course", "Size", "Updated"}
				aligns := []columnAlignment{alignLeft, alignRight, alignLeft}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						entry.Key,
						fmt.Sprintf("%d B", entry.Size),
						entry.UpdatedAt.Local().Format("2006-01-02 15:04:05"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(), headers, rows, aligns))
				return nil
			})
		},
	}
}

func newDraftDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <course-code>",
		Short: "Delete a saved draft and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withDraftStore(func(store *draft.SQLStore) error {
				if err := store.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted draft %s\n", args[0])
				return nil
			})
		},
	}
}

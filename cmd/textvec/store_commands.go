package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samuel/go-vectorizer/dataset"
)

func newStoreCommand(ctx *commandContext) *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the labeled document store",
	}

	storeCmd.AddCommand(newStoreInitCommand(ctx))
	storeCmd.AddCommand(newStoreAddCommand(ctx))
	storeCmd.AddCommand(newStoreImportCommand(ctx))
	storeCmd.AddCommand(newStoreListCommand(ctx))
	storeCmd.AddCommand(newStoreCategoriesCommand(ctx))
	storeCmd.AddCommand(newStoreRemoveCommand(ctx))

	return storeCmd
}

// withStore runs fn against the sqlite store and closes it afterwards.
func withStore(ctx *commandContext, fn func(dataset.Store) error) error {
	store, closeStore, err := ctx.openStore()
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}

func newStoreInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the store database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(dataset.Store) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Store ready at %s\n", ctx.config.Store.Path)
				return nil
			})
		},
	}
}

func newStoreAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <text>",
		Short: "Add a document, creating its category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(store dataset.Store) error {
				if err := store.AddCategory(args[0]); err != nil {
					return err
				}
				id, err := store.AddDocument(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
}

func newStoreImportCommand(ctx *commandContext) *cobra.Command {
	var header bool
	var labelColumn string

	cmd := &cobra.Command{
		Use:   "import <labeled.csv>",
		Short: "Import labeled documents from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			column := ctx.config.Classifier.LabelColumn
			if cmd.Flags().Changed("label-column") {
				column = labelColumn
			}
			pos, err := dataset.ParseLabelPosition(column)
			if err != nil {
				return err
			}
			docs, err := readLabeledFile(cmd, args[0], header, pos)
			if err != nil {
				return err
			}
			return withStore(ctx, func(store dataset.Store) error {
				if err := importDocuments(store, docs); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d documents\n", len(docs))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&header, "header", false, "Skip the first CSV record")
	cmd.Flags().StringVar(&labelColumn, "label-column", "", "Label column: first or last")
	return cmd
}

func newStoreListCommand(ctx *commandContext) *cobra.Command {
	var categories []string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(store dataset.Store) error {
				docs, err := store.Documents(categories)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, docs)
				}
				if len(docs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No documents")
					return nil
				}
				rows := make([][]string, len(docs))
				for i, d := range docs {
					rows[i] = []string{d.ID, d.Category, d.Text}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(documentColumns, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&categories, "category", nil, "Only list documents of this category (repeatable)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a table")
	return cmd
}

func newStoreCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their document counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(store dataset.Store) error {
				counts, err := store.Categories()
				if err != nil {
					return err
				}
				names, err := dataset.CategoryNames(store)
				if err != nil {
					return err
				}
				rows := make([][]string, len(names))
				for i, name := range names {
					rows[i] = []string{name, strconv.FormatInt(counts[name], 10)}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(categoryColumns, rows))
				return nil
			})
		},
	}
}

func newStoreRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a document by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(store dataset.Store) error {
				if err := store.RemoveDocument(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/martijn/trainhub/internal/adapter/apiclient"
	"github.com/martijn/trainhub/internal/core/domain"
)

// collection is the view-model surface the resource commands drive.
type collection[D any, C, U apiclient.Payload] interface {
	FetchAll(ctx context.Context) error
	Get(ctx context.Context, id int64) (D, error)
	Create(ctx context.Context, payload C) (D, error)
	Update(ctx context.Context, id int64, payload U) (D, error)
	Delete(ctx context.Context, id int64) error
	SetSearch(q string)
	FilteredItems() []D
}

// resourceSpec describes the commands of one backend resource.
type resourceSpec[V collection[D, C, U], D any, C, U apiclient.Payload] struct {
	name  string
	short string
	open  func(*Services) V

	columns []string
	row     func(D) []string
	detail  func(D) [][2]string

	// listFlags registers extra list filters; applyFilters reads them.
	listFlags    func(*cobra.Command)
	applyFilters func(*cobra.Command, V) error

	// sessions is nil for resources sessions do not reference.
	sessions func(V, context.Context, int64) ([]domain.Session, error)
}

func newResourceCmd[V collection[D, C, U], D any, C, U apiclient.Payload](spec resourceSpec[V, D, C, U]) *cobra.Command {
	parent := &cobra.Command{
		Use:   spec.name,
		Short: spec.short,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List " + spec.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			vm := spec.open(services)
			search, _ := cmd.Flags().GetString("search")
			vm.SetSearch(search)
			if spec.applyFilters != nil {
				if err := spec.applyFilters(cmd, vm); err != nil {
					return err
				}
			}

			if err := vm.FetchAll(cmd.Context()); err != nil {
				return fmt.Errorf("failed to list %s: %w", spec.name, err)
			}

			items := vm.FilteredItems()
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s found\n", spec.name)
				return nil
			}
			return printTable(cmd.OutOrStdout(), spec.columns, items, spec.row)
		},
	}
	list.Flags().String("search", "", "free-text search")
	if spec.listFlags != nil {
		spec.listFlags(list)
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			services, err := initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			item, err := spec.open(services).Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get %s %d: %w", spec.name, id, err)
			}
			return printDetail(cmd.OutOrStdout(), spec.detail(item))
		},
	}

	create := &cobra.Command{
		Use:   "create --file <path>",
		Short: "Create a record from a JSON file ('-' reads stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload C
			if err := readPayload(cmd, &payload); err != nil {
				return err
			}
			services, err := initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			item, err := spec.open(services).Create(cmd.Context(), payload)
			if err != nil {
				return fmt.Errorf("failed to create: %w", err)
			}
			return printDetail(cmd.OutOrStdout(), spec.detail(item))
		},
	}
	create.Flags().StringP("file", "f", "", "JSON payload")
	_ = create.MarkFlagRequired("file")

	update := &cobra.Command{
		Use:   "update <id> --file <path>",
		Short: "Update a record; keys absent from the file are left unchanged, null clears",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var payload U
			if err := readPayload(cmd, &payload); err != nil {
				return err
			}
			services, err := initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			item, err := spec.open(services).Update(cmd.Context(), id, payload)
			if err != nil {
				return fmt.Errorf("failed to update %s %d: %w", spec.name, id, err)
			}
			return printDetail(cmd.OutOrStdout(), spec.detail(item))
		},
	}
	update.Flags().StringP("file", "f", "", "JSON payload")
	_ = update.MarkFlagRequired("file")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			services, err := initServices(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to delete %s %d? (yes/no): ", spec.name, id)
				var confirm string
				fmt.Fscanln(cmd.InOrStdin(), &confirm)
				if confirm != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if err := spec.open(services).Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete %s %d: %w", spec.name, id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d\n", spec.name, id)
			return nil
		},
	}
	del.Flags().BoolP("yes", "y", false, "skip the confirmation")

	parent.AddCommand(list, get, create, update, del)

	if spec.sessions != nil {
		parent.AddCommand(&cobra.Command{
			Use:   "sessions <id>",
			Short: "List the sessions linked to a record",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				services, err := initServices(cmd.Context())
				if err != nil {
					return err
				}
				defer services.Close()

				sessions, err := spec.sessions(spec.open(services), cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("failed to list sessions: %w", err)
				}
				if len(sessions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No sessions found")
					return nil
				}
				return printTable(cmd.OutOrStdout(), sessionColumns, sessions, sessionRow)
			},
		})
	}

	return parent
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

// readPayload decodes the --file JSON into out.
func readPayload(cmd *cobra.Command, out any) error {
	path, _ := cmd.Flags().GetString("file")

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid payload in %s: %w", path, err)
	}
	return nil
}

func printTable[T any](w io.Writer, columns []string, items []T, row func(T) []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, item := range items {
		fmt.Fprintln(tw, strings.Join(row(item), "\t"))
	}
	return tw.Flush()
}

// printDetail prints label/value pairs, skipping empty values.
func printDetail(w io.Writer, fields [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%s\n", f[0], f[1])
	}
	return tw.Flush()
}

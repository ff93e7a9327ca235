package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/ostafen/interval"
	"github.com/ostafen/interval/catalog"
	"github.com/ostafen/interval/store"
	"github.com/ostafen/interval/store/badger"
	"github.com/ostafen/interval/store/bbolt"
	"github.com/spf13/cobra"
)

func (a *app) openStore() (store.Store, error) {
	dir := a.config.GetString(cfgCatalogDir)

	switch backend := a.config.GetString(cfgCatalogBackend); backend {
	case backendBolt:
		return bbolt.Open(dir)
	case backendBadger:
		return badger.Open(dir, badger.WithLogger(a.logger))
	case backendMemory:
		return badger.OpenInMemory(badger.WithLogger(a.logger))
	default:
		return nil, errors.Newf("unknown catalog backend %q", backend)
	}
}

// withCatalog runs fn on the configured catalog, closing it afterwards.
func (a *app) withCatalog(fn func(c *catalog.Catalog) error) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}

	c, err := catalog.Open(s, catalog.WithLogger(a.logger))
	if err != nil {
		return errors.CombineErrors(err, s.Close())
	}

	return errors.CombineErrors(fn(c), c.Close())
}

func (a *app) printRecords(cmd *cobra.Command, records []*catalog.Record) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\n", r.Name, a.format(r.Interval))
	}
	return w.Flush()
}

func (a *app) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Store and look up named intervals",
	}

	cmd.AddCommand(
		a.catalogPutCommand(),
		a.catalogGetCommand(),
		a.catalogRemoveCommand(),
		a.catalogListCommand(),
		a.catalogFindCommand(),
		a.catalogExportCommand(),
		a.catalogImportCommand(),
	)
	return cmd
}

func (a *app) catalogPutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "put <name> <interval>",
		Short: "Store an interval under a name, replacing the previous one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := interval.Parse(args[1])
			if err != nil {
				return err
			}

			return a.withCatalog(func(c *catalog.Catalog) error {
				record, err := c.Put(args[0], i)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), record.ID)
				return nil
			})
		},
	}
}

func (a *app) catalogGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print the interval stored under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(func(c *catalog.Catalog) error {
				record, err := c.Get(args[0])
				if err != nil {
					return err
				}
				a.println(cmd, record.Interval)
				return nil
			})
		},
	}
}

func (a *app) catalogRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>...",
		Aliases: []string{"delete"},
		Short:   "Remove named intervals",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(func(c *catalog.Catalog) error {
				for _, name := range args {
					if err := c.Delete(name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) catalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the stored intervals in ascending order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(func(c *catalog.Catalog) error {
				records, err := c.List()
				if err != nil {
					return err
				}
				return a.printRecords(cmd, records)
			})
		},
	}
}

func (a *app) catalogFindCommand() *cobra.Command {
	var (
		containing   string
		intersecting string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "List the stored intervals containing a value or intersecting an interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (containing == "") == (intersecting == "") {
				return errors.New("exactly one of --contains and --intersects is required")
			}

			return a.withCatalog(func(c *catalog.Catalog) error {
				var records []*catalog.Record

				if containing != "" {
					v, err := parseValue(containing)
					if err != nil {
						return err
					}

					if records, err = c.Containing(v); err != nil {
						return err
					}
				} else {
					i, err := interval.Parse(intersecting)
					if err != nil {
						return err
					}

					if records, err = c.Intersecting(i); err != nil {
						return err
					}
				}
				return a.printRecords(cmd, records)
			})
		},
	}

	cmd.Flags().StringVar(&containing, "contains", "", "value the intervals must contain")
	cmd.Flags().StringVar(&intersecting, "intersects", "", "interval the intervals must intersect")
	return cmd
}

func (a *app) catalogExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the catalog as JSON to a file, or to the standard output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(func(c *catalog.Catalog) error {
				if len(args) == 0 {
					return c.Export(cmd.OutOrStdout())
				}
				return c.ExportFile(args[0])
			})
		},
	}
}

func (a *app) catalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Store the records of a JSON file produced by export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(func(c *catalog.Catalog) error {
				n, err := c.ImportFile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d intervals imported\n", n)
				return nil
			})
		},
	}
}

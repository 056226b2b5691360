package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"storedesk/internal/config"
	"storedesk/internal/export"
	"storedesk/internal/store"
)

var exportTargets = map[string]func(*store.Store, io.Writer) error{
	"clients": func(st *store.Store, w io.Writer) error {
		rows, err := st.LoadClients()
		if err != nil {
			return err
		}
		return export.WriteClients(w, rows)
	},
	"products": func(st *store.Store, w io.Writer) error {
		rows, err := st.LoadProducts()
		if err != nil {
			return err
		}
		return export.WriteProducts(w, rows)
	},
	"orders": func(st *store.Store, w io.Writer) error {
		rows, err := st.LoadOrders()
		if err != nil {
			return err
		}
		return export.WriteOrders(w, rows)
	},
	"top-clients": func(st *store.Store, w io.Writer) error {
		rows, err := st.TopClients()
		if err != nil {
			return err
		}
		return export.WriteTopClients(w, rows)
	},
	"trend": func(st *store.Store, w io.Writer) error {
		rows, err := st.OrderTrend()
		if err != nil {
			return err
		}
		return export.WriteTrend(w, rows)
	},
	"graph": func(st *store.Store, w io.Writer) error {
		rows, err := st.ClientProductPairs()
		if err != nil {
			return err
		}
		return export.WritePairs(w, rows)
	},
	"links": func(st *store.Store, w io.Writer) error {
		rows, err := st.ClientLinks()
		if err != nil {
			return err
		}
		return export.WriteLinks(w, rows)
	},
}

func newExportCmd(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:       "export {clients|products|orders|top-clients|trend|graph|links}",
		Short:     "Write a table or report as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"clients", "products", "orders", "top-clients", "trend", "graph", "links"},
		RunE: func(cmd *cobra.Command, args []string) error {
			writeFn, ok := exportTargets[args[0]]
			if !ok {
				return fmt.Errorf("unknown export target %q", args[0])
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return writeFn(st, w)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

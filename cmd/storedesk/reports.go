package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storedesk/internal/config"
)

func newReportCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Canned reports",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "top-clients",
		Short: "Top five clients by order count",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			rows, err := st.TopClients()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tORDERS")
			for _, r := range rows {
				fmt.Fprintf(w, "%d\t%s\t%d\n", r.ClientID, r.Name, r.OrderCount)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "trend",
		Short: "Order count per date, ascending",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			rows, err := st.OrderTrend()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tORDERS")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\n", r.OrderDate, r.OrderCount)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "graph",
		Short: "Client/product pairs, one per order",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			rows, err := st.ClientProductPairs()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CLIENT\tPRODUCT")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\n", r.ClientName, r.ProductName)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "links",
		Short: "Client pairs that ordered common products",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			rows, err := st.ClientLinks()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CLIENT\tCLIENT\tSHARED")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%d\n", r.ClientA, r.ClientB, r.SharedProducts)
			}
			return w.Flush()
		},
	})

	return cmd
}

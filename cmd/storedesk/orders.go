package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"storedesk/internal/config"
	"storedesk/internal/entity"
	"storedesk/internal/models"
	"storedesk/internal/store"
)

func newOrderCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage orders",
	}
	cmd.AddCommand(
		newOrderAddCmd(cfg),
		newOrderListCmd(cfg),
		newOrderSetCmd(cfg),
		newOrderRmCmd(cfg),
	)
	return cmd
}

func newOrderAddCmd(cfg *config.Config) *cobra.Command {
	var client, product, quantity, date string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an order referencing existing client and product ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := entity.ParseID("client_id", client)
			if err != nil {
				return err
			}
			productID, err := entity.ParseID("product_id", product)
			if err != nil {
				return err
			}
			qty, err := entity.ParseQuantity(quantity)
			if err != nil {
				return err
			}
			if date == "" {
				date = time.Now().Format(entity.DateLayout)
			}
			orderDate, err := entity.ParseDate(date)
			if err != nil {
				return err
			}
			o, err := entity.NewOrder(clientID, productID, qty, orderDate)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			row := models.Order{
				ClientID:  o.ClientID(),
				ProductID: o.ProductID(),
				Quantity:  o.Quantity(),
				OrderDate: o.OrderDate(),
			}
			if err := st.InsertOrder(&row); err != nil {
				return err
			}
			fmt.Printf("created order %d\n", row.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&client, "client", "", "client id")
	cmd.Flags().StringVar(&product, "product", "", "product id")
	cmd.Flags().StringVar(&quantity, "quantity", "1", "quantity")
	cmd.Flags().StringVar(&date, "date", "", "order date YYYY-MM-DD (default today)")
	cmd.MarkFlagRequired("client")
	cmd.MarkFlagRequired("product")
	return cmd
}

func newOrderListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders with client and product names",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			orders, err := st.LoadOrders()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tPRODUCT\tQTY\tDATE")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
					o.ID, o.ClientName, o.ProductName, o.Quantity, o.OrderDate)
			}
			return w.Flush()
		},
	}
}

func newOrderSetCmd(cfg *config.Config) *cobra.Command {
	var id, client, product, quantity, date string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update fields of an order; unset flags are left untouched",
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := entity.ParseID("id", id)
			if err != nil {
				return err
			}
			var p store.UpdateOrderParams
			if cmd.Flags().Changed("client") {
				v, err := entity.ParseID("client_id", client)
				if err != nil {
					return err
				}
				p.ClientID = &v
			}
			if cmd.Flags().Changed("product") {
				v, err := entity.ParseID("product_id", product)
				if err != nil {
					return err
				}
				p.ProductID = &v
			}
			if cmd.Flags().Changed("quantity") {
				v, err := entity.ParseQuantity(quantity)
				if err != nil {
					return err
				}
				p.Quantity = &v
			}
			if cmd.Flags().Changed("date") {
				v, err := entity.ParseDate(date)
				if err != nil {
					return err
				}
				p.OrderDate = &v
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			return st.UpdateOrder(orderID, p)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "order id")
	cmd.Flags().StringVar(&client, "client", "", "client id")
	cmd.Flags().StringVar(&product, "product", "", "product id")
	cmd.Flags().StringVar(&quantity, "quantity", "", "quantity")
	cmd.Flags().StringVar(&date, "date", "", "order date YYYY-MM-DD")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newOrderRmCmd(cfg *config.Config) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := entity.ParseID("id", id)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			return st.DeleteOrder(orderID)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "order id")
	cmd.MarkFlagRequired("id")
	return cmd
}

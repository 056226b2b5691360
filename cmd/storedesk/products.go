package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storedesk/internal/config"
	"storedesk/internal/entity"
	"storedesk/internal/models"
	"storedesk/internal/store"
)

func newProductCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}
	cmd.AddCommand(
		newProductAddCmd(cfg),
		newProductListCmd(cfg),
		newProductSetCmd(cfg),
		newProductRmCmd(cfg),
	)
	return cmd
}

func newProductAddCmd(cfg *config.Config) *cobra.Command {
	var name, price, stock string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			priceVal, err := entity.ParsePrice(price)
			if err != nil {
				return err
			}
			stockVal, err := entity.ParseStock(stock)
			if err != nil {
				return err
			}
			p, err := entity.NewProduct(name, priceVal, stockVal)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			row := models.Product{Name: p.Name(), Price: p.Price(), Stock: p.Stock()}
			if err := st.InsertProduct(&row); err != nil {
				return err
			}
			fmt.Printf("created product %d\n", row.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&price, "price", "0", "unit price")
	cmd.Flags().StringVar(&stock, "stock", "0", "stock count")
	return cmd
}

func newProductListCmd(cfg *config.Config) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			products, err := st.SearchProducts(filter)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
					p.ID, p.Name, strconv.FormatFloat(p.Price, 'f', 2, 64), p.Stock)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "substring filter")
	return cmd
}

func newProductSetCmd(cfg *config.Config) *cobra.Command {
	var id, name, price, stock string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update fields of a product; unset flags are left untouched",
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := entity.ParseID("id", id)
			if err != nil {
				return err
			}
			var p store.UpdateProductParams
			var check entity.Product // setters re-validate on every write
			if cmd.Flags().Changed("name") {
				p.Name = &name
			}
			if cmd.Flags().Changed("price") {
				v, err := entity.ParsePrice(price)
				if err != nil {
					return err
				}
				if err := check.SetPrice(v); err != nil {
					return err
				}
				p.Price = &v
			}
			if cmd.Flags().Changed("stock") {
				v, err := entity.ParseStock(stock)
				if err != nil {
					return err
				}
				if err := check.SetStock(v); err != nil {
					return err
				}
				p.Stock = &v
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			return st.UpdateProduct(productID, p)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "product id")
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&price, "price", "", "unit price")
	cmd.Flags().StringVar(&stock, "stock", "", "stock count")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newProductRmCmd(cfg *config.Config) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a product (its orders stay behind)",
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := entity.ParseID("id", id)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			return st.DeleteProduct(productID)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "product id")
	cmd.MarkFlagRequired("id")
	return cmd
}

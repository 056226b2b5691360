package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storedesk/internal/config"
	"storedesk/internal/entity"
	"storedesk/internal/models"
	"storedesk/internal/store"
)

func newClientCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}
	cmd.AddCommand(
		newClientAddCmd(cfg),
		newClientListCmd(cfg),
		newClientSetCmd(cfg),
		newClientRmCmd(cfg),
	)
	return cmd
}

func newClientAddCmd(cfg *config.Config) *cobra.Command {
	var name, email, phone, address string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate before touching the database; a failed save must
			// leave nothing behind.
			c, err := entity.NewClient(name, email, phone, address)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			row := models.Client{Name: c.Name(), Email: c.Email(), Phone: c.Phone(), Address: c.Address()}
			if err := st.InsertClient(&row); err != nil {
				return err
			}
			fmt.Printf("created client %d\n", row.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "client name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	return cmd
}

func newClientListCmd(cfg *config.Config) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			clients, err := st.SearchClients(filter)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tADDRESS")
			for _, c := range clients {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, c.Address)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "substring filter")
	return cmd
}

func newClientSetCmd(cfg *config.Config) *cobra.Command {
	var id, name, email, phone, address string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update fields of a client; unset flags are left untouched",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := entity.ParseID("id", id)
			if err != nil {
				return err
			}
			var p store.UpdateClientParams
			if cmd.Flags().Changed("name") {
				p.Name = &name
			}
			if cmd.Flags().Changed("email") {
				p.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				p.Phone = &phone
			}
			if cmd.Flags().Changed("address") {
				p.Address = &address
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			return st.UpdateClient(clientID, p)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "client id")
	cmd.Flags().StringVar(&name, "name", "", "client name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newClientRmCmd(cfg *config.Config) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a client (its orders stay behind)",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := entity.ParseID("id", id)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			return st.DeleteClient(clientID)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "client id")
	cmd.MarkFlagRequired("id")
	return cmd
}

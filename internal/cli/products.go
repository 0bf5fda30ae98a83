package cli

import (
	"quoteportal/internal/portal"

	"github.com/spf13/cobra"
)

func (a *app) productsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Product catalog"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := a.client.ListProducts(a.context(cmd))
			if err != nil {
				return err
			}
			renderProducts(a.out, products)
			return nil
		},
	})

	var in portal.ProductInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.context(cmd)
			s, err := a.adminSession(ctx)
			if err != nil {
				return err
			}
			p, err := a.client.AddProduct(ctx, s, in)
			if err != nil {
				return err
			}
			a.printf("added %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	productFlags(add, &in)

	var upd portal.ProductInput
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a product's fields (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			s, err := a.adminSession(ctx)
			if err != nil {
				return err
			}
			p, err := a.client.UpdateProduct(ctx, s, args[0], upd)
			if err != nil {
				return err
			}
			a.printf("updated %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	productFlags(update, &upd)

	cmd.AddCommand(add, update, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			s, err := a.adminSession(ctx)
			if err != nil {
				return err
			}
			if err := a.client.DeleteProduct(ctx, s, args[0]); err != nil {
				return err
			}
			a.printf("deleted %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func productFlags(cmd *cobra.Command, in *portal.ProductInput) {
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "product name")
	f.StringVar(&in.Description, "description", "", "product description")
	f.Float64Var(&in.Price, "price", 0, "unit price")
	f.StringVar(&in.ImageURL, "image-url", "", "image URL")
}

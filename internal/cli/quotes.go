package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"quoteportal/internal/domain/entities"
	"quoteportal/internal/portal"

	"github.com/spf13/cobra"
)

func (a *app) quotesCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "quotes", Short: "Quote requests and the quote status"}

	var req portal.QuoteRequest
	request := &cobra.Command{
		Use:   "request",
		Short: "Submit a quote request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := a.client.RequestQuote(a.context(cmd), req)
			if err != nil {
				return err
			}
			a.printf("quote %s requested: %s x%d, amount %.2f\n", q.ID, q.ProductName, q.Quantity, q.Amount)
			return nil
		},
	}
	f := request.Flags()
	f.StringVar(&req.Name, "name", "", "your name")
	f.StringVar(&req.Email, "contact-email", "", "contact email")
	f.StringVar(&req.Phone, "phone", "", "10-digit phone number")
	f.StringVar(&req.ProductID, "product", "", "product id (see products list)")
	f.IntVar(&req.Quantity, "quantity", 0, "quantity")
	f.StringVar(&req.Delivery, "delivery", "", "desired delivery date")
	f.StringVar(&req.Message, "message", "", "message to the seller")

	cmd.AddCommand(request,
		&cobra.Command{
			Use:   "list",
			Short: "List quotes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				quotes, err := a.client.ListQuotes(a.context(cmd))
				if err != nil {
					return err
				}
				renderQuotes(a.out, quotes)
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one quote",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, err := a.client.GetQuote(a.context(cmd), args[0])
				if err != nil {
					return err
				}
				renderQuote(a.out, q)
				return nil
			},
		},
		a.transitionCommand("approve", "Approve a pending quote", (*portal.Transitioner).Approve),
		a.transitionCommand("reject", "Reject a pending quote", (*portal.Transitioner).Reject),
		a.transitionCommand("revoke", "Take an approved quote back to pending", (*portal.Transitioner).Revoke),
		a.transitionCommand("reconsider", "Take a rejected quote back to pending", (*portal.Transitioner).Reconsider),
	)
	return cmd
}

func (a *app) trackingCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "tracking", Short: "Order tracking pipeline"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show the tracking steps of an order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, err := a.client.GetQuote(a.context(cmd), args[0])
				if err != nil {
					return err
				}
				renderSteps(a.out, q.TrackingStatus)
				return nil
			},
		},
		a.transitionCommand("next", "Move an order to the next stage", func(t *portal.Transitioner, ctx context.Context, id string) portal.Outcome {
			return portal.NewStepper(t).Next(ctx, id)
		}),
		a.transitionCommand("previous", "Move an order back one stage", func(t *portal.Transitioner, ctx context.Context, id string) portal.Outcome {
			return portal.NewStepper(t).Previous(ctx, id)
		}),
	)
	return cmd
}

func (a *app) paymentsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "payments", Short: "Payment status and payments"}

	var payload, method, payerEmail string
	pay := &cobra.Command{
		Use:   "pay <quote-id>",
		Short: "Pay for a quote through the payment gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := paymentPayload(payload, method, payerEmail)
			if err != nil {
				return err
			}
			p, err := a.client.Pay(a.context(cmd), args[0], body)
			if err != nil {
				return err
			}
			a.printf("payment %s: %s\n", p.ID, portal.BadgeFor(string(p.Status)).Text(string(p.Status)))
			return nil
		},
	}
	pay.Flags().StringVar(&payload, "payload", "", "raw gateway payload (JSON)")
	pay.Flags().StringVar(&method, "method", "pix", "payment_method_id when --payload is not given")
	pay.Flags().StringVar(&payerEmail, "payer-email", "", "payer email when --payload is not given")

	cmd.AddCommand(pay,
		a.transitionCommand("toggle", "Toggle an order between Paid and Pending", (*portal.Transitioner).TogglePayment),
		&cobra.Command{
			Use:   "set <id> <status>",
			Short: "Set the payment status of an order",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				status := args[1]
				return a.runTransition(cmd, args[0], func(t *portal.Transitioner, ctx context.Context, id string) portal.Outcome {
					return t.Set(ctx, id, entities.FieldPaymentStatus, status)
				})
			},
		},
	)
	return cmd
}

func (a *app) quotationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quotations",
		Short: "List quotes with their latest payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.client.ListQuotations(a.context(cmd))
			if err != nil {
				return err
			}
			renderQuotations(a.out, rows)
			return nil
		},
	}
}

type transitionFunc func(t *portal.Transitioner, ctx context.Context, id string) portal.Outcome

func (a *app) transitionCommand(use, short string, fn transitionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short + " (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTransition(cmd, args[0], fn)
		},
	}
}

// runTransition loads the record into a fresh view, applies fn and prints
// the outcome. A rolled back or rejected outcome is returned as an error.
func (a *app) runTransition(cmd *cobra.Command, id string, fn transitionFunc) error {
	ctx := a.context(cmd)
	s, err := a.adminSession(ctx)
	if err != nil {
		return err
	}
	q, err := a.client.GetQuote(ctx, id)
	if err != nil {
		return err
	}

	view := portal.NewView()
	view.Load([]entities.Quote{q})
	out := fn(portal.NewTransitioner(view, a.client.StatusWriter(s)), ctx, id)

	renderOutcome(a.out, out)
	if !out.OK() {
		return out.Err
	}
	return nil
}

func paymentPayload(raw, method, payerEmail string) (json.RawMessage, error) {
	if raw != "" {
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("%w: --payload is not valid json", portal.ErrInvalidInput)
		}
		return json.RawMessage(raw), nil
	}
	body := map[string]any{"payment_method_id": method}
	if payerEmail != "" {
		body["payer"] = map[string]any{"email": payerEmail}
	}
	return json.Marshal(body)
}

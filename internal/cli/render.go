package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"quoteportal/internal/domain/entities"
	"quoteportal/internal/portal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func badge(label string) string {
	return portal.BadgeFor(label).Text(label)
}

func renderProducts(w io.Writer, products []entities.Product) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tDESCRIPTION")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", p.ID, p.Name, p.Price, p.Description)
	}
	_ = tw.Flush()
}

func renderQuotes(w io.Writer, quotes []entities.Quote) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tPRODUCT\tQTY\tAMOUNT\tSTATUS\tTRACKING\tPAYMENT")
	for _, q := range quotes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%s\t%s\t%s\n",
			q.ID, q.Name, q.ProductName, q.Quantity, q.Amount,
			badge(string(q.Status)), badge(string(q.TrackingStatus)), badge(string(q.PaymentStatus)))
	}
	_ = tw.Flush()
}

func renderQuote(w io.Writer, q entities.Quote) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%s\n", q.ID)
	fmt.Fprintf(tw, "Customer\t%s <%s> %s\n", q.Name, q.Email, q.Phone)
	fmt.Fprintf(tw, "Product\t%s x%d\n", q.ProductName, q.Quantity)
	fmt.Fprintf(tw, "Amount\t%.2f\n", q.Amount)
	if q.Delivery != "" {
		fmt.Fprintf(tw, "Delivery\t%s\n", q.Delivery)
	}
	fmt.Fprintf(tw, "Status\t%s\n", badge(string(q.Status)))
	fmt.Fprintf(tw, "Tracking\t%s\n", badge(string(q.TrackingStatus)))
	fmt.Fprintf(tw, "Payment\t%s\n", badge(string(q.PaymentStatus)))
	_ = tw.Flush()
}

func renderQuotations(w io.Writer, rows []portal.Quotation) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tPRODUCT\tAMOUNT\tSTATUS\tPAYMENT\tLAST PAYMENT")
	for _, r := range rows {
		last := "-"
		if r.LatestPayment != nil {
			last = r.LatestPayment.ID + " " + badge(string(r.LatestPayment.Status))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
			r.ID, r.Name, r.ProductName, r.Amount,
			badge(string(r.Status)), badge(string(r.PaymentStatus)), last)
	}
	_ = tw.Flush()
}

var stepMarks = map[portal.StepState]string{
	portal.StepDone:     "x",
	portal.StepCurrent:  ">",
	portal.StepUpcoming: " ",
}

func renderSteps(w io.Writer, current entities.TrackingStatus) {
	steps := portal.Steps(current)
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		parts = append(parts, fmt.Sprintf("[%s] %s %s", stepMarks[s.State], s.Icon, s.Label))
	}
	fmt.Fprintln(w, strings.Join(parts, "  ->  "))
}

func renderOutcome(w io.Writer, o portal.Outcome) {
	switch o.Kind {
	case portal.Applied:
		fmt.Fprintf(w, "%s %s: %s -> %s\n", o.ID, o.Field, o.Previous, badge(o.Value))
	case portal.Unchanged:
		fmt.Fprintf(w, "%s %s: unchanged (%s)\n", o.ID, o.Field, badge(o.Value))
	default:
		fmt.Fprintf(w, "%s %s: %s, showing %s: %s\n", o.ID, o.Field, o.Kind, badge(o.Value), portal.Message(o.Err))
	}
}

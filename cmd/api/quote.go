package main

import (
	"fmt"
	"io"

	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/spf13/cobra"
)

func QuoteCmd() *cobra.Command {
	var rate, discount, tax, extraBed, checkIn, checkOut string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a stay without touching the database",
		Example: "  innkeeper quote --rate 5000 --discount 10 --tax 18 --extra-bed 1000 \\\n" +
			"    --check-in 2024-03-01 --check-out 2024-03-04",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := pricing.ModifiersFromStrings(rate, discount, extraBed, tax)
			q := pricing.QuoteStay(pricing.NewStayPeriod(checkIn, checkOut), m)
			printQuote(cmd.OutOrStdout(), q)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&rate, "rate", "", "base nightly rate")
	flags.StringVar(&discount, "discount", "", "discount percent")
	flags.StringVar(&tax, "tax", "", "tax (GST) percent")
	flags.StringVar(&extraBed, "extra-bed", "", "extra bed fee per night")
	flags.StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	flags.StringVar(&checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	return cmd
}

func printQuote(w io.Writer, q pricing.Quote) {
	nightly := "n/a"
	if q.NightlyRate.Valid {
		nightly = q.NightlyRate.Decimal.StringFixed(2)
	}

	fmt.Fprintf(w, "Nightly rate: %s\n", nightly)
	fmt.Fprintf(w, "Nights:       %d\n", q.Nights)
	if q.BaseAmount.Valid {
		fmt.Fprintf(w, "Base amount:  %s\n", q.BaseAmount.Decimal.StringFixed(2))
	}
	fmt.Fprintf(w, "Total:        %s\n", q.TotalAmount.StringFixed(2))
}

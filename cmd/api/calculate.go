package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/liv8solar/solar-leads/internal/usecase"
)

type estimateOutput struct {
	MonthlyBill       string `json:"monthlyBill"`
	MonthlySavings    string `json:"monthlySavings"`
	YearOneSavings    string `json:"yearOneSavings"`
	TwentyYearSavings string `json:"twentyYearSavings"`
	AnnualKwh         string `json:"annualKwh"`
	SystemSize        string `json:"systemSize"`
}

func newCalculateCmd() *cobra.Command {
	var bill string
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Print the savings estimate for a monthly bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := usecase.ParseMonthlyBill(bill)
			if err != nil {
				return err
			}
			e := usecase.CalculateSavings(amount)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(estimateOutput{
				MonthlyBill:       amount.String(),
				MonthlySavings:    e.MonthlySavings.String(),
				YearOneSavings:    e.YearOneSavings.String(),
				TwentyYearSavings: e.TwentyYearSavings.String(),
				AnnualKwh:         e.AnnualKwh.Round(0).String(),
				SystemSize:        e.SystemSize(),
			})
		},
	}
	cmd.Flags().StringVar(&bill, "bill", "", "average monthly electric bill, e.g. 150 or $1,250.50")
	cmd.MarkFlagRequired("bill")
	return cmd
}

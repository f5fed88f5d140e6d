// Command fincalc exposes the financial calculation library on the command
// line, for quick checks without running the API server.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finbooks/finbooks_backend/internal/utils/finmath"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fincalc",
		Short: "Financial calculators: depreciation, loans, NPV, IRR, debt plans",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newDepreciationCommand(),
		newLoanCommand(),
		newNPVCommand(),
		newIRRCommand(),
		newDebtPlanCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDepreciationCommand() *cobra.Command {
	var method string
	var cost, salvage, usefulLife, rate, totalUnits, unitsThisPeriod float64
	var year int

	cmd := &cobra.Command{
		Use:   "depreciation",
		Short: "Depreciation charge under a selected method",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result float64
			switch strings.ToUpper(method) {
			case "STRAIGHT_LINE":
				result = finmath.StraightLineDepreciation(cost, salvage, usefulLife)
			case "DECLINING_BALANCE":
				result = finmath.DecliningBalanceDepreciation(cost, usefulLife, rate)
			case "UNITS_OF_PRODUCTION":
				result = finmath.UnitsOfProductionDepreciation(cost, salvage, totalUnits, unitsThisPeriod)
			case "SUM_OF_YEARS_DIGITS":
				if year < 1 {
					year = 1
				}
				result = finmath.SumOfYearsDigitsDepreciation(cost, salvage, usefulLife, year)
			default:
				return fmt.Errorf("unknown depreciation method %q", method)
			}
			fmt.Printf("%.2f\n", result)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "STRAIGHT_LINE", "STRAIGHT_LINE, DECLINING_BALANCE, UNITS_OF_PRODUCTION or SUM_OF_YEARS_DIGITS")
	cmd.Flags().Float64Var(&cost, "cost", 0, "asset cost")
	cmd.Flags().Float64Var(&salvage, "salvage", 0, "salvage value")
	cmd.Flags().Float64Var(&usefulLife, "useful-life", 0, "useful life in years")
	cmd.Flags().Float64Var(&rate, "rate", 0, "declining balance rate factor")
	cmd.Flags().Float64Var(&totalUnits, "total-units", 0, "total production units over the asset life")
	cmd.Flags().Float64Var(&unitsThisPeriod, "units", 0, "units produced this period")
	cmd.Flags().IntVar(&year, "year", 1, "depreciation year (sum-of-years-digits)")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}

func newLoanCommand() *cobra.Command {
	var principal, annualRate float64
	var payments int
	var schedule bool

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Fixed loan payment, optionally the full amortization schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if schedule {
				for _, p := range finmath.LoanSchedule(principal, annualRate, payments) {
					fmt.Printf("%4d  payment=%10.2f  principal=%10.2f  interest=%10.2f  balance=%12.2f\n",
						p.Period, p.Payment, p.Principal, p.Interest, p.Balance)
				}
				return nil
			}
			fmt.Printf("%.2f\n", finmath.LoanPayment(principal, annualRate, payments))
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "loan principal")
	cmd.Flags().Float64Var(&annualRate, "rate", 0, "annual interest rate percent")
	cmd.Flags().IntVar(&payments, "payments", 0, "total number of monthly payments")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the full amortization schedule")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("payments")

	return cmd
}

// parseCashFlows parses a comma-separated cash flow list, e.g. "500,600,700".
func parseCashFlows(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	flows := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cash flow %q: %w", part, err)
		}
		flows = append(flows, v)
	}
	if len(flows) == 0 {
		return nil, fmt.Errorf("no cash flows given")
	}
	return flows, nil
}

func newNPVCommand() *cobra.Command {
	var initial, rate float64
	var cashFlows string

	cmd := &cobra.Command{
		Use:   "npv",
		Short: "Net present value of a cash flow series",
		RunE: func(cmd *cobra.Command, args []string) error {
			flows, err := parseCashFlows(cashFlows)
			if err != nil {
				return err
			}
			fmt.Printf("%.2f\n", finmath.NetPresentValue(initial, flows, rate))
			return nil
		},
	}

	cmd.Flags().Float64Var(&initial, "initial", 0, "initial investment (positive number)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "discount rate percent")
	cmd.Flags().StringVar(&cashFlows, "cash-flows", "", "comma-separated cash flows per period")
	_ = cmd.MarkFlagRequired("cash-flows")

	return cmd
}

func newIRRCommand() *cobra.Command {
	var initial float64
	var cashFlows string

	cmd := &cobra.Command{
		Use:   "irr",
		Short: "Internal rate of return of a cash flow series, in percent",
		RunE: func(cmd *cobra.Command, args []string) error {
			flows, err := parseCashFlows(cashFlows)
			if err != nil {
				return err
			}
			fmt.Printf("%.2f\n", finmath.InternalRateOfReturn(initial, flows))
			return nil
		},
	}

	cmd.Flags().Float64Var(&initial, "initial", 0, "initial investment (positive number)")
	cmd.Flags().StringVar(&cashFlows, "cash-flows", "", "comma-separated cash flows per period")
	_ = cmd.MarkFlagRequired("cash-flows")

	return cmd
}

// parseDebts parses debts in name:balance:ratePercent form, e.g.
// "card:4500:22.9,car:12000:6.5".
func parseDebts(s string) ([]finmath.Debt, error) {
	var debts []finmath.Debt
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid debt %q: want name:balance:rate", part)
		}
		balance, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid balance in %q: %w", part, err)
		}
		rate, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate in %q: %w", part, err)
		}
		debts = append(debts, finmath.Debt{Name: fields[0], Balance: balance, InterestRatePercent: rate})
	}
	if len(debts) == 0 {
		return nil, fmt.Errorf("no debts given")
	}
	return debts, nil
}

func newDebtPlanCommand() *cobra.Command {
	var strategy, debtsSpec string
	var payment float64

	cmd := &cobra.Command{
		Use:   "debt-plan",
		Short: "Allocate a payment budget across debts (snowball or avalanche)",
		RunE: func(cmd *cobra.Command, args []string) error {
			debts, err := parseDebts(debtsSpec)
			if err != nil {
				return err
			}

			var allocations []finmath.DebtAllocation
			switch strings.ToUpper(strategy) {
			case "SNOWBALL":
				allocations = finmath.SnowballAllocation(debts, payment)
			case "AVALANCHE":
				allocations = finmath.AvalancheAllocation(debts, payment)
			default:
				return fmt.Errorf("unknown strategy %q", strategy)
			}

			for _, a := range allocations {
				fmt.Printf("%-20s payment=%10.2f remaining=%12.2f\n", a.Name, a.Payment, a.RemainingBalance)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "SNOWBALL", "SNOWBALL or AVALANCHE")
	cmd.Flags().StringVar(&debtsSpec, "debts", "", "comma-separated name:balance:ratePercent entries")
	cmd.Flags().Float64Var(&payment, "payment", 0, "payment budget to allocate")
	_ = cmd.MarkFlagRequired("debts")
	_ = cmd.MarkFlagRequired("payment")

	return cmd
}

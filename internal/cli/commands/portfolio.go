package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
)

// portfolioCmd shows the simulated portfolio
var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "show your simulated portfolio",
	Long: `Show your simulated portfolio. Positions here are practice trades for
learning, no real money is moved.`,
	Example: `  # Show positions
  $ investictl portfolio

  # Add a simulated position
  $ investictl portfolio add BTC 150.00`,
	Args: cobra.NoArgs,
	RunE: runPortfolio,
}

var portfolioAddCmd = &cobra.Command{
	Use:   "add <symbol> <amount>",
	Short: "add a simulated position",
	Args:  cobra.ExactArgs(2),
	RunE:  runPortfolioAdd,
}

func init() {
	portfolioCmd.AddCommand(portfolioAddCmd)
	portfolioCmd.SilenceUsage = true
	portfolioAddCmd.SilenceUsage = true
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	portfolio, err := supabase.NewPortfolioRepository(client).Get(ctx, userID)
	if err != nil {
		ui.PrintError("failed to fetch portfolio: %v", err)
		return fmt.Errorf("portfolio fetch failed")
	}

	if len(portfolio.Investments) == 0 {
		ui.PrintInfo("no positions yet, add one with 'investictl portfolio add'")
		return nil
	}

	var total float64
	ui.PrintBold("%-10s %12s", "SYMBOL", "AMOUNT")
	for _, inv := range portfolio.Investments {
		fmt.Printf("%-10s %12.2f\n", inv.Symbol, inv.Amount)
		total += inv.Amount
	}
	fmt.Println()
	ui.PrintBold("%-10s %12.2f", "TOTAL", total)

	return nil
}

func runPortfolioAdd(cmd *cobra.Command, args []string) error {
	_, client, userID, err := requireSession()
	if err != nil {
		return err
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount <= 0 {
		ui.PrintError("amount must be a positive number")
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := supabase.NewPortfolioRepository(client).AddInvestment(ctx, userID, args[0], amount); err != nil {
		ui.PrintError("failed to add position: %v", err)
		return fmt.Errorf("position add failed")
	}

	ui.PrintSuccess("added %s %.2f to your portfolio", args[0], amount)
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"toolrental-checkout/internal/config"
	"toolrental-checkout/internal/domain"
	"toolrental-checkout/internal/logger"
	"toolrental-checkout/internal/report"
	"toolrental-checkout/internal/repository/memory"
	"toolrental-checkout/internal/service"
	"toolrental-checkout/internal/utils"

	"cloud.google.com/go/civil"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "checkout",
		Short:         "Tool rental checkout",
		Long:          "Price a tool rental and print the rental agreement",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Initialize(cfg.Log.Level, cfg.Log.Format)
			logger.Debug("Configuration loaded", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format, "date_layout", cfg.Report.DateLayout)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (optional)")
	rootCmd.SetOut(out)

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(toolsCmd())

	return rootCmd
}

func newService() service.RentalService {
	store := memory.NewStore()
	return service.NewRentalService(store.ToolCatalog, utils.NewHolidayCalendar())
}

func runCmd() *cobra.Command {
	var (
		toolCode string
		days     int
		discount int
		date     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Check out a tool and print the rental agreement",
		RunE: func(cmd *cobra.Command, args []string) error {
			checkoutDate, err := civil.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid checkout date %q, expected yyyy-mm-dd: %w", date, err)
			}

			req := domain.RentalRequest{
				ToolCode:        toolCode,
				RentalDays:      days,
				DiscountPercent: discount,
				CheckoutDate:    checkoutDate,
			}

			agreement, err := newService().Checkout(context.Background(), req)
			if err != nil {
				return err
			}
			logger.Info("Rental agreement created", "agreement_id", agreement.AgreementID, "final_charge", agreement.FinalCharge.StringFixed(2))

			if err := report.NewFormatter(cfg.Report.DateLayout).Write(cmd.OutOrStdout(), agreement); err != nil {
				logger.Error("Failed to print rental agreement", "agreement_id", agreement.AgreementID, "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&toolCode, "tool", "t", "", "Tool code, e.g. LADW")
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Rental day count")
	cmd.Flags().IntVarP(&discount, "discount", "p", 0, "Discount percent (0-100)")
	cmd.Flags().StringVar(&date, "date", "", "Checkout date (yyyy-mm-dd)")
	_ = cmd.MarkFlagRequired("tool")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List rentable tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, err := newService().ListTools(context.Background())
			if err != nil {
				logger.Error("Failed to list tools", "error", err)
				return err
			}
			formatter := report.NewFormatter(cfg.Report.DateLayout)
			out := cmd.OutOrStdout()
			for _, t := range tools {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\tweekend:%s\tholiday:%s\n",
					t.Code, t.Type, t.Brand, formatter.Currency(t.DailyCharge),
					yesNo(t.WeekendCharge), yesNo(t.HolidayCharge))
			}
			return nil
		},
	}
}

func yesNo(charged bool) string {
	if charged {
		return "yes"
	}
	return "no"
}

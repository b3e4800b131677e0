package main

import (
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"cinos-cafe/config"
	httpapi "cinos-cafe/order-svc/internal/api/http"
	"cinos-cafe/order-svc/internal/domain"
	"cinos-cafe/order-svc/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	orders  *service.OrderService
	taxRate string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmdRoot := &cobra.Command{
		Use:          "cafe",
		Short:        "Price café drink orders and print receipts",
		SilenceUsage: true,
		RunE:         a.runSample,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmdRoot.PersistentFlags().StringVar(&a.taxRate, "tax-rate", "", "override TAX_RATE, e.g. 0.08")

	cmdSample := &cobra.Command{
		Use:   "sample",
		Short: "Print the receipt for the sample order",
		RunE:  a.runSample,
	}

	var drinks []string
	cmdReceipt := &cobra.Command{
		Use:   "receipt",
		Short: "Print a receipt for drinks given as base[:size[:flavor,flavor]]",
		Example: `  cafe receipt --drink "latte:large:vanilla" --drink espresso:small
  cafe receipt --drink "cold brew:mega:caramel,hazelnut" --tax-rate 0.08`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReceipt(cmd, drinks)
		},
	}
	cmdReceipt.Flags().StringArrayVarP(&drinks, "drink", "d", nil, "drink to add, repeatable")

	cmdMenu := &cobra.Command{
		Use:   "menu",
		Short: "Print bases, sizes and flavors with prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			printMenu(cmd.OutOrStdout(), a.orders.Menu())
			return nil
		},
	}

	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Serve the order HTTP API",
		RunE:  a.runServe,
	}

	cmdRoot.AddCommand(cmdSample, cmdReceipt, cmdMenu, cmdServe)
	return cmdRoot
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.taxRate != "" {
		rate, err := config.ParseTaxRate(a.taxRate)
		if err != nil {
			return err
		}
		cfg.TaxRate = rate
	}

	logger, err := config.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.orders = service.NewOrderService(cfg.TaxRate, service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL}, logger)
	return nil
}

// sampleOrder is the walk-through order: a large vanilla latte and a small espresso.
var sampleOrder = domain.OrderRequest{Drinks: []domain.DrinkRequest{
	{Base: "Latte", Size: "Large", Flavors: []string{"Vanilla"}},
	{Base: "Espresso", Size: "Small"},
}}

func (a *app) runSample(cmd *cobra.Command, args []string) error {
	quote, err := a.orders.Quote(cmd.Context(), sampleOrder)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, quote.Receipt)

	first := sampleOrder.Drinks[0]
	drink, err := domain.ParseDrink(first.Base, first.Size, first.Flavors...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, drink)
	return nil
}

func (a *app) runReceipt(cmd *cobra.Command, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("at least one --drink is required")
	}
	req := domain.OrderRequest{}
	for _, raw := range values {
		line, err := parseDrinkFlag(raw)
		if err != nil {
			return err
		}
		req.Drinks = append(req.Drinks, line)
	}

	receipt, err := a.orders.Receipt(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), receipt)
	return nil
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := httpapi.NewHandler(a.orders, a.logger)
	return httpapi.StartServer(ctx, a.cfg.HTTPAddr, httpapi.NewRouter(handler), a.logger)
}

// parseDrinkFlag reads "base[:size[:flavor,flavor...]]". A missing size falls
// back to the default size.
func parseDrinkFlag(raw string) (domain.DrinkRequest, error) {
	parts := strings.Split(raw, ":")
	if len(parts) > 3 {
		return domain.DrinkRequest{}, fmt.Errorf("invalid drink %q: want base[:size[:flavors]]", raw)
	}

	line := domain.DrinkRequest{Base: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		line.Size = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		for _, f := range strings.Split(parts[2], ",") {
			if f = strings.TrimSpace(f); f != "" {
				line.Flavors = append(line.Flavors, f)
			}
		}
	}
	return line, nil
}

func printMenu(w io.Writer, menu domain.Menu) {
	sections := []struct {
		title string
		items []domain.MenuItem
	}{
		{"Bases", menu.Bases},
		{"Sizes (surcharge)", menu.Sizes},
		{"Flavors", menu.Flavors},
	}
	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, section.title)
		for _, item := range section.items {
			fmt.Fprintf(w, "  %-14s %s\n", item.Name, domain.FormatMoney(item.Price))
		}
	}
}

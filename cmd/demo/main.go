package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	cartapp "github.com/dwikikusuma/shoping-demo/internal/cart/app"
	cartdomain "github.com/dwikikusuma/shoping-demo/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/shoping-demo/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/shoping-demo/internal/checkout/infra/adapter"
	userapp "github.com/dwikikusuma/shoping-demo/internal/user/app"
	userdomain "github.com/dwikikusuma/shoping-demo/internal/user/domain"

	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
	"github.com/dwikikusuma/shoping-demo/pkg/config"
	"github.com/dwikikusuma/shoping-demo/pkg/logger"
	"github.com/dwikikusuma/shoping-demo/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "demo", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, log, cfg, os.Stdout); err != nil {
		_, code, _ := apperr.HTTPStatus(err)
		log.Error("demo failed", slog.String("code", code), slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

type step struct {
	name string
	fn   func() error
}

// run walks through the end-to-end scenario: register a customer, fill a
// cart, quote it and clear it. It stops early when ctx is cancelled.
func run(ctx context.Context, log *slog.Logger, cfg config.Config, out io.Writer) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ledger := cartapp.NewLedger(log)
	users := userapp.NewDirectory(log)
	checkout := checkoutapp.NewService(checkoutadapter.NewLedgerReader(ledger))

	steps := []step{
		{"register customer", func() error {
			u, err := users.AddUser(userdomain.User{
				Name:       "John Doe",
				Email:      "john@example.com",
				Attributes: map[string]any{"age": 30},
			})
			if err != nil {
				return err
			}
			log.Info("customer registered", slog.String("user_id", u.ID), slog.String("email", u.Email))
			return nil
		}},
		{"fill cart", func() error {
			for _, it := range []cartdomain.LineItem{
				{ID: "1", Name: "Laptop", UnitPrice: 100, Quantity: 3},
				{ID: "2", Name: "Mouse", UnitPrice: 50, Quantity: 1},
			} {
				if err := ledger.AddItem(it); err != nil {
					return err
				}
			}
			log.Info("cart filled",
				slog.Int("items", ledger.ItemCount()),
				slog.Float64("total", ledger.CalculateTotal()),
			)
			return nil
		}},
		{"quote", func() error {
			q, err := checkout.Quote(cfg.DiscountPercent)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, q.Display())
			return err
		}},
		{"clear cart", func() error {
			ledger.Clear()
			log.Info("cart cleared", slog.Int("items", ledger.ItemCount()))
			return nil
		}},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.fn(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

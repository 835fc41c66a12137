// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

// Command client is a small terminal client for the cryptofolio server.
// It walks one full session: register (best effort), log in, show the
// market and the portfolio, execute a quoted swap and print the updated
// history and settings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvelasco/cryptofolio/internal/adapter"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var (
		address  = flag.String("a", "http://localhost:8080", "server address")
		email    = flag.String("e", "demo@example.com", "account email")
		password = flag.String("p", "demo-password", "account password")
		fromID   = flag.String("from", "bitcoin", "swap source instrument id")
		toID     = flag.String("to", "ethereum", "swap target instrument id")
		amount   = flag.Float64("amount", 0.01, "swap amount in source units")
	)
	flag.Parse()

	log := logger.NewConsoleLogger("cryptofolio-client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := adapter.NewAPIClient(*address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	if err := run(ctx, client, log, *email, *password, *fromID, *toID, *amount); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(ctx context.Context, client *adapter.APIClient, log *logger.Logger, email, password, fromID, toID string, amount float64) error {
	creds := models.CredentialsRequest{
		Email:     email,
		Password:  password,
		FormAgeMs: 5000,
	}

	// Registration fails with a conflict on reruns against a live server;
	// that is fine, the account already exists.
	if err := client.Register(ctx, creds); err != nil {
		log.Warn().Err(err).Msg("register skipped")
	}

	if _, err := client.Login(ctx, creds); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Printf("logged in as %s\n\n", email)

	instruments, err := client.Instruments(ctx)
	if err != nil {
		return fmt.Errorf("instruments: %w", err)
	}
	fmt.Println("market:")
	for _, instrument := range instruments {
		fmt.Printf("  %-10s %-12s %12.2f USD  %+.2f%%\n",
			instrument.Symbol, instrument.Name, instrument.CurrentPrice, instrument.PriceChangePct24h)
	}
	fmt.Println()

	if err := printBalances(ctx, client, "balances:"); err != nil {
		return err
	}

	quote, err := client.Quote(ctx, fromID, toID)
	if err != nil {
		return fmt.Errorf("quote: %w", err)
	}
	fmt.Printf("quote: 1 %s = %.8f %s (valid until %s)\n\n",
		quote.FromSymbol, quote.Rate, quote.ToSymbol,
		time.UnixMilli(quote.ExpiresAt).Format(time.RFC3339))

	tx, err := client.Swap(ctx, models.SwapRequest{Quote: quote, Amount: amount})
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}
	fmt.Printf("swapped %.8f %s -> %.8f %s (tx %s)\n\n", tx.AmountFrom, tx.From, tx.AmountTo, tx.To, tx.ID)

	if err := printBalances(ctx, client, "balances after swap:"); err != nil {
		return err
	}

	history, err := client.History(ctx)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	fmt.Println("history:")
	for _, item := range history {
		fmt.Printf("  %s  %.8f %s -> %.8f %s\n",
			item.TS.Format(time.RFC3339), item.AmountFrom, item.From, item.AmountTo, item.To)
	}
	fmt.Println()

	settings, err := client.Settings(ctx)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	fmt.Printf("settings: showBalances=%t refreshInterval=%ds showRecentActivity=%t\n\n",
		settings.ShowBalances, settings.RefreshInterval, settings.ShowRecentActivity)

	if err := client.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	fmt.Println("logged out")

	return nil
}

func printBalances(ctx context.Context, client *adapter.APIClient, title string) error {
	balances, err := client.Balances(ctx)
	if err != nil {
		return fmt.Errorf("balances: %w", err)
	}

	fmt.Println(title)
	for _, balance := range balances {
		fmt.Printf("  %-10s %.8f\n", balance.Symbol, balance.Amount)
	}
	fmt.Println()

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

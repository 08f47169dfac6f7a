// Package fitbitcmd holds the Fitbit connection and sync commands.
package fitbitcmd

import (
	"context"
	"fmt"

	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/fitbit"
	"github.com/julianstephens/vitalog/internal/syncer"
	"github.com/julianstephens/vitalog/internal/utils"
)

func clientFromConfig(ctx *cli.Context) (*fitbit.Client, error) {
	cfg := ctx.Config.Fitbit
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("fitbit client credentials are not configured; set FITBIT_CLIENT_ID and FITBIT_CLIENT_SECRET or the fitbit section of the config file")
	}
	return fitbit.NewClient(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURI), nil
}

// ConnectCmd starts or completes the OAuth authorization flow. Without
// --code it prints the authorization URL; with --code it exchanges the code
// for tokens and stores them in the system keyring.
type ConnectCmd struct {
	Code string `help:"Authorization code returned by the Fitbit consent page."`
}

func (c *ConnectCmd) Run(ctx *cli.Context) error {
	client, err := clientFromConfig(ctx)
	if err != nil {
		return err
	}

	if c.Code == "" {
		fmt.Println("Open this URL in a browser, authorize the app, then re-run with --code=<code>:")
		fmt.Println()
		fmt.Println("  " + client.AuthorizationURL(fitbit.DefaultScopes))
		return nil
	}

	tokens, err := client.ExchangeCode(context.Background(), c.Code)
	if err != nil {
		return fmt.Errorf("code exchange failed: %w", err)
	}
	if err := fitbit.SaveTokens(tokens); err != nil {
		return fmt.Errorf("failed to store tokens: %w", err)
	}
	fmt.Println(cli.OkStyle.Render("Fitbit connected."))
	return nil
}

// DisconnectCmd revokes and removes the stored Fitbit credentials.
type DisconnectCmd struct{}

func (c *DisconnectCmd) Run(ctx *cli.Context) error {
	client, err := clientFromConfig(ctx)
	if err != nil {
		return err
	}
	if err := fitbit.NewService(client).Disconnect(context.Background()); err != nil {
		return err
	}
	fmt.Println("Fitbit disconnected.")
	return nil
}

// SyncCmd pulls one date's activity and folds it into the local log.
type SyncCmd struct {
	Date string `short:"d" help:"Date to sync (YYYY-MM-DD), defaults to today."`
}

func (c *SyncCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	client, err := clientFromConfig(ctx)
	if err != nil {
		return err
	}

	rec := syncer.New(ctx.Store, fitbit.NewService(client))
	added, err := rec.SyncDate(context.Background(), date)
	if err != nil {
		return err
	}
	if added == 0 {
		fmt.Printf("Synced %s: metrics updated, no new workouts.\n", date)
	} else {
		fmt.Printf("Synced %s: metrics updated, %d new workout(s).\n", date, added)
	}
	return nil
}

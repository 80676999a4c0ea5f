package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/desertthunder/scx/internal/models"
	"github.com/desertthunder/scx/internal/server"
	"github.com/desertthunder/scx/internal/shared"
	"github.com/desertthunder/scx/internal/soundcloud"
	"github.com/desertthunder/scx/internal/ui"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthURL prints the authorization URL for the configured application.
func (r *Runner) AuthURL(ctx context.Context, cmd *cli.Command) error {
	client, err := r.soundcloud()
	if err != nil {
		return err
	}
	return r.writePlain("%s\n", client.AuthorizationURLWithState(cmd.String("state")))
}

// AuthLogin runs the browser flow: it serves the redirect URI locally, opens the
// authorization URL and waits for the code to be exchanged.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	client, err := r.soundcloud()
	if err != nil {
		return err
	}

	timeout := cmd.Duration("timeout")
	state := shared.GenerateID()
	redirect := r.config.Credentials.SoundCloud.RedirectURI

	handler := server.NewOAuthHandler(client, server.CallbackPath(redirect), state)
	router := server.NewBasicRouter()
	router.Use(server.RequestLogger(r.logger))
	router.Handler(handler)

	listener, err := net.Listen("tcp", r.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", r.config.Server.Addr(), err)
	}

	srv := &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			r.logger.Warn("callback server shutdown failed", "error", err)
		}
	}()

	authURL := client.AuthorizationURLWithState(state)
	r.logger.Info("waiting for authorization", "addr", listener.Addr().String(), "timeout", timeout)
	if err := r.writePlain("Open this URL to authorize scx:\n%s\n", authURL); err != nil {
		return err
	}

	if !cmd.Bool("no-browser") {
		if err := r.openBrowser(authURL); err != nil {
			r.logger.Warn("could not open browser", "error", err)
		}
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case res := <-handler.Result():
		if err := res.Error(); err != nil {
			return fmt.Errorf("%w: %w", shared.ErrAuthFailed, err)
		}
		return r.completeLogin(ctx, client, res.Token)
	case err := <-serveErr:
		return fmt.Errorf("callback server failed: %w", err)
	case <-waitCtx.Done():
		if errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: no authorization received within %s", shared.ErrTimeout, timeout)
		}
		return waitCtx.Err()
	}
}

// AuthToken exchanges an authorization code obtained out of band.
func (r *Runner) AuthToken(ctx context.Context, cmd *cli.Command) error {
	client, err := r.soundcloud()
	if err != nil {
		return err
	}

	raw, err := client.ExchangeCodeForToken(ctx, cmd.String("code"), cmd.String("grant-type"))
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(raw, cmd.Bool("pretty"))
	}

	token := raw.Token()
	if token == nil {
		return fmt.Errorf("%w: response has no access_token", shared.ErrAuthFailed)
	}
	return r.completeLogin(ctx, client, token)
}

// completeLogin installs token, looks up its owner and stores the session.
func (r *Runner) completeLogin(ctx context.Context, client *soundcloud.Client, token *oauth2.Token) error {
	client.SetToken(token)

	user, err := client.CurrentUser(ctx, token.AccessToken)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
	}

	scope, _ := token.Extra("scope").(string)
	session := models.NewSession(0, token.AccessToken, scope, client.Sandbox())
	session.SetUser(user.Int("id"), user.String("username"))

	repo, err := r.sessions()
	if err != nil {
		return err
	}
	if err := repo.Create(session); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	r.logger.Info("session stored", "id", session.ID(), "user", session.Username())
	return r.render(ui.Success(fmt.Sprintf("✓ Logged in as %s", session.Username())) + "\n")
}

// AuthStatus shows the stored session for the current host.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.sessions()
	if err != nil {
		return err
	}

	session, err := repo.Latest(r.config.Credentials.SoundCloud.Sandbox)
	if errors.Is(err, shared.ErrNotFound) {
		return r.render(ui.Warning("✗ Not authenticated") + "\n" + ui.Help("Run `scx auth login` to connect an account.") + "\n")
	}
	if err != nil {
		return err
	}

	if err := r.render(ui.Success(fmt.Sprintf("✓ Authenticated as %s", session.Username())) + "\n"); err != nil {
		return err
	}
	if err := r.writePlain("Token:   %s\nScope:   %s\nSince:   %s\n",
		shared.MaskToken(session.AccessToken()), session.Scope(), session.CreatedAt().Format(time.RFC3339)); err != nil {
		return err
	}

	if !cmd.Bool("verify") {
		return nil
	}

	client, err := r.soundcloud()
	if err != nil {
		return err
	}
	if _, err := client.CurrentUser(ctx, session.AccessToken()); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrNotAuthenticated, err)
	}
	return r.render(ui.Success("✓ Token accepted by SoundCloud") + "\n")
}

// AuthLogout soft-deletes the stored session for the current host.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.sessions()
	if err != nil {
		return err
	}

	session, err := repo.Latest(r.config.Credentials.SoundCloud.Sandbox)
	if errors.Is(err, shared.ErrNotFound) {
		return r.writePlain("No stored session\n")
	}
	if err != nil {
		return err
	}

	if err := repo.Delete(session.ID()); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if r.client != nil {
		r.client.SetAccessToken("")
	}
	return r.render(ui.Success(fmt.Sprintf("✓ Logged out %s", session.Username())) + "\n")
}

// authenticate returns a client carrying the token from --token or the stored session.
//
// The session is nil when the token came from the flag.
func (r *Runner) authenticate(cmd *cli.Command) (*soundcloud.Client, *models.Session, error) {
	client, err := r.soundcloud()
	if err != nil {
		return nil, nil, err
	}

	if token := cmd.String("token"); token != "" {
		client.SetAccessToken(token)
		return client, nil, nil
	}

	repo, err := r.sessions()
	if err != nil {
		return nil, nil, err
	}
	session, err := repo.Latest(client.Sandbox())
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil, fmt.Errorf("%w: run `scx auth login` or pass --token", shared.ErrNotAuthenticated)
	}
	if err != nil {
		return nil, nil, err
	}

	client.SetToken(session.Token())
	return client, session, nil
}

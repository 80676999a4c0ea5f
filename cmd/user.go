package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/scx/internal/shared"
	"github.com/desertthunder/scx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Me fetches the profile of the authenticated user.
func (r *Runner) Me(ctx context.Context, cmd *cli.Command) error {
	client, _, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	user, err := client.CurrentUser(ctx, client.Session().AccessToken())
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}
	return r.render(ui.RenderUser(user) + "\n")
}

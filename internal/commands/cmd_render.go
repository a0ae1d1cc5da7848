package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/placardhq/placard/internal/printer"
)

type RenderCmd struct {
	flags *Flags

	payloadFile string
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render a message payload against the asset cache",
		UsageText: "placard render [-f payload.json]",
		Description: `Parses a raw message payload, loads its HTML body from the asset cache,
resolves each asset replacement group (cached remote assets first, bundled
local names as fallback), and prints the final expanded HTML to stdout.

The payload is JSON with a required "html" key naming the cached body and an
optional "remoteAssets" array of replacement groups.

Examples:
  placard render -f payload.json
  echo '{"html": "msg1.html"}' | placard render`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "read payload from file (default: stdin)",
				Destination: &cmd.payloadFile,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	detail, err := readPayload(cmd.payloadFile)
	if err != nil {
		return err
	}

	html, err := cmd.flags.Service.Render(ctx, detail)
	if err != nil {
		return fmt.Errorf("render message: %w", err)
	}

	fmt.Fprintln(os.Stdout, html)
	printer.Ctx(ctx).Successf("Message rendered")
	return nil
}

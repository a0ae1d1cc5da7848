package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/placardhq/placard/internal/printer"
)

type InteractCmd struct {
	flags *Flags

	payloadFile string
	queryID     string

	// events flags
	eventsLimit int
}

// NewInteractCmd creates a new interact command
func NewInteractCmd(flags *Flags) *InteractCmd {
	return &InteractCmd{flags: flags}
}

// Register adds the interact command to the application
func (cmd *InteractCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "interact",
		Usage:     "Process an interaction query against a message payload",
		UsageText: "placard interact --id <query-id> [-f payload.json]",
		Description: `Simulates an interaction reported by the display surface.

The query ID is split on the configured delimiter into a fixed number of
segments; the third segment must name a recognized tag. A recognized tag
raises a clicked event followed by a viewed event into the interaction log.
Anything else is ignored.

Examples:
  placard interact --id "h1,86f,3" -f payload.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "id",
				Usage:       "interaction query ID",
				Required:    true,
				Destination: &cmd.queryID,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "read payload from file (default: stdin)",
				Destination: &cmd.payloadFile,
			},
		},
		Action: cmd.runInteract,
	})

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "events",
		Usage:     "List recorded interaction events",
		UsageText: "placard events [--limit N]",
		Description: `Prints recorded clicked/viewed interaction events as JSON lines,
newest first.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "maximum number of events to print (0 = all)",
				Destination: &cmd.eventsLimit,
			},
		},
		Action: cmd.runEvents,
	})

	return app
}

func (cmd *InteractCmd) runInteract(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	detail, err := readPayload(cmd.payloadFile)
	if err != nil {
		return err
	}

	handled, err := cmd.flags.Service.Interact(ctx, detail, cmd.queryID)
	if err != nil {
		return fmt.Errorf("process interaction: %w", err)
	}

	if !handled {
		p.Warnf("Interaction %q ignored (unrecognized query)", cmd.queryID)
		return nil
	}

	p.Successf("Interaction %q handled: clicked and viewed events recorded", cmd.queryID)
	return nil
}

func (cmd *InteractCmd) runEvents(ctx context.Context, c *cli.Command) error {
	recorded, err := cmd.flags.Events.List(cmd.eventsLimit)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	if len(recorded) == 0 {
		printer.Ctx(ctx).Infof("No interaction events recorded")
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	for _, e := range recorded {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encode event: %w", err)
		}
	}

	return nil
}

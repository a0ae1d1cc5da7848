package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/placardhq/placard/internal/printer"
)

type CacheCmd struct {
	flags *Flags

	putFile string
}

// NewCacheCmd creates a new cache command
func NewCacheCmd(flags *Flags) *CacheCmd {
	return &CacheCmd{flags: flags}
}

// Register adds the cache command to the application
func (cmd *CacheCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "cache",
		Usage: "Inspect and seed the asset cache",
		Description: `Cache commands for the file-backed asset store.

HTML bodies live under "<namespace>/<name>" keys; downloaded remote assets
under "<message-id>/<url>" keys. Rendering only ever reads the cache; these
commands cover the write side normally owned by the asset downloader.`,
		Commands: []*cli.Command{
			cmd.lsCmd(),
			cmd.getCmd(),
			cmd.putCmd(),
		},
	})

	return app
}

func (cmd *CacheCmd) lsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List cache keys",
		UsageText: "placard cache ls [pattern]",
		Description: `Lists cache keys, optionally filtered by a glob pattern.

Patterns support doublestar globs, e.g. "rules_assets/**" or "**/*.png".`,
		Action: cmd.runLs,
	}
}

func (cmd *CacheCmd) getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print a cache entry to stdout",
		UsageText: "placard cache get <key>",
		Action:    cmd.runGet,
	}
}

func (cmd *CacheCmd) putCmd() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "Store a cache entry",
		UsageText: "placard cache put <key> [-f file]",
		Description: `Stores bytes under a cache key, reading from a file or stdin.

Examples:
  placard cache put rules_assets/msg1.html -f msg1.html
  echo '<html>Hi</html>' | placard cache put rules_assets/msg1.html`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "read entry from file (default: stdin)",
				Destination: &cmd.putFile,
			},
		},
		Action: cmd.runPut,
	}
}

func (cmd *CacheCmd) runLs(ctx context.Context, c *cli.Command) error {
	pattern := c.Args().First()

	keys, err := cmd.flags.Cache.List(ctx)
	if err != nil {
		return fmt.Errorf("list cache: %w", err)
	}

	var matched []string
	for _, key := range keys {
		if pattern != "" {
			ok, err := doublestar.Match(pattern, key)
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		matched = append(matched, key)
	}

	if len(matched) == 0 {
		printer.Ctx(ctx).Infof("No cache entries found")
		return nil
	}

	for _, key := range matched {
		fmt.Fprintln(os.Stdout, key)
	}
	return nil
}

func (cmd *CacheCmd) runGet(ctx context.Context, c *cli.Command) error {
	key := c.Args().First()
	if key == "" {
		return fmt.Errorf("cache key is required")
	}

	data, err := cmd.flags.Cache.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get cache entry %q: %w", key, err)
	}

	_, err = os.Stdout.Write(data)
	return err
}

func (cmd *CacheCmd) runPut(ctx context.Context, c *cli.Command) error {
	key := c.Args().First()
	if key == "" {
		return fmt.Errorf("cache key is required")
	}

	var (
		data []byte
		err  error
	)
	if cmd.putFile == "" || cmd.putFile == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read entry from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(cmd.putFile)
		if err != nil {
			return fmt.Errorf("read entry file: %w", err)
		}
	}

	if err := cmd.flags.Cache.Put(ctx, key, data); err != nil {
		return fmt.Errorf("put cache entry %q: %w", key, err)
	}

	printer.Ctx(ctx).Successf("Stored %d bytes at %s", len(data), key)
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/panbanda/funcspace/internal/cache"
	"github.com/panbanda/funcspace/internal/output"
)

func cacheCmd() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect or clear the analysis cache",
		Subcommands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Show cache entries and size",
				Action: runCacheStats,
			},
			{
				Name:   "clear",
				Usage:  "Remove every cached entry",
				Action: runCacheClear,
			},
		},
	}
}

// openConfiguredCache opens the configured cache along with a formatter for
// the command's status lines.
func openConfiguredCache(c *cli.Context) (*cache.Cache, *output.Formatter, string, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, "", err
	}
	cc, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cfg.Cache.Enabled)
	return cc, messages(c.App.Writer, cfg.Output.Color), cfg.Cache.Dir, err
}

func runCacheStats(c *cli.Context) error {
	cc, msg, dir, err := openConfiguredCache(c)
	if err != nil {
		return err
	}
	if !cc.Enabled() {
		msg.Warning("Cache is disabled")
		return nil
	}
	stats, err := cc.GetStats()
	if err != nil {
		return err
	}
	fmt.Fprintf(msg.Writer(), "Cache: %s\nEntries: %d\nSize: %d bytes\n", dir, stats.Entries, stats.TotalSize)
	if stats.Entries > 0 {
		fmt.Fprintf(msg.Writer(), "Oldest: %s\nNewest: %s\n",
			stats.OldestAge.Round(time.Second), stats.NewestAge.Round(time.Second))
	}
	return nil
}

func runCacheClear(c *cli.Context) error {
	cc, msg, dir, err := openConfiguredCache(c)
	if err != nil {
		return err
	}
	if !cc.Enabled() {
		msg.Warning("Cache is disabled")
		return nil
	}
	if err := cc.Clear(); err != nil {
		return err
	}
	msg.Success("Cleared %s", dir)
	return nil
}

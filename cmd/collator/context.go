package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"collator/internal/config"
	"collator/internal/library"
	"collator/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// resolveRoot picks the scan root: positional argument first, config second.
func (c *commandContext) resolveRoot(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return config.ExpandPath(args[0])
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Paths.LibraryDir, nil
}

// scanOutcome bundles a finished traversal with its timing for rendering.
type scanOutcome struct {
	runID   string
	root    string
	elapsed time.Duration
	result  *library.Result
}

// runScan acquires the run lock, builds the scanner from config, and walks
// the resolved root.
func (c *commandContext) runScan(args []string, lenient bool) (*scanOutcome, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	root, err := c.resolveRoot(args)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	logger = logger.With(slog.String(logging.FieldRunID, runID))

	lock, err := library.AcquireLock(cfg.LockPath())
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("release run lock", logging.Error(err))
		}
	}()

	scanner := library.NewScanner(library.Options{
		Layout: library.Layout{
			ArtistIndex: cfg.Layout.ArtistIndex,
			AlbumIndex:  cfg.Layout.AlbumIndex,
		},
		Lenient: lenient || cfg.Scan.Lenient,
		Logger:  logger,
	})

	start := time.Now()
	result, err := scanner.BuildLibrary(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return &scanOutcome{
		runID:   runID,
		root:    root,
		elapsed: time.Since(start),
		result:  result,
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thebtf/gormguide/internal/guide"
)

// debounceWindow coalesces the burst of write events editors emit per save.
const debounceWindow = 200 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "watch [files...]",
		Short: "Re-lint guide files whenever they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, rules, err := resolveTargets(configPath, args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watch(ctx, cmd, paths, rules)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to .guidelint.yaml")
	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, paths []string, rules guide.Rules) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		// Watch the directory: editors replace files on save, which drops
		// a watch registered on the file itself.
		if err := watcher.Add(filepath.Dir(p)); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		watched[filepath.Clean(p)] = struct{}{}
	}

	runLint := func() {
		report, err := guide.LintFiles(ctx, paths, rules)
		if err != nil {
			log.Error().Err(err).Msg("Lint failed")
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), RenderReport(report))
	}
	runLint()

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, tracked := watched[filepath.Clean(event.Name)]; !tracked {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Change detected")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")

		case <-pending:
			runLint()
		}
	}
}

package local

import (
	"context"

	"adamant/codec"
	"adamant/config"
	"adamant/modules"
	"adamant/util"
)

/*
 * package local runs adamant on the local machine: a watcher over a folder
 * of images, built from the full configuration.
 */
func RunWatcher(ctx context.Context, fullConfig *config.FullConfig,
	onModule func(*modules.Module), runners map[string]modules.Runner) error {

	// 1. read all the things we need
	if err := fullConfig.Validate(); err != nil {
		return err
	}
	opts, err := fullConfig.Codec.Options()
	if err != nil {
		return err
	}

	// 2. create all the things we need
	logger := util.NewLogger(&fullConfig.Logger)
	watcher, err := NewWatcher(&fullConfig.Watch, codec.New(opts, logger), logger)
	if err != nil {
		logger.LogError(err)
		return err
	}
	defer watcher.Close()

	watcher.OnModule = onModule
	for name, runner := range runners {
		if err := watcher.Runners().Register(name, runner); err != nil {
			return err
		}
	}

	// 3. block until the context is done
	return watcher.Watch(ctx)
}

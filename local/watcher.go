package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"adamant/codec"
	"adamant/config"
	"adamant/modules"
	"adamant/stegano/img"
	"adamant/util"
)

var ErrAlreadyWatching = errors.New("watcher is already running")

// Registry remembers images which were already handled.
// *util.DB and *util.Storage are registries.
type Registry interface {
	IsInDB(content []byte) (bool, error)
	Add(name string, content []byte) error
	Close() error
}

/*
 * Watcher looks for new images in a folder, decodes the ones carrying a
 * container and hands the resulting modules on. Every image is decoded
 * once: its digest goes to the registry whatever the outcome.
 */
type Watcher struct {
	folder      string
	extensions  []string
	interval    time.Duration
	autoExecute bool

	codec    *codec.Codec
	registry Registry
	runners  *modules.Registry
	logger   *util.Logger

	// called for every decoded module, before the runners
	OnModule func(m *modules.Module)

	mtx    sync.Mutex
	cancel context.CancelFunc
}

// NewWatcher opens the registry named by conf, or keeps it in memory.
func NewWatcher(conf *config.WatchConfig, c *codec.Codec, logger *util.Logger) (*Watcher, error) {
	var registry Registry = util.NewStorage()
	if conf.DbFile != "" {
		db, err := util.ConnectDB(conf.DbFile, conf.DbRowsLimit)
		if err != nil {
			return nil, fmt.Errorf("registry %s: %w", conf.DbFile, err)
		}
		registry = db
	}
	return NewWatcherWithRegistry(conf, c, registry, logger), nil
}

func NewWatcherWithRegistry(conf *config.WatchConfig, c *codec.Codec,
	registry Registry, logger *util.Logger) *Watcher {

	if logger == nil {
		logger = util.NopLogger()
	}
	interval := time.Duration(conf.Interval) * time.Millisecond
	if interval <= 0 {
		interval = config.DefaultInterval * time.Millisecond
	}
	return &Watcher{
		folder:      conf.Folder,
		extensions:  conf.Extensions,
		interval:    interval,
		autoExecute: conf.AutoExecute,
		codec:       c,
		registry:    registry,
		runners:     modules.NewRegistry(),
		logger:      logger,
	}
}

// Runners is where auto executed modules go.
func (w *Watcher) Runners() *modules.Registry {
	return w.runners
}

func (w *Watcher) SetAutoExecute(on bool) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.autoExecute = on
}

func (w *Watcher) AutoExecute() bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.autoExecute
}

func (w *Watcher) Watching() bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.cancel != nil
}

/*
 * Watch scans the folder every interval until ctx is done or Unwatch is
 * called. It returns nil after Unwatch and the context error otherwise.
 */
func (w *Watcher) Watch(ctx context.Context) error {
	w.mtx.Lock()
	if w.cancel != nil {
		w.mtx.Unlock()
		return ErrAlreadyWatching
	}
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mtx.Unlock()

	defer func() {
		w.mtx.Lock()
		w.cancel = nil
		w.mtx.Unlock()
		cancel()
	}()

	w.logger.LogInfof("watching %s every %s", w.folder, w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		if _, err := w.Scan(watchCtx); err != nil && watchCtx.Err() == nil {
			w.logger.LogError(err)
		}
		select {
		case <-watchCtx.Done():
			w.logger.LogInfo("watcher stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Watcher) Unwatch() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if w.cancel != nil {
		w.cancel()
	}
}

// Scan makes one pass over the folder and returns the new modules.
func (w *Watcher) Scan(ctx context.Context) ([]*modules.Module, error) {
	files, err := util.ReadFiles(w.folder, w.extensions)
	if err != nil {
		return nil, err
	}

	found := []*modules.Module{}
	for _, filename := range files {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		m, err := w.handle(filename)
		if err != nil {
			w.logger.LogWarning(fmt.Sprintf("%s: %v", filename, err))
			continue
		}
		if m == nil {
			continue
		}
		found = append(found, m)
		w.dispatch(ctx, m)
	}
	return found, nil
}

// handle returns nil without error for images already seen or carrying nothing.
func (w *Watcher) handle(filename string) (*modules.Module, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	seen, err := w.registry.IsInDB(data)
	if err != nil || seen {
		return nil, err
	}
	if err := w.registry.Add(filepath.Base(filename), data); err != nil {
		return nil, err
	}

	text, info, err := w.codec.DecodeWithInfo(img.ImageData(data))
	if errors.Is(err, codec.ErrNotAdamant) {
		util.DebugPrintln(filename, "carries no container")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	m := modules.NewModule(filepath.Base(filename), text, map[string]string{
		"path":   filename,
		"digest": util.Digest(data),
		"format": string(img.DetectFormat(data)),
		"layout": info.Layout.String(),
		"size":   fmt.Sprintf("%dx%d", info.Width, info.Height),
	})
	w.logger.LogInfof("module %s: %d characters", m.Name, len([]rune(text)))
	return m, nil
}

func (w *Watcher) dispatch(ctx context.Context, m *modules.Module) {
	if w.OnModule != nil {
		w.OnModule(m)
	}
	if !w.AutoExecute() {
		return
	}
	if err := w.runners.Run(ctx, m); err != nil {
		w.logger.LogError(fmt.Errorf("module %s: %w", m.Name, err))
	}
}

func (w *Watcher) Close() error {
	w.Unwatch()
	return w.registry.Close()
}

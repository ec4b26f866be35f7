package reload

import (
	"context"

	"hotserve/core/version"
	"hotserve/core/watcher"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Service tracks changes below the source directory.
type Service struct {
	counter *version.Counter
	watcher *watcher.Watcher
	logger  *zap.Logger
}

// NewService starts watching root. Every change event bumps the version.
func NewService(root string, logger *zap.Logger) (*Service, error) {
	s := &Service{
		counter: version.New(),
		logger:  logger,
	}

	w, err := watcher.New(root, logger, s.onChange)
	if err != nil {
		return nil, err
	}
	s.watcher = w

	return s, nil
}

// Version returns the current reload version.
func (s *Service) Version() uint16 {
	return s.counter.Load()
}

// Run delivers watcher events until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	return s.watcher.Run(ctx)
}

// Close stops watching.
func (s *Service) Close() error {
	return s.watcher.Close()
}

func (s *Service) onChange(event fsnotify.Event) {
	v := s.counter.Increment()
	s.logger.Debug("Reload version bumped", zap.Uint16("version", v), zap.String("path", event.Name))
}

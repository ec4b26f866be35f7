package static

import (
	"net/http"
	"path"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Service resolves request paths to files below the source directory.
type Service struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewService creates a resolver confined to root.
func NewService(root string, logger *zap.Logger) *Service {
	return NewServiceWithFs(afero.NewBasePathFs(afero.NewOsFs(), root), logger)
}

// NewServiceWithFs creates a resolver over an arbitrary filesystem whose root
// is the source directory.
func NewServiceWithFs(fs afero.Fs, logger *zap.Logger) *Service {
	return &Service{fs: fs, logger: logger}
}

// Resolve maps a decoded request path (without the leading '/') to a file.
//
// The empty path resolves to index.html. Any other path is read as a regular
// file and, failing that, as <path>/index.html. The path is cleaned as a
// rooted path first, so ".." segments never leave the source directory.
func (s *Service) Resolve(requestPath string) ResolvedFile {
	if requestPath == "" {
		file, _ := s.read("/" + IndexFile)
		return file
	}

	name := path.Clean("/" + requestPath)
	if file, ok := s.read(name); ok {
		return file
	}

	file, _ := s.read(path.Join(name, IndexFile))
	return file
}

func (s *Service) read(name string) (ResolvedFile, bool) {
	notFound := ResolvedFile{Status: http.StatusNotFound}

	info, err := s.fs.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		return notFound, false
	}

	body, err := afero.ReadFile(s.fs, name)
	if err != nil {
		s.logger.Debug("Failed to read file", zap.String("path", name), zap.Error(err))
		return notFound, false
	}

	return ResolvedFile{
		Path:   name,
		Body:   body,
		Ext:    Extension(name),
		Status: http.StatusOK,
	}, true
}

// Extension returns the text after the last '.' of the final segment of p,
// or "" when that segment has no dot.
func Extension(p string) string {
	base := path.Base(p)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i+1:]
}

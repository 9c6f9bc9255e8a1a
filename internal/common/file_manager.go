package common

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DefaultMaxReadSize caps reads of config files and saved pages.
const DefaultMaxReadSize int64 = 10 * 1024 * 1024

// FileReadOptions controls FileManager.ReadFile.
type FileReadOptions struct {
	// MaxSize rejects files larger than this many bytes; zero disables the check.
	MaxSize int64
}

// DefaultFileReadOptions returns read options with the default size cap
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{MaxSize: DefaultMaxReadSize}
}

// FileManager provides file operations with standardized error handling and logging
type FileManager struct {
	logger zerolog.Logger
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// ReadFile reads a whole file, enforcing opts.MaxSize
func (fm *FileManager) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to stat file: %s", path))
	}
	if info.IsDir() {
		return nil, NewValidationError("path", path, "is a directory")
	}
	if opts.MaxSize > 0 && info.Size() > opts.MaxSize {
		return nil, NewValidationError("path", path, fmt.Sprintf("file exceeds %d bytes", opts.MaxSize))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to open file: %s", path))
	}
	defer func() {
		if err := file.Close(); err != nil {
			fm.logger.Error().Err(err).Str("path", path).Msg("Failed to close file.")
		}
	}()

	var reader io.Reader = file
	if opts.MaxSize > 0 {
		reader = io.LimitReader(file, opts.MaxSize)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to read file content: %s", path))
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("File read")
	return content, nil
}

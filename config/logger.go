package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// LogFileName is the application log written inside the config directory.
const LogFileName = "colorized.log"

var (
	appLogFile  *os.File
	appLogMutex sync.Mutex
)

// rotatingWriter appends to the log file and rotates it once it grows past maxSize.
type rotatingWriter struct {
	dir        string
	maxSize    int64
	maxBackups int
	size       int64
	file       *os.File

	// errOut receives open failures; they are reported once until the file opens again
	errOut io.Writer
	failed bool
}

// InitLogger points the standard logger at colorized.log (and stderr).
// This should be called once during application startup.
func InitLogger(configDir string, cfg LogConfig) error {
	appLogMutex.Lock()
	defer appLogMutex.Unlock()

	w := &rotatingWriter{
		dir:        configDir,
		maxSize:    int64(cfg.MaxSizeMB) * 1024 * 1024,
		maxBackups: cfg.MaxBackups,
		errOut:     os.Stderr,
	}
	if w.maxSize <= 0 {
		w.maxSize = 5 * 1024 * 1024
	}
	if w.maxBackups < 0 {
		w.maxBackups = 0
	}

	// Check if we need to rotate before opening
	if info, err := os.Stat(w.path()); err == nil && info.Size() >= w.maxSize {
		if err := w.rotate(); err != nil {
			return fmt.Errorf("failed to rotate logs: %w", err)
		}
	}

	if err := w.open(); err != nil {
		return err
	}
	appLogFile = w.file

	log.SetOutput(io.MultiWriter(os.Stderr, w))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	log.Printf("=== Colorized %s (%s) logger initialized ===", Version, GitCommit)
	log.Printf("Log file: %s", w.path())
	return nil
}

// CloseLogger restores stderr logging and closes the log file handle
func CloseLogger() {
	appLogMutex.Lock()
	defer appLogMutex.Unlock()

	if appLogFile != nil {
		log.SetOutput(os.Stderr)
		appLogFile.Close()
		appLogFile = nil
	}
}

// LogFilePath returns where InitLogger writes for the given config directory.
func LogFilePath(configDir string) string {
	return filepath.Join(configDir, LogFileName)
}

func (w *rotatingWriter) path() string {
	return LogFilePath(w.dir)
}

func (w *rotatingWriter) open() error {
	file, err := os.OpenFile(w.path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	w.file = file
	w.size = info.Size()
	w.failed = false
	return nil
}

// Write is called by the standard logger, which serialises calls itself.
func (w *rotatingWriter) Write(p []byte) (int, error) {
	if w.file == nil {
		// a previous rotation could not reopen the file; try again
		if err := w.open(); err != nil {
			w.reportOpenFailure(err)
			return len(p), nil
		}
		appLogFile = w.file
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	if err != nil {
		return n, err
	}

	if w.size >= w.maxSize {
		if err := w.rotate(); err != nil {
			return n, err
		}
		if err := w.open(); err != nil {
			w.reportOpenFailure(err)
			return n, nil
		}
		appLogFile = w.file
	}
	return n, nil
}

func (w *rotatingWriter) reportOpenFailure(err error) {
	if w.failed || w.errOut == nil {
		return
	}
	w.failed = true
	fmt.Fprintf(w.errOut, "colorized: log file unavailable, writing to stderr only: %v\n", err)
}

// rotate performs log rotation: colorized.log -> .1 -> .2 ... up to maxBackups
func (w *rotatingWriter) rotate() error {
	if w.file != nil {
		w.file.Close()
		w.file = nil
	}

	basePath := w.path()

	if w.maxBackups == 0 {
		if err := os.Remove(basePath); err != nil && !os.IsNotExist(err) {
			return err
		}
		w.size = 0
		return nil
	}

	// Remove oldest backup
	os.Remove(fmt.Sprintf("%s.%d", basePath, w.maxBackups)) // Ignore error if file doesn't exist

	// Rotate existing backups
	for i := w.maxBackups - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		newPath := fmt.Sprintf("%s.%d", basePath, i+1)
		os.Rename(oldPath, newPath) // Ignore error if source doesn't exist
	}

	// Move current log to .1
	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}
	w.size = 0
	return nil
}

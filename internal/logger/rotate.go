package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// rotatingFile is a zapcore.WriteSyncer that rolls the log file over
// to numbered backups (file.1 ... file.N) when it grows past MaxSize
// or, at open time, when it is older than MaxAge days.
type rotatingFile struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxAge     int
	maxBackups int
	file       *os.File
	size       int64
}

func openRotatingFile(config Config) (*rotatingFile, error) {
	logDir := filepath.Dir(config.FilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &rotatingFile{
		path:       config.FilePath,
		maxSize:    config.MaxSize,
		maxAge:     config.MaxAge,
		maxBackups: config.MaxBackups,
	}

	if info, err := os.Stat(r.path); err == nil {
		tooBig := r.maxSize > 0 && info.Size() >= r.maxSize
		tooOld := r.maxAge > 0 && time.Since(info.ModTime()) > time.Duration(r.maxAge)*24*time.Hour
		if tooBig || tooOld {
			if err := r.shiftBackups(); err != nil {
				return nil, err
			}
		}
	}

	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *rotatingFile) open() error {
	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = file
	r.size = info.Size()
	return nil
}

// shiftBackups moves file.(i) to file.(i+1) and the live file to file.1
func (r *rotatingFile) shiftBackups() error {
	for i := r.maxBackups - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", r.path, i)
		newPath := fmt.Sprintf("%s.%d", r.path, i+1)
		_ = os.Rename(oldPath, newPath)
	}

	if _, err := os.Stat(r.path); err == nil {
		if r.maxBackups < 1 {
			return os.Remove(r.path)
		}
		if err := os.Rename(r.path, r.path+".1"); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}
	return nil
}

func (r *rotatingFile) rotate() error {
	if r.file != nil {
		r.file.Close()
		r.file = nil
	}
	if err := r.shiftBackups(); err != nil {
		return err
	}
	return r.open()
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}
	if r.file == nil {
		return 0, os.ErrClosed
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *rotatingFile) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	return r.file.Sync()
}

func (r *rotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

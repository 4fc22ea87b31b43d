package global

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// rollingFileWriter appends to <dir>/<name>.log. Once that file would grow past maxSize
// it becomes <name>-1.log, older archives shift up by one and anything past maxFiles is removed.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string

	maxSize  int64
	maxFiles int

	mu *sync.Mutex
}

func NewRollingFileWriter(fileDir string, fileName string, maxSize int64, maxFiles int) (rollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return rollingFileWriter{}, err
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		return rollingFileWriter{}, err
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		maxSize:       maxSize,
		maxFiles:      max(maxFiles, 1),
		mu:            &sync.Mutex{},
	}, nil
}

func (w rollingFileWriter) getFullFilePath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLog(index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

func (w rollingFileWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	stats, err := os.Stat(w.getFullFilePath())
	if err == nil && stats.Size() > 0 && stats.Size()+int64(len(b)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, err
	}

	mainLogFile, err := os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// rotate archives the main log. The main file itself counts towards maxFiles.
func (w rollingFileWriter) rotate() error {
	archives := w.maxFiles - 1

	if archives == 0 {
		return os.Remove(w.getFullFilePath())
	}

	if err := os.Remove(w.indexedLog(archives)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for i := archives - 1; i >= 1; i-- {
		if err := os.Rename(w.indexedLog(i), w.indexedLog(i+1)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return os.Rename(w.getFullFilePath(), w.indexedLog(1))
}

// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. Its output is controlled by
// SetOutput and SetOutputFile, and is discarded until either is called.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags|log.Lmsgprefix)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// new io.Writer. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if f, ok := out.(*os.File); ok && opened[f] {
		f.Close()
		delete(opened, f)
	}
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

var opened = map[*os.File]bool{}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file. If the file exists, logs are appended to it. If fname is
// empty, logs are discarded.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	SetOutput(file)
	mu.Lock()
	opened[file] = true
	mu.Unlock()
	return nil
}

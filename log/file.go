package log

import (
	"os"
	"path/filepath"
)

// File is an open log file.
// Log file can be outside the working directory, so it is NOT using a virtual filesystem.
type File struct {
	file *os.File
	path string
}

// NewFile opens the log file for appending. Empty path is a caller error,
// a logger without a file sink is created by passing a nil *File.
func NewFile(path string) (*File, error) {
	f := &File{}

	if v, err := filepath.Abs(path); err == nil {
		f.path = v
	} else {
		return nil, err
	}

	if file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
		f.file = file
		return f, nil
	} else {
		return nil, err
	}
}

func (f *File) File() *os.File {
	return f.file
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Close() error {
	if f == nil {
		return nil
	}
	return f.file.Close()
}

// Package file contains utilities related to file operations (e.g. reading files).
package file

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"tubaudio/internal/utils/logging"
)

// ReadFileLines loads lines from a file (one per line, ignoring '#' comment lines).
func ReadFileLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.E(0, "failed to close file %v due to error: %v", path, err)
		}
	}()

	f := []string{}
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue // skip blank lines and comments
		}
		f = append(f, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return f, nil
}

// ReadURLFile returns the URLs listed in path, in file order.
//
// A missing file is an empty batch, not an error.
func ReadURLFile(path string) ([]string, error) {
	urls, err := ReadFileLines(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	return urls, nil
}

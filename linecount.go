// Package linecount counts newline-delimited lines in files.
//
// Files are read whole, decoded permissively as UTF-8 (invalid byte
// sequences become U+FFFD instead of failing) and counted with the usual
// text-lines rules: lines are split on '\n', a '\r' right before the '\n'
// belongs to the terminator, a trailing terminator does not start an extra
// empty line, and an unterminated final fragment still counts.
//
// Basic usage:
//
//	counter := linecount.NewCounter([]string{"a.txt", "b.txt"})
//	results, err := counter.Count()
//	if err != nil {
//		// err is a *linecount.FileError naming the offending file
//	}
//	for _, r := range results.Entries {
//		fmt.Println(r.Lines, r.Name)
//	}
//
// Files are processed one at a time, in order. The first file that cannot
// be opened or read stops the run and no partial results are returned.
package linecount

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Result is the line count of a single file.
type Result struct {
	Lines int    // Number of lines in the file
	Name  string // File name as given on the command line
}

// Results holds the per-file counts of one run, in argument order,
// together with their sum.
type Results struct {
	Entries []Result
	Total   int
}

// FileError reports a file that could not be opened or read.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("Error reading file %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// Decode converts raw bytes to text, replacing every invalid UTF-8
// sequence with the Unicode replacement character. It never fails.
func Decode(data []byte) string {
	// The UTF-8 decoder writes U+FFFD for ill-formed input instead of
	// returning an error.
	out, _, _ := transform.Bytes(unicode.UTF8.NewDecoder(), data)
	return string(out)
}

// CountLines returns the number of lines in text.
//
// An empty string has zero lines. "a\nb" and "a\nb\n" both have two,
// and "a\r\nb\r\n" has two as well.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// CountFile opens path, reads it completely and counts its lines.
// Any open or read failure is returned as a *FileError.
func CountFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, &FileError{Name: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Result{}, &FileError{Name: path, Err: unwrapPathError(err)}
	}

	return Result{Lines: CountLines(Decode(data)), Name: path}, nil
}

// unwrapPathError strips the *os.PathError wrapper so the message carries
// the bare system error text, e.g. "no such file or directory". The
// file name is already part of FileError's own message.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}

// Counter counts lines across a list of files, sequentially.
// A Counter is not safe for concurrent use.
type Counter struct {
	paths []string
}

// NewCounter creates a Counter for the given file names.
func NewCounter(paths []string) *Counter {
	return &Counter{paths: paths}
}

// Count processes every file in order. On the first failure it returns
// nil results and the *FileError for that file; files after it are not
// touched.
func (c *Counter) Count() (*Results, error) {
	results := &Results{Entries: make([]Result, 0, len(c.paths))}

	for _, path := range c.paths {
		r, err := CountFile(path)
		if err != nil {
			return nil, err
		}
		results.Entries = append(results.Entries, r)
		results.Total += r.Lines
	}

	return results, nil
}

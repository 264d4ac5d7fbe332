/*
Package ucdtest reads test files in the style of the Unicode Character Database:
one record per line, fields separated by ';', comments starting with '#'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucdtest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestFile is a UCD-style test file, open for reading.
type TestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	line    int
	text    string
	comment string
}

// Open opens a test file. If t is non-nil, failing to open the file is
// reported as a fatal test error.
func Open(filename string, t *testing.T) (*TestFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Fatalf("ERROR loading %s: %v", filename, err)
		}
		return nil, fmt.Errorf("loading test file: %w", err)
	}
	tf := &TestFile{
		in:      f,
		scanner: bufio.NewScanner(f),
	}
	return tf, nil
}

// Path returns the path of a file in the testdata directory of the calling
// package.
func Path(file string) string {
	_, caller, _, ok := runtime.Caller(1)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(caller), "testdata", file)
}

// Scan advances to the next record, skipping empty lines and comment lines.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		tf.line++
		text := strings.TrimSpace(tf.scanner.Text())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		tf.text, tf.comment = text, ""
		if k := strings.IndexByte(text, '#'); k >= 0 {
			tf.text, tf.comment = strings.TrimSpace(text[:k]), strings.TrimSpace(text[k+1:])
		}
		return true
	}
	return false
}

// Text returns the current record without its comment.
func (tf *TestFile) Text() string {
	return tf.text
}

// Comment returns the comment of the current record, if any.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// Line returns the line number of the current record.
func (tf *TestFile) Line() int {
	return tf.line
}

// Fields splits the current record at ';' and trims the fields.
func (tf *TestFile) Fields() []string {
	fields := strings.Split(tf.text, ";")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// Err returns the first non-EOF error of the underlying scanner.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}

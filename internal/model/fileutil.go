package model

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ReadResult is the outcome of a best-effort text read.
// Exactly one of Content or Err is meaningful: Err != nil means the file was skipped.
type ReadResult struct {
	Path    string
	Content string
	Err     error // Why the file was skipped
}

// Skipped reports whether the file could not be read.
func (r ReadResult) Skipped() bool {
	return r.Err != nil
}

// illFormedDropper copies valid UTF-8 through unchanged and drops every byte
// that does not start a decodable sequence. Literal U+FFFD is valid and kept.
type illFormedDropper struct{ transform.NopResetter }

func (illFormedDropper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// ReadText reads the whole file at path as UTF-8, silently dropping byte
// sequences that do not decode. Open and read failures are returned in the
// result, never as a panic.
func ReadText(path string) ReadResult {
	result := ReadResult{Path: path}

	file, err := os.Open(path)
	if err != nil {
		result.Err = fmt.Errorf("could not open file: %w", err)
		return result
	}
	defer file.Close()

	b, err := io.ReadAll(transform.NewReader(file, illFormedDropper{}))
	if err != nil {
		result.Err = fmt.Errorf("error reading file: %w", err)
		return result
	}

	result.Content = string(b)
	return result
}

// JoinPath appends name to dir with a single separator.
// Unlike filepath.Join it does not clean the result, so paths keep the
// exact shape they were given during the walk.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// ExpandTilde expands a leading ~ to the user's home directory
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/atikulmunna/logreport/internal/model"
)

// ErrFileNotFound is matched by every error caused by a log file that
// does not exist or cannot be opened.
var ErrFileNotFound = errors.New("log file not found")

var errIsDir = errors.New("is a directory")

// FileError reports a log file that could not be opened.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("log file %s not found: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrFileNotFound and the underlying cause.
func (e *FileError) Unwrap() []error {
	return []error{ErrFileNotFound, e.Err}
}

// Result is the outcome of parsing one input.
type Result struct {
	Path    string
	Lines   int
	Records []model.Record
}

// RegexParser extracts records from lines using named capture groups.
// It holds no mutable state and is safe for concurrent use.
type RegexParser struct {
	re    *regexp.Regexp
	names []string
}

// NewRegexParser compiles pattern and returns a parser for it.
func NewRegexParser(pattern string) (*RegexParser, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return FromRegexp(re), nil
}

// FromRegexp wraps an already compiled pattern.
func FromRegexp(re *regexp.Regexp) *RegexParser {
	var names []string
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		names = append(names, name)
	}
	return &RegexParser{re: re, names: names}
}

// Fields returns the named groups every record from this parser carries.
func (p *RegexParser) Fields() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Parse matches a single line. Lines that do not match yield ok == false.
func (p *RegexParser) Parse(line string) (model.Record, bool) {
	matches := p.re.FindStringSubmatch(line)
	if matches == nil {
		return nil, false
	}

	rec := make(model.Record, len(p.names))
	for i, name := range p.re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		rec[name] = matches[i]
	}
	return rec, true
}

// ParseReader reads r line by line and collects a record for every
// matching line. There is no line length limit.
func (p *RegexParser) ParseReader(r io.Reader) (Result, error) {
	var res Result
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			res.Lines++
			line = strings.TrimRight(line, "\r\n")
			if rec, ok := p.Parse(line); ok {
				res.Records = append(res.Records, rec)
			}
		}
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
	}
}

// ParseFile opens path and parses it with ParseReader. The file is
// closed before ParseFile returns.
func (p *RegexParser) ParseFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{Path: path}, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Result{Path: path}, &FileError{Path: path, Err: err}
	}
	if info.IsDir() {
		return Result{Path: path}, &FileError{Path: path, Err: errIsDir}
	}

	res, err := p.ParseReader(f)
	res.Path = path
	if err != nil {
		// *os.File errors already name the path
		return res, fmt.Errorf("read log file: %w", err)
	}
	return res, nil
}

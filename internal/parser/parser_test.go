package parser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atikulmunna/logreport/internal/model"
)

const testPattern = `(?P<level>INFO|ERROR) (?P<source>\S+): (?P<endpoint>/\S+)`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRegexParser(t *testing.T) {
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	rec, ok := p.Parse("INFO django.request: /api/test")
	require.True(t, ok)
	assert.Equal(t, model.Record{"level": "INFO", "source": "django.request", "endpoint": "/api/test"}, rec)
}

func TestRegexParserNoMatch(t *testing.T) {
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	rec, ok := p.Parse("just some noise")
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestRegexParserOptionalGroup(t *testing.T) {
	p, err := NewRegexParser(`(?P<level>INFO|ERROR)(?: (?P<endpoint>/\S+))?`)
	require.NoError(t, err)

	rec, ok := p.Parse("ERROR")
	require.True(t, ok)
	endpoint, present := rec["endpoint"]
	assert.True(t, present, "unmatched optional group must still be a field")
	assert.Equal(t, "", endpoint)
}

func TestRegexParserInvalidPattern(t *testing.T) {
	_, err := NewRegexParser(`[invalid`)
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{"level", "source", "endpoint"}, p.Fields())
}

func TestParseFile(t *testing.T) {
	path := writeLog(t, "INFO django.request: /api/test\nERROR django.request: /api/test\n")
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	res, err := p.ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, res.Path)
	assert.Equal(t, 2, res.Lines)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "INFO", res.Records[0]["level"])
	assert.Equal(t, "django.request", res.Records[0]["source"])
	assert.Equal(t, "/api/test", res.Records[0]["endpoint"])
	assert.Equal(t, "ERROR", res.Records[1]["level"])
}

func TestParseFileRecordFieldSet(t *testing.T) {
	path := writeLog(t, "INFO a: /x\nnoise\nERROR b: /y\r\nINFO c: /z")
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	res, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Lines)
	require.Len(t, res.Records, 3)

	for _, rec := range res.Records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, p.Fields(), keys)
	}
	// CRLF is stripped before matching
	assert.Equal(t, "/y", res.Records[1]["endpoint"])
}

func TestParseFileEmpty(t *testing.T) {
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	res, err := p.ParseFile(writeLog(t, ""))
	require.NoError(t, err)
	assert.Zero(t, res.Lines)
	assert.Empty(t, res.Records)
}

func TestParseFileNoiseOnly(t *testing.T) {
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	res, err := p.ParseFile(writeLog(t, "starting up\n\n--- banner ---\n"))
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestParseFileLongLine(t *testing.T) {
	long := "INFO django.request: /" + strings.Repeat("a", 200*1024) + "\n"
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	res, err := p.ParseFile(writeLog(t, long))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Len(t, res.Records[0]["endpoint"], 200*1024+1)
}

func TestParseFileInvalidFile(t *testing.T) {
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	_, err = p.ParseFile(filepath.Join(t.TempDir(), "nonexistent_file.log"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Path, "nonexistent_file.log")
}

func TestParseFileDirectory(t *testing.T) {
	p, err := NewRegexParser(testPattern)
	require.NoError(t, err)

	dir := t.TempDir()
	_, err = p.ParseFile(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, dir, fe.Path)
	assert.Equal(t, 1, strings.Count(err.Error(), dir))
}

package data

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const utf8BOM = "\ufeff"

// ReadCSV loads a comma separated file with a header row. An absent file
// is reported as ErrNotFound; any other read or shape problem as ErrMalformed.
func ReadCSV(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(ErrMalformed, "open %s: %v", path, err)
	}
	defer file.Close()

	f, err := DecodeCSV(file)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s", path)
	}
	return f, nil
}

// DecodeCSV parses CSV from r. Records shorter than the header are padded
// with empty cells, which read as missing; longer records are rejected.
// A bare quote inside an unquoted field is kept as a literal character.
func DecodeCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrMalformed, "empty file, no header row")
	}
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "header: %v", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	var rows [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%v", err)
		}
		if len(rec) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, errors.Wrapf(ErrMalformed, "record on line %d: %d fields, header has %d", line, len(rec), len(header))
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		rows = append(rows, rec)
	}
	return NewFrame(header, rows), nil
}

// EncodeCSV writes the header followed by every row.
func EncodeCSV(w io.Writer, f *Frame) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(f.Header); err != nil {
		return errors.Wrap(err, "write header")
	}
	if err := writer.WriteAll(f.Rows); err != nil {
		return errors.Wrap(err, "write rows")
	}
	return nil
}

// WriteCSV persists f at path, creating parent directories.
func WriteCSV(path string, f *Frame) error {
	return WriteFileAtomic(path, func(w io.Writer) error { return EncodeCSV(w, f) })
}

// WriteFileAtomic creates the parent directories of path, streams write
// into a temporary sibling and renames it over path. On failure the
// temporary file is removed and path is left untouched.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create directory %s", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrap(err, "chmod temporary file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temporary file")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "rename into %s", path)
	}
	return nil
}

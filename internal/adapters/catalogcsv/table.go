package catalogcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// record is one data row addressed by header name.
type record struct {
	file   string
	line   int
	index  map[string]int
	fields []string
}

func (r record) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r record) errorf(format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s", r.file, r.line, fmt.Sprintf(format, args...))
}

func (r record) intField(col string) (int64, error) {
	v, err := strconv.ParseInt(r.get(col), 10, 64)
	if err != nil {
		return 0, r.errorf("%s: %q is not an integer", col, r.get(col))
	}
	return v, nil
}

func (r record) boolField(col string) (bool, error) {
	raw := r.get(col)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, r.errorf("%s: %q is not a boolean", col, raw)
	}
	return v, nil
}

// readTable reads name from fsys. The first row is the header; every column in
// required must be present. A missing optional file yields no records.
func readTable(fsys fs.FS, name string, required []string, optional bool) ([]record, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", name, err)
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", name, col)
		}
	}

	var out []record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		line, _ := reader.FieldPos(0)
		if blank(fields) {
			continue
		}
		out = append(out, record{file: name, line: line, index: index, fields: fields})
	}
	return out, nil
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var _ Extractor = CSVExtractor{}

// CSVExtractor converts tabular data to prose the chunkers can split on
// paragraph boundaries. The first row is treated as headers; each data row
// becomes one "Header: value, Header: value" paragraph.
type CSVExtractor struct{}

func (CSVExtractor) Extract(content []byte) (string, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(content)) == 0 {
		return "", nil
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	headers, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", fmt.Errorf("read csv headers: %w", err)
	}

	var rows []string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read csv row: %w", err)
		}

		var fields []string
		for i, val := range record {
			if i >= len(headers) {
				break
			}
			val = strings.TrimSpace(val)
			if val == "" {
				continue
			}
			fields = append(fields, headers[i]+": "+val)
		}
		if len(fields) > 0 {
			rows = append(rows, strings.Join(fields, ", "))
		}
	}

	return strings.Join(rows, "\n\n"), nil
}

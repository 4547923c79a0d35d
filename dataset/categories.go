package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ducksouplab/ridgeplot/helpers"
)

// API

// ReadCategories reads one category per line (txt) or per row, first column (csv, xlsx).
// Blank entries are skipped.
func ReadCategories(r io.Reader, format string) ([]string, error) {
	var categories []string
	if format == "txt" || format == "" {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				categories = append(categories, line)
			}
		}
		return categories, scanner.Err()
	}

	rows, err := readTable(r, format)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if value := cell(row, 0); value != "" {
			categories = append(categories, value)
		}
	}
	return categories, nil
}

func LoadCategories(path string) ([]string, error) {
	f, err := helpers.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	categories, err := ReadCategories(f, helpers.Format(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return categories, nil
}

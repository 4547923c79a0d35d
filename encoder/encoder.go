// Package encoder assigns palette colors to categorical labels in first-seen order.
package encoder

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ducksouplab/ridgeplot/colors"
	"github.com/ducksouplab/ridgeplot/config"
)

var (
	ErrNotFit          = errors.New("call fit first")
	ErrNotEnoughColors = errors.New("not enough colors")
)

// UnseenError lists (sorted) the categories given to Transform that Fit never saw
type UnseenError struct {
	Categories []string
}

func (e *UnseenError) Error() string {
	return "input categories contain unseen data: " + strings.Join(e.Categories, ", ")
}

// Entry is one category and its color token
type Entry struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// encoding is only built by fit, a nil *encoding means "not fit yet"
type encoding struct {
	entries []Entry
	index   map[string]string
}

func newEncoding(entries []Entry) *encoding {
	index := make(map[string]string, len(entries))
	for _, e := range entries {
		index[e.Category] = e.Color
	}
	return &encoding{entries: entries, index: index}
}

type ColorEncoder struct {
	encoding *encoding
}

// OrderedSet dedupes xs keeping the first-seen order
func OrderedSet(xs []string) []string {
	seen := make(map[string]bool, len(xs))
	set := []string{}
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			set = append(set, x)
		}
	}
	return set
}

// CheckColorVectorSize returns the distinct categories, failing when colors can't cover them.
// Colors are intentionally not checked for duplicates.
func CheckColorVectorSize(categories, colors []string) ([]string, error) {
	distinct := OrderedSet(categories)
	if len(distinct) > len(colors) {
		return nil, fmt.Errorf("%w: %d colors for %d categories", ErrNotEnoughColors, len(colors), len(distinct))
	}
	return distinct, nil
}

// API

func New() *ColorEncoder {
	return &ColorEncoder{}
}

// Fit pairs distinct categories with colors positionally, nil colors means the configured
// default palette
func (ce *ColorEncoder) Fit(categories, palette []string) error {
	if palette == nil {
		var err error
		if palette, err = colors.Get(config.Style.Encoder.Palette); err != nil {
			return err
		}
	}
	distinct, err := CheckColorVectorSize(categories, palette)
	if err != nil {
		return err
	}
	entries := make([]Entry, len(distinct))
	for i, category := range distinct {
		entries[i] = Entry{Category: category, Color: palette[i]}
	}
	ce.encoding = newEncoding(entries)
	return nil
}

func (ce *ColorEncoder) Transform(categories []string) ([]string, error) {
	if ce.encoding == nil {
		return nil, ErrNotFit
	}
	var unseen []string
	for _, category := range OrderedSet(categories) {
		if _, ok := ce.encoding.index[category]; !ok {
			unseen = append(unseen, category)
		}
	}
	if len(unseen) > 0 {
		sort.Strings(unseen)
		return nil, &UnseenError{Categories: unseen}
	}

	out := make([]string, len(categories))
	for i, category := range categories {
		out[i] = ce.encoding.index[category]
	}
	return out, nil
}

func (ce *ColorEncoder) FitTransform(categories, palette []string) ([]string, error) {
	if err := ce.Fit(categories, palette); err != nil {
		return nil, err
	}
	return ce.Transform(categories)
}

func (ce *ColorEncoder) Fitted() bool {
	return ce.encoding != nil
}

// Encoding returns a copy of the ordered category -> color pairs, nil before fit
func (ce *ColorEncoder) Encoding() []Entry {
	if ce.encoding == nil {
		return nil
	}
	return append([]Entry(nil), ce.encoding.entries...)
}

func (ce *ColorEncoder) Categories() []string {
	if ce.encoding == nil {
		return nil
	}
	categories := make([]string, len(ce.encoding.entries))
	for i, e := range ce.encoding.entries {
		categories[i] = e.Category
	}
	return categories
}

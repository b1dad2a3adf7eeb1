package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// MaxTotalProbability is the largest accepted sum of all row probabilities.
	MaxTotalProbability = 1.0

	ExceededTitle   = "エラー"
	ExceededMessage = "合計確率は1.0以下である必要があります。"
)

// probabilityPrinter uses a fixed locale so the decimal separator stays "."
// and formatted values always parse back with ParseProbability.
var probabilityPrinter = message.NewPrinter(language.Japanese)

// Row is a single (label, probability) pair of the form. Rows carry no key;
// their identity is their position in the list.
type Row struct {
	Label       string
	Probability string
}

// AggregateState is the result of the last commit recomputation
type AggregateState struct {
	TotalProbability float64
	RowCount         int
}

// NewRowList builds count rows with the uniform probability 1/count. Labels
// are restored positionally; missing positions stay empty.
func NewRowList(count int, labels []string) []Row {
	if count <= 0 {
		return nil
	}

	probability := UniformProbability(count)
	rows := make([]Row, count)
	for i := range rows {
		if i < len(labels) {
			rows[i].Label = labels[i]
		}
		rows[i].Probability = probability
	}
	return rows
}

// UniformProbability formats 1/count
func UniformProbability(count int) string {
	return FormatProbability(1.0 / float64(count))
}

// FormatProbability renders v with at most two fraction digits, no
// trailing zeros and no digit grouping, rounding to nearest with ties to even.
func FormatProbability(v float64) string {
	return probabilityPrinter.Sprintf("%v", number.Decimal(v,
		number.MaxFractionDigits(2),
		number.NoSeparator(),
	))
}

// ParseProbability reads a decimal value from field text. Surrounding
// whitespace is ignored. Values too large for a float64, and spelled out
// infinities, parse as ±Inf so they still exceed the limit. NaN is rejected.
func ParseProbability(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0)) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// SumProbabilities adds every parseable probability. Unparseable text
// contributes nothing.
func SumProbabilities(rows []Row) float64 {
	total := 0.0
	for _, row := range rows {
		if v, ok := ParseProbability(row.Probability); ok {
			total += v
		}
	}
	return total
}

// Labels returns the label text of every row in order
func Labels(rows []Row) []string {
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	return labels
}

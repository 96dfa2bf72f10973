package tracker

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export formats.
// They should remain human readable and open in any spreadsheet.

// csvHeader is the first record of the summary CSV format.
var csvHeader = []string{"Symbol", "Quantity", "Price", "Value"}

// csvTotalLabel labels the total record of the summary CSV format.
const csvTotalLabel = "Total Investment"

// EncodeCSV writes the portfolio summary to 'w' in CSV.
//
// The format is a header record "Symbol,Quantity,Price,Value", one record per
// holding in insertion order, an empty separator record and a final record
// "Total Investment,,,<total value>".
//
// Amounts are plain decimals without currency symbol.
func EncodeCSV(w io.Writer, p *Portfolio) error {
	cw := csv.NewWriter(w)
	records := [][]string{csvHeader}
	for _, h := range p.SummaryRows() {
		records = append(records, []string{
			h.Symbol.String(),
			h.Quantity.String(),
			h.Price.Amount().String(),
			h.Value.Amount().String(),
		})
	}
	records = append(records,
		[]string{"", "", "", ""},
		[]string{csvTotalLabel, "", "", p.TotalValue().Amount().String()},
	)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write summary CSV: %w", err)
	}
	return nil
}

// DecodeCSV reads a summary written by [EncodeCSV].
//
// The CSV does not store the currency, amounts are returned in 'currency'.
// It returns the holding rows, without the total, and the total value.
func DecodeCSV(r io.Reader, currency string) (rows []Holding, total Money, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, Money{}, fmt.Errorf("cannot read summary CSV: %w", err)
	}
	if len(records) == 0 || !slices.Equal(records[0], csvHeader) {
		return nil, Money{}, errors.New("cannot read summary CSV: missing header")
	}

	total = M(0, currency)
	foundTotal := false
	for i, rec := range records[1:] {
		line := i + 2
		switch {
		case isBlankRecord(rec):
			continue
		case rec[0] == csvTotalLabel && foundTotal:
			return nil, Money{}, fmt.Errorf("line %d: duplicate total record", line)
		case rec[0] == csvTotalLabel:
			v, err := decimal.NewFromString(rec[3])
			if err != nil {
				return nil, Money{}, fmt.Errorf("line %d: invalid total %q: %w", line, rec[3], err)
			}
			total, foundTotal = M(v, currency), true
		case foundTotal:
			return nil, Money{}, fmt.Errorf("line %d: unexpected record after the total", line)
		default:
			h, err := decodeHolding(rec, currency)
			if err != nil {
				return nil, Money{}, fmt.Errorf("line %d: %w", line, err)
			}
			rows = append(rows, h)
		}
	}
	if !foundTotal {
		return nil, Money{}, errors.New("cannot read summary CSV: missing total record")
	}
	return rows, total, nil
}

func decodeHolding(rec []string, currency string) (Holding, error) {
	s, err := ParseSymbol(rec[0])
	if err != nil {
		return Holding{}, err
	}
	q, err := ParseQuantity(rec[1])
	if err != nil {
		return Holding{}, err
	}
	var amounts [2]decimal.Decimal
	for j, field := range rec[2:] {
		if amounts[j], err = decimal.NewFromString(field); err != nil {
			return Holding{}, fmt.Errorf("invalid %s %q: %w", strings.ToLower(csvHeader[j+2]), field, err)
		}
	}
	return Holding{
		Symbol:   s,
		Quantity: q,
		Price:    M(amounts[0], currency),
		Value:    M(amounts[1], currency),
	}, nil
}

func isBlankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ImportPriceTable reads a price table from a JSON document.
//
// 'path' is a JSONPath expression selecting an object whose properties are the
// symbols and values the unit prices, e.g. "$.quotes" for
//
//	{"quotes": {"AAPL": 180, "TSLA": 250}}
//
// An empty path selects the whole document. All prices are in 'currency'.
func ImportPriceTable(r io.Reader, path, currency string) (*PriceTable, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse price document: %w", err)
	}
	if path == "" {
		path = "$"
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q in price document: %w", path, err)
	}
	// jsonpath may return a list with the single answer
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	jprices, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q does not select an object of prices", path)
	}

	prices := make(map[string]float64, len(jprices))
	for symbol, v := range jprices {
		price, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("price of %q is not a number: %v", symbol, v)
		}
		prices[symbol] = price
	}
	return NewPriceTable(currency, prices)
}

// Package taxcategories разбирает строку настройки налоговых категорий и отдает ставку налога
// по категории и коду страны.
//
// Формат строки: по строке на страну, `<код страны> <категория>:<процент> ...`. Строка без кода страны
// (или с кодом default) задает ставки по умолчанию. Строка из одного числа задает одну категорию "cat".
//
//	at A:20 B:10 C:0
//	de A:19 B:10 C:0
//	default A:0 B:0 C:0
package taxcategories

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultCountry  = "default"
	DefaultCategory = "cat"
)

var (
	ErrEmpty              = errors.New("tax categories are empty")
	ErrNoDefaultCountry   = errors.New("tax categories have no default row")
	ErrCategoriesMismatch = errors.New("default row categories differ from the first row")
	ErrUnknownCategory    = errors.New("unknown default tax category")
	ErrMalformedLine      = errors.New("malformed tax categories line")
)

var hundred = decimal.NewFromInt(100)

// Categories разобранная матрица налоговых ставок. Ставка хранится долей: 0.2 это 20%.
type Categories struct {
	categories      []string
	defaultCategory string
	matrix          map[string]map[string]decimal.Decimal
}

// Parse разбирает строку настройки. Пустая defaultCategory означает категорию DefaultCategory.
func Parse(defaultCategory, raw string) (*Categories, error) {
	categories, matrix, err := parse(raw)
	if err != nil {
		return nil, err
	}
	if defaultCategory == "" {
		defaultCategory = DefaultCategory
	}
	if !slices.Contains(categories, defaultCategory) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, defaultCategory)
	}
	return &Categories{
		categories:      categories,
		defaultCategory: defaultCategory,
		matrix:          matrix,
	}, nil
}

// Validate проверяет синтаксис строки настройки.
func Validate(raw string) error {
	_, _, err := parse(raw)
	return err
}

// TaxFor возвращает ставку для категории и страны. Пустая категория заменяется категорией по умолчанию,
// отсутствующая у страны категория берется из строки по умолчанию. ok=false для неизвестной категории.
func (c *Categories) TaxFor(category, countryCode string) (decimal.Decimal, bool) {
	if category == "" {
		category = c.defaultCategory
	}
	if !slices.Contains(c.categories, category) {
		return decimal.Zero, false
	}
	if rate, ok := c.countryRates(countryCode)[category]; ok {
		return rate, true
	}
	rate, ok := c.matrix[DefaultCountry][category]
	return rate, ok
}

func (c *Categories) DefaultCategory() string {
	return c.defaultCategory
}

func (c *Categories) ValidCategories() []string {
	return slices.Clone(c.categories)
}

func (c *Categories) countryRates(countryCode string) map[string]decimal.Decimal {
	if rates, ok := c.matrix[countryCode]; ok {
		return rates
	}
	return c.matrix[DefaultCountry]
}

// IncludedTax сумма налога, уже включенного в цену брутто: price * rate / (1 + rate), 2 знака.
func IncludedTax(price, rate decimal.Decimal) decimal.Decimal {
	if rate.Sign() <= 0 {
		return decimal.Zero
	}
	return price.Mul(rate).Div(rate.Add(decimal.NewFromInt(1))).Round(2)
}

type row struct {
	country string
	keys    []string
	rates   map[string]decimal.Decimal
}

func parse(raw string) ([]string, map[string]map[string]decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil, ErrEmpty
	}

	var rows []row
	for _, line := range strings.Split(trimmed, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := parseLine(line)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, r)
	}

	categories := rows[0].keys
	if len(categories) == 0 {
		return nil, nil, ErrEmpty
	}

	matrix := make(map[string]map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		matrix[r.country] = r.rates
	}

	var defaultRow *row
	for i := range rows {
		if rows[i].country == DefaultCountry {
			defaultRow = &rows[i]
		}
	}
	if defaultRow == nil {
		return nil, nil, ErrNoDefaultCountry
	}
	if !slices.Equal(defaultRow.keys, categories) {
		return nil, nil, ErrCategoriesMismatch
	}
	return categories, matrix, nil
}

func parseLine(line string) (row, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 {
		if value, err := decimal.NewFromString(fields[0]); err == nil {
			return row{
				country: DefaultCountry,
				keys:    []string{DefaultCategory},
				rates:   map[string]decimal.Decimal{DefaultCategory: value.Div(hundred)},
			}, nil
		}
		if !strings.Contains(fields[0], ":") {
			return row{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
	}

	r := row{country: DefaultCountry, rates: make(map[string]decimal.Decimal, len(fields))}
	if !strings.Contains(fields[0], ":") {
		r.country = fields[0]
		fields = fields[1:]
	}
	for _, field := range fields {
		parts := strings.Split(field, ":")
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		value, err := decimal.NewFromString(parts[1])
		if err != nil {
			continue
		}
		if _, dup := r.rates[parts[0]]; !dup {
			r.keys = append(r.keys, parts[0])
		}
		r.rates[parts[0]] = value.Div(hundred)
	}
	return r, nil
}

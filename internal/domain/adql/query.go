package adql

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is the single archive table every tool queries (Planetary Systems
// Composite Parameters).
const Table = "pscomppars"

// Filter is one rendered WHERE predicate.
type Filter string

// NotNull filters out rows with a missing column value.
func NotNull(column string) Filter {
	return Filter(column + " IS NOT NULL")
}

// Compare renders a numeric comparison such as "pl_masse >= 0.5".
func Compare(column, op string, value float64) Filter {
	return Filter(column + " " + op + " " + strconv.FormatFloat(value, 'f', -1, 64))
}

// CompareInt renders an integer comparison such as "disc_year >= 2010".
func CompareInt(column, op string, value int) Filter {
	return Filter(column + " " + op + " " + strconv.Itoa(value))
}

// Equals renders a string equality predicate. It accepts an escaped
// Literal only; there is no way to interpolate a raw string.
func Equals(column string, value Literal) Filter {
	return Filter(column + " = '" + string(value) + "'")
}

// RowLimitedQuery is the filtered, ordered, row-limited template. The inner
// subquery resolves filters and ordering; the outer wrapper applies the
// ROWNUM pseudo-column, which the archive evaluates before ORDER BY when
// placed in the same query block.
type RowLimitedQuery struct {
	Columns []string
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// Render produces the final ADQL statement.
func (q RowLimitedQuery) Render() string {
	cols := strings.Join(q.Columns, ", ")
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM (SELECT %s FROM %s", cols, cols, Table)
	writeWhere(&b, q.Filters)
	fmt.Fprintf(&b, " ORDER BY %s %s) WHERE ROWNUM <= %d", q.OrderBy, direction(q.Desc), q.Limit)
	return b.String()
}

// GroupedQuery is the aggregate template: one GROUP BY column, no row
// limit.
type GroupedQuery struct {
	Columns []string
	Filters []Filter
	GroupBy string
	OrderBy string
	Desc    bool
}

// Render produces the final ADQL statement.
func (q GroupedQuery) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(q.Columns, ", "), Table)
	writeWhere(&b, q.Filters)
	fmt.Fprintf(&b, " GROUP BY %s ORDER BY %s %s", q.GroupBy, q.OrderBy, direction(q.Desc))
	return b.String()
}

// SelectQuery is the plain projection template used by exact-name lookups.
type SelectQuery struct {
	Columns []string
	Filters []Filter
}

// Render produces the final ADQL statement.
func (q SelectQuery) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(q.Columns, ", "), Table)
	writeWhere(&b, q.Filters)
	return b.String()
}

func writeWhere(b *strings.Builder, filters []Filter) {
	for i, f := range filters {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(string(f))
	}
}

func direction(desc bool) string {
	if desc {
		return "DESC"
	}
	return "ASC"
}

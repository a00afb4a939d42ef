package tabx

import (
	"iter"
	"maps"
)

// DefaultSeparator joins nested keys into a column name.
const DefaultSeparator = "."

// Row maps column names to the values present in one output row. Columns
// with no value are absent, not empty.
type Row map[string]string

// Table is a flattened tree.
type Table struct {
	// Columns lists every path that held a scalar, in the order the walk
	// first reached it.
	Columns []string
	Rows    []Row
}

// Records yields one field slice per row, aligned with Columns. Columns a
// row has no value for are filled with missing.
func (t *Table) Records(missing string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range t.Rows {
			fields := make([]string, len(t.Columns))
			for i, col := range t.Columns {
				v, ok := row[col]
				if !ok {
					v = missing
				}
				fields[i] = v
			}
			if !yield(fields) {
				return
			}
		}
	}
}

// Flattener turns trees into tables.
type Flattener struct {
	// Separator is placed between an object's path and its keys. It is used
	// as given, so the zero Flattener concatenates keys directly.
	Separator string
}

// Flatten flattens v with [DefaultSeparator].
func Flatten(v Value) *Table {
	return Flattener{Separator: DefaultSeparator}.Flatten(v)
}

// Flatten walks v from the empty path and returns its rows.
//
// Scalars yield one row holding their path. Arrays concatenate the rows of
// their elements. Objects cross-join the rows of their keys, so two list
// valued keys produce every pairing. Null yields no rows: as an array
// element it adds nothing, and as an object key it is left out of every row
// without registering a column. Any other key that yields no rows, such as
// an empty list, empties the object's row set.
func (f Flattener) Flatten(v Value) *Table {
	reg := &registry{index: map[string]struct{}{}}
	rows := f.walk("", v, reg)
	return &Table{Columns: reg.names, Rows: rows}
}

func (f Flattener) walk(path string, v Value, reg *registry) []Row {
	switch v.kind {
	case KindString, KindBool, KindNumber:
		reg.add(path)
		return []Row{{path: v.Text()}}
	case KindArray:
		var rows []Row
		for _, item := range v.items {
			rows = append(rows, f.walk(path, item, reg)...)
		}
		return rows
	case KindObject:
		acc := []Row{{}}
		for _, m := range v.members {
			if m.Value.kind == KindNull {
				continue
			}
			child := f.walk(f.join(path, m.Key), m.Value, reg)
			acc = crossJoin(acc, child)
		}
		return acc
	default:
		return nil
	}
}

func (f Flattener) join(path, key string) string {
	if path == "" {
		return key
	}
	return path + f.Separator + key
}

// crossJoin pairs every row of left with every row of right.
func crossJoin(left, right []Row) []Row {
	out := make([]Row, 0, len(left)*len(right))
	for _, a := range left {
		for _, b := range right {
			merged := make(Row, len(a)+len(b))
			maps.Copy(merged, a)
			maps.Copy(merged, b)
			out = append(out, merged)
		}
	}
	return out
}

// registry records column names in first-discovery order.
type registry struct {
	names []string
	index map[string]struct{}
}

func (r *registry) add(name string) {
	if _, ok := r.index[name]; ok {
		return
	}
	r.index[name] = struct{}{}
	r.names = append(r.names, name)
}

package tabx_test

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/bjaus/tabx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	T = true
	F = false
)

func collect(ex *tabx.Extraction) [][]string {
	return slices.Collect(ex.Rows())
}

func TestMaskUpdate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		lines  []string
		extra  string
		mode   tabx.WhitespaceMode
		border bool
		want   tabx.Mask
	}{
		"first line": {
			lines: []string{"  a bb  ccc "},
			want:  tabx.Mask{T, T, F, T, F, F, T, T, F, F, F, T},
		},
		"two lines": {
			lines: []string{"  a bb  ccc ", " aa  b ccc  "},
			want:  tabx.Mask{T, F, F, T, F, F, T, F, F, F, F, T},
		},
		"comma": {
			lines: []string{",,a,bb,,ccc,"},
			extra: ",",
			want:  tabx.Mask{T, T, F, T, F, F, T, T, F, F, F, T},
		},
		"mixed delimiters": {
			lines: []string{", a,bb, ccc,"},
			extra: ",",
			want:  tabx.Mask{T, T, F, T, F, F, T, T, F, F, F, T},
		},
		"longer line grows the mask": {
			lines: []string{"a", "a   b"},
			want:  tabx.Mask{F, T, T, T, F},
		},
		"shorter line leaves the tail alone": {
			lines: []string{"a   b", "a"},
			want:  tabx.Mask{F, T, T, T, F},
		},
		"double keeps single spaces": {
			lines: []string{"a b  c"},
			mode:  tabx.WhitespaceDouble,
			want:  tabx.Mask{F, F, F, T, T, F},
		},
		"double at line edges": {
			lines: []string{" a  "},
			mode:  tabx.WhitespaceDouble,
			want:  tabx.Mask{F, F, T, T},
		},
		"ignore whitespace": {
			lines: []string{"a b|c"},
			extra: "|",
			mode:  tabx.WhitespaceIgnore,
			want:  tabx.Mask{F, F, F, T, F},
		},
		"border characters": {
			lines:  []string{"+-+│x|"},
			mode:   tabx.WhitespaceIgnore,
			border: true,
			want:   tabx.Mask{T, T, T, T, F, T},
		},
		"multibyte characters count once": {
			lines: []string{"é ü"},
			want:  tabx.Mask{F, T, F},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mode := tt.mode
			if mode == "" {
				mode = tabx.WhitespaceAny
			}
			c := tabx.NewClassifier(tt.extra, mode, tt.border)
			assert.Equal(t, tt.want, tabx.BuildMask(c, tt.lines))
		})
	}
}

func TestMaskNarrowingIsMonotonic(t *testing.T) {
	t.Parallel()
	c := tabx.NewClassifier("", tabx.WhitespaceAny, false)
	lines := []string{"ab  cd", "      ", "  xx  ", "      "}
	var m tabx.Mask
	var prev tabx.Mask
	for _, line := range lines {
		m = m.Update(c, []rune(line))
		for i := range prev {
			if !prev[i] {
				assert.False(t, m[i], "position %d turned back into a delimiter", i)
			}
		}
		prev = slices.Clone(m)
	}
	assert.Equal(t, tabx.Mask{F, F, F, F, F, F}, m)
}

func TestClassifierIsDelimiter(t *testing.T) {
	t.Parallel()
	double := tabx.NewClassifier("", tabx.WhitespaceDouble, false)
	assert.False(t, double.IsDelimiter('a', ' ', 'b'))
	assert.False(t, double.IsDelimiter(tabx.NoRune, ' ', tabx.NoRune))
	assert.True(t, double.IsDelimiter(' ', ' ', 'b'))
	assert.True(t, double.IsDelimiter('a', ' ', '\t'))
	assert.False(t, double.IsDelimiter(' ', 'x', ' '))

	var zero tabx.Classifier
	assert.True(t, zero.IsDelimiter('a', ' ', 'b'))
	assert.False(t, zero.IsDelimiter(' ', '|', ' '))

	extra := tabx.NewClassifier(";", tabx.WhitespaceIgnore, false)
	assert.True(t, extra.IsDelimiter('a', ';', 'b'))
	assert.False(t, extra.IsDelimiter(' ', ' ', ' '))
}

func TestMaskRanges(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		mask tabx.Mask
		want []tabx.Range
	}{
		"first line": {
			mask: tabx.Mask{T, T, F, T, F, F, T, T, F, F, F, T},
			want: []tabx.Range{{2, 3}, {4, 6}, {8, 11}},
		},
		"two lines": {
			mask: tabx.Mask{T, F, F, T, F, F, T, F, F, F, F, T},
			want: []tabx.Range{{1, 3}, {4, 6}, {7, 11}},
		},
		"unterminated final column": {
			mask: tabx.Mask{T, F, F},
			want: []tabx.Range{{1, 3}},
		},
		"no delimiters": {
			mask: tabx.Mask{F, F},
			want: []tabx.Range{{0, 2}},
		},
		"all delimiters": {
			mask: tabx.Mask{T, T},
			want: nil,
		},
		"empty": {
			mask: nil,
			want: nil,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.mask.Ranges())
		})
	}
}

func TestMaskRangesOrdered(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		m := make(tabx.Mask, rng.Intn(40))
		for i := range m {
			m[i] = rng.Intn(3) == 0
		}
		prevEnd := -1
		for _, r := range m.Ranges() {
			require.Less(t, r.Start, r.End)
			require.Greater(t, r.Start, prevEnd)
			require.LessOrEqual(t, r.End, len(m))
			prevEnd = r.End
		}
	}
}

func TestRangeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(1,3)", tabx.Range{Start: 1, End: 3}.String())
}

func TestSplitRow(t *testing.T) {
	t.Parallel()
	ranges := []tabx.Range{{0, 3}, {4, 8}, {9, 12}}
	tests := map[string]struct {
		line string
		want []string
	}{
		"full":       {line: "abc defg hij", want: []string{"abc", "defg", "hij"}},
		"trimmed":    {line: " a   de   h ", want: []string{"a", "de", "h"}},
		"short line": {line: "abc de", want: []string{"abc", "de", ""}},
		"empty line": {line: "", want: []string{"", "", ""}},
		"multibyte":  {line: "äöü ßßßß €€€", want: []string{"äöü", "ßßßß", "€€€"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tabx.SplitRow(ranges, tt.line))
		})
	}
}

func TestExtractEndToEnd(t *testing.T) {
	t.Parallel()
	lines := []string{"  a bb  ccc ", " aa  b ccc  "}
	ex, err := tabx.Extract(lines, tabx.ExtractOptions{Whitespace: tabx.WhitespaceAny})
	require.NoError(t, err)
	assert.Equal(t, []tabx.Range{{1, 3}, {4, 6}, {7, 11}}, ex.Inferred)
	assert.Equal(t, ex.Inferred, ex.Ranges)

	var buf bytes.Buffer
	require.NoError(t, tabx.WriteRows(&buf, tabx.DefaultDelimiters(), ex.Rows()))
	assert.Equal(t, "a,bb,ccc\naa,b,ccc\n", buf.String())
}

func TestExtractNoInput(t *testing.T) {
	t.Parallel()
	_, err := tabx.Extract(nil, tabx.ExtractOptions{})
	require.ErrorIs(t, err, tabx.ErrNoInput)
}

func TestExtractDoubleWhitespace(t *testing.T) {
	t.Parallel()
	lines := []string{
		"NAME        STATUS   AGE",
		"web server  Running  3d",
		"db          Pending  12m",
	}
	ex, err := tabx.Extract(lines, tabx.ExtractOptions{Whitespace: tabx.WhitespaceDouble})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"NAME", "STATUS", "AGE"},
		{"web server", "Running", "3d"},
		{"db", "Pending", "12m"},
	}, collect(ex))
}

func TestExtractHeaderOnly(t *testing.T) {
	t.Parallel()
	lines := []string{"NAME  AGE", "alice 30"}

	ex, err := tabx.Extract(lines, tabx.ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"NAME", "AGE"}, {"alice", "30"}}, collect(ex))

	ex, err = tabx.Extract(lines, tabx.ExtractOptions{HeaderOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []tabx.Range{{0, 4}, {6, 9}}, ex.Inferred)
	assert.Equal(t, [][]string{{"NAME", "AGE"}, {"alic", "30"}}, collect(ex))
}

func TestExtractSelectColumns(t *testing.T) {
	t.Parallel()
	lines := []string{
		"NAME   AGE  CITY",
		"alice  30   paris",
	}
	tests := map[string]struct {
		columns     []string
		ignoreCase  bool
		want        [][]string
		wantMissing []string
	}{
		"reorder": {
			columns: []string{"CITY", "NAME"},
			want:    [][]string{{"CITY", "NAME"}, {"paris", "alice"}},
		},
		"unknown names are dropped": {
			columns:     []string{"ZIP", "AGE"},
			want:        [][]string{{"AGE"}, {"30"}},
			wantMissing: []string{"ZIP"},
		},
		"case sensitive by default": {
			columns:     []string{"city"},
			want:        [][]string{{}, {}},
			wantMissing: []string{"city"},
		},
		"ignore case": {
			columns:    []string{"city", "Name"},
			ignoreCase: true,
			want:       [][]string{{"CITY", "NAME"}, {"paris", "alice"}},
		},
		"repeated request": {
			columns: []string{"AGE", "AGE"},
			want:    [][]string{{"AGE", "AGE"}, {"30", "30"}},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ex, err := tabx.Extract(lines, tabx.ExtractOptions{Columns: tt.columns, IgnoreCase: tt.ignoreCase})
			require.NoError(t, err)
			assert.Equal(t, []tabx.Range{{0, 5}, {7, 10}, {12, 17}}, ex.Inferred)
			assert.Equal(t, tt.want, collect(ex))
			assert.Equal(t, tt.wantMissing, ex.Missing)
		})
	}
}

func TestSelectColumnsLeftmostDuplicateWins(t *testing.T) {
	t.Parallel()
	ranges := []tabx.Range{{0, 1}, {2, 3}}
	selected, missing := tabx.SelectColumns(ranges, "x x", []string{"x"}, false)
	assert.Equal(t, []tabx.Range{{0, 1}}, selected)
	assert.Empty(t, missing)
}

func TestExtractRaggedLinesNeverPanic(t *testing.T) {
	t.Parallel()
	lines := []string{
		"a    b    c    d",
		"",
		"aa",
		"a    b",
		"a    b    c    d    e    f",
	}
	ex, err := tabx.Extract(lines, tabx.ExtractOptions{})
	require.NoError(t, err)
	var rows [][]string
	assert.NotPanics(t, func() { rows = collect(ex) })
	require.Len(t, rows, len(lines))
	for _, row := range rows {
		assert.Len(t, row, len(ex.Ranges))
	}
	assert.Equal(t, []string{"", "", "", "", "", ""}, rows[1])
}

func TestExtractionRowsStopsEarly(t *testing.T) {
	t.Parallel()
	ex, err := tabx.Extract([]string{"a b", "c d", "e f"}, tabx.ExtractOptions{})
	require.NoError(t, err)
	n := 0
	for range ex.Rows() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

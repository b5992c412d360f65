package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/csvkit/pkg/csvkit"
)

func collection(t *testing.T) csvkit.FileCollection {
	t.Helper()
	mk := func(names ...string) *csvkit.Table {
		var cols []*csvkit.Column
		for _, n := range names {
			cols = append(cols, &csvkit.Column{Name: n, Kind: csvkit.KindInt, Values: []csvkit.Value{csvkit.IntValue(1), csvkit.IntValue(2)}})
		}
		tbl, err := csvkit.NewTable(cols...)
		require.NoError(t, err)
		return tbl
	}
	return csvkit.FileCollection{"b": mk("id", "value"), "a": mk("id", "name")}
}

func TestSummarize_SortedByName(t *testing.T) {
	summaries := Summarize(collection(t))
	require.Len(t, summaries, 2)
	assert.Equal(t, TableSummary{Name: "a", Rows: 2, Columns: []string{"id", "name"}}, summaries[0])
	assert.Equal(t, "b", summaries[1].Name)
}

func TestRenderSummary_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, Summarize(collection(t)), ModePlain))

	want := "TABLE\tROWS\tCOLUMNS\n" +
		"a\t2\tid, name\n" +
		"b\t2\tid, value\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderSummary_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, Summarize(collection(t)), ModeStyled))

	out := buf.String()
	for _, want := range []string{"TABLE", "ROWS", "a", "id, value"} {
		assert.True(t, strings.Contains(out, want), "styled output missing %q:\n%s", want, out)
	}
}

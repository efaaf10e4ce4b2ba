package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/report"
	"github.com/katalvlaran/tourkit/tsp"
)

func table(t *testing.T) *distance.Table {
	t.Helper()
	tab, err := loadTable(filepath.Join("..", "..", "distance", "testdata", "abcd.json"), "json")
	require.NoError(t, err)

	return tab
}

func TestPrompter_ReasksUntilValid(t *testing.T) {
	in := strings.NewReader("q a  d  x -1 1 b  2 c zz D")
	var out, warn bytes.Buffer

	stops, err := newPrompter(in, &out, &warn, table(t)).stops()
	require.NoError(t, err)
	assert.Equal(t, tsp.Stops{Start: "A", End: "D", Pickups: []string{"B"}, Dropoffs: []string{"C", "D"}}, stops)

	assert.Equal(t, 2, strings.Count(warn.String(), "Invalid node."))
	assert.Equal(t, 1, strings.Count(warn.String(), "Invalid input."))
	assert.Equal(t, 1, strings.Count(warn.String(), "Value must be non-negative."))
	assert.Contains(t, out.String(), "What is your start point? ")
}

func TestPrompter_ZeroZones(t *testing.T) {
	stops, err := newPrompter(strings.NewReader("A A 0 0"), &bytes.Buffer{}, &bytes.Buffer{}, table(t)).stops()
	require.NoError(t, err)
	assert.Equal(t, "A", stops.Start)
	assert.Equal(t, "A", stops.End)
	assert.Empty(t, stops.Pickups)
	assert.Empty(t, stops.Dropoffs)
}

func TestPrompter_InputClosed(t *testing.T) {
	_, err := newPrompter(strings.NewReader("A D 2 B"), &bytes.Buffer{}, &bytes.Buffer{}, table(t)).stops()
	assert.ErrorIs(t, err, errInputClosed)
}

func TestPrompter_HugeCount(t *testing.T) {
	var warn bytes.Buffer
	stops, err := newPrompter(strings.NewReader("A B 9223372036854775807 C"), &bytes.Buffer{}, &warn, table(t)).stops()
	assert.ErrorIs(t, err, errInputClosed)
	assert.Equal(t, "A", stops.Start)
	assert.Empty(t, warn.String())
}

func TestPrompter_MixedCaseTable(t *testing.T) {
	tab, err := distance.New(map[string]map[string]int64{
		"a": {"B": 1},
		"B": {"a": 1},
	})
	require.NoError(t, err)

	stops, err := newPrompter(strings.NewReader("A a b 0 0"), &bytes.Buffer{}, &bytes.Buffer{}, tab).stops()
	require.NoError(t, err)
	assert.Equal(t, "a", stops.Start)
	assert.Equal(t, "B", stops.End)
}

func TestResolve(t *testing.T) {
	tab, err := distance.New(map[string]map[string]int64{
		"a": {"B": 1},
		"B": {"a": 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "a", resolve(tab, " a "))
	assert.Equal(t, "B", resolve(tab, "b"))
	assert.Equal(t, "Q", resolve(tab, "q"))
	assert.Equal(t, []string{"a", "B"}, resolveAll(tab, splitList("a,b")))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"b", "C"}, splitList(" b, C ,,"))
	assert.Nil(t, splitList(""))
}

func TestLoadTable(t *testing.T) {
	tab, err := loadTable(filepath.Join("..", "..", "distance", "testdata", "br4.atsp"), "tsplib")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, tab.Nodes())

	_, err = loadTable("does-not-exist.atsp", "tsplib")
	assert.ErrorIs(t, err, distance.ErrDataLoad)

	_, err = loadTable("does-not-exist.json", "json")
	assert.ErrorIs(t, err, distance.ErrDataLoad)
}

func TestValidateFlags(t *testing.T) {
	restore := func(p *string, v string) func() {
		old := *p
		*p = v
		return func() { *p = old }
	}
	defer restore(flagMatrix, "m.json")()
	defer restore(flagStart, "A")()
	defer restore(flagEnd, "D")()
	require.NoError(t, validateFlags())

	func() {
		defer restore(flagFormat, "xml")()
		assert.ErrorContains(t, validateFlags(), "format")
	}()
	func() {
		defer restore(flagMST, "boruvka")()
		assert.ErrorContains(t, validateFlags(), "mst")
	}()
	func() {
		defer restore(flagEnd, " ")()
		assert.ErrorContains(t, validateFlags(), "end")
	}()
	func() {
		defer restore(flagMatrix, "")()
		assert.ErrorContains(t, validateFlags(), "matrix")

		old := *flagRandom
		defer func() { *flagRandom = old }()
		*flagRandom = 5
		assert.NoError(t, validateFlags())
		*flagRandom = -1
		assert.ErrorContains(t, validateFlags(), "non-negative")
	}()
}

func TestRandomTable(t *testing.T) {
	tab, err := randomTable(28, 7)
	require.NoError(t, err)
	assert.Equal(t, 28, tab.Len())
	assert.True(t, tab.Has("AB"))

	again, err := randomTable(28, 7)
	require.NoError(t, err)
	assert.Equal(t, tab.Distance("A", "AB"), again.Distance("A", "AB"))

	res, err := tsp.SolveStops(tab, tsp.Stops{Start: "A", Pickups: resolveAll(tab, splitList("c,f,x")), End: "A"})
	require.NoError(t, err)
	assert.NoError(t, res.Tour.Validate(len(res.Nodes)))
}

func TestWriteViews(t *testing.T) {
	tab := table(t)
	res, err := tsp.SolveStops(tab, tsp.Stops{Start: "A", Pickups: []string{"B", "C"}, End: "D"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "views.json")
	require.NoError(t, writeViews(path, report.Views(res, tab)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), report.TitleCircuit)
}

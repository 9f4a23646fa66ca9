package geom_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linegeom/internal/geom"
)

const twoSets = `0 1 0  1 0 4  0 1 4  1 0 0
0 1 0
0 1 5
1 0 0
1 2 6
`

func TestParseLineSets(t *testing.T) {
	sets, err := geom.ParseLineSets(strings.NewReader(twoSets))
	require.NoError(t, err)
	require.Len(t, sets, 2)
	for _, s := range sets {
		assert.Len(t, s, 4)
	}
	assert.Equal(t, "1x + 2y = 6", sets[1][3].String())

	q, err := geom.ClassifyQuadrilateral(sets[0])
	require.NoError(t, err)
	assert.Equal(t, geom.ShapeSquare, q.Shape)
}

func TestParseLineSets_Errors(t *testing.T) {
	_, err := geom.ParseLineSets(strings.NewReader(twoSets + " 1 2 3"))
	assert.ErrorIs(t, err, geom.ErrIncompleteSet)

	_, err = geom.ParseLineSets(strings.NewReader("0 1 0 1 0 x 0 1 4 1 0 0"))
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = geom.ParseLineSets(strings.NewReader("0 1 0 0 0 4 0 1 4 1 0 0"))
	assert.ErrorIs(t, err, geom.ErrInvalidLine)
	assert.Contains(t, err.Error(), "set 1 line 2")

	_, err = geom.ParseLineSets(strings.NewReader("  \n"))
	assert.ErrorIs(t, err, geom.ErrNoData)

	_, err = geom.ParseLineSets(strings.NewReader("0 1 0 1 0 inf 0 1 4 1 0 0"))
	assert.ErrorIs(t, err, geom.ErrInvalidLine)
	assert.Contains(t, err.Error(), "set 1 line 2")

	_, err = geom.ParseLineSets(strings.NewReader("0 1 0 1 0 4 NaN 1 4 1 0 0"))
	assert.ErrorIs(t, err, geom.ErrInvalidLine)
}

func TestLoadLineSets(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "linesData.txt")
	require.NoError(t, os.WriteFile(txt, []byte(twoSets), 0o644))
	sets, err := geom.LoadLineSets(txt)
	require.NoError(t, err)
	assert.Len(t, sets, 2)

	csvPath := filepath.Join(dir, "lines.csv")
	csvData := "name,A,B,C\ntop,0,1,4\nright,1,0,4\nbottom,0,1,0\nleft,1,0,0\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csvData), 0o644))
	sets, err = geom.LoadLineSets(csvPath)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, 4.0, sets[0][0].C())

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("x,y\n1,2\n"), 0o644))
	_, err = geom.LoadLineSets(bad)
	assert.Error(t, err)

	short := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(short, []byte("a,b,c\n0,1,4\n1,0,4\n"), 0o644))
	_, err = geom.LoadLineSets(short)
	assert.ErrorIs(t, err, geom.ErrIncompleteSet)

	infFile := filepath.Join(dir, "inf.txt")
	require.NoError(t, os.WriteFile(infFile, []byte("0 1 0 1 0 4 0 1 -inf 1 0 0\n"), 0o644))
	_, err = geom.LoadLineSets(infFile)
	assert.ErrorIs(t, err, geom.ErrInvalidLine)

	infCSV := filepath.Join(dir, "inf.csv")
	require.NoError(t, os.WriteFile(infCSV, []byte("a,b,c\n0,1,4\n1,0,4\n0,1,+Inf\n1,0,0\n"), 0o644))
	_, err = geom.LoadLineSets(infCSV)
	assert.ErrorIs(t, err, geom.ErrInvalidLine)

	_, err = geom.LoadLineSets(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLines(t *testing.T) {
	ls, err := geom.ParseLines("1 -1 0\n\n  1, 1, 0  \n")
	require.NoError(t, err)
	require.Len(t, ls, 2)
	assert.True(t, ls[0].IsPerpendicular(ls[1]))

	_, err = geom.ParseLines("1 2")
	assert.Error(t, err)

	_, err = geom.ParseLines("0 0 3")
	assert.ErrorIs(t, err, geom.ErrInvalidLine)

	_, err = geom.ParseLines("1 two 3")
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = geom.ParseLines("1 1 inf\n1 -1 0")
	assert.ErrorIs(t, err, geom.ErrInvalidLine)
	assert.Contains(t, err.Error(), "row 1")

	_, err = geom.ParseLines("1 -1 0\nnan 1 0")
	assert.ErrorIs(t, err, geom.ErrInvalidLine)
	assert.Contains(t, err.Error(), "row 2")
}

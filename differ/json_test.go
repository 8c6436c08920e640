package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shift64 "github.com/vocdoni/shift64-go"
)

func TestResultExportImport(t *testing.T) {
	res := Result{
		Rounds:  100,
		Ranges:  []int64{1 << 16},
		Checked: 12345,
		Mismatches: []Mismatch{{
			Case:   Case{Value: 1 << 32, Amount: 1, Dir: Right},
			Safe:   shift64.Split(1 << 31),
			Oracle: shift64.Split(0),
		}},
	}

	out, err := res.Export()
	require.NoError(t, err)
	assert.Contains(t, out, `"checkedCases":12345`)

	back, err := ImportResult(out)
	require.NoError(t, err)
	assert.Equal(t, res, back)
}

func TestImportResultBadInput(t *testing.T) {
	_, err := ImportResult("not json")
	require.Error(t, err)
}

func TestCleanRunExport(t *testing.T) {
	s, err := New(PCGSource(3, 4), 10, []int64{1 << 10}, nil)
	require.NoError(t, err)
	res := s.Run()
	require.True(t, res.Clean())

	out, err := res.Export()
	require.NoError(t, err)

	back, err := ImportResult(out)
	require.NoError(t, err)
	assert.True(t, back.Clean())
	assert.Equal(t, res.Checked, back.Checked)
}

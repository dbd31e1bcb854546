package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyEdits_NoEditsReturnsInput(t *testing.T) {
	src := []byte("unchanged")

	out, err := ApplyEdits(src, nil)
	require.NoError(t, err)
	require.Equal(t, "unchanged", string(out))
}

func TestApplyEdits_SingleReplacement(t *testing.T) {
	out, err := ApplyEdits([]byte("hello world"), []Edit{{Start: 6, End: 11, Text: "gopher"}})
	require.NoError(t, err)
	require.Equal(t, "hello gopher", string(out))
}

func TestApplyEdits_MultipleOutOfOrder(t *testing.T) {
	src := []byte("aaa bbb ccc")
	edits := []Edit{
		{Start: 8, End: 11, Text: "C"},
		{Start: 0, End: 3, Text: "A"},
		{Start: 4, End: 7, Text: "B"},
	}

	out, err := ApplyEdits(src, edits)
	require.NoError(t, err)
	require.Equal(t, "A B C", string(out))
}

func TestApplyEdits_InsertionAndDeletion(t *testing.T) {
	src := []byte("abcdef")
	edits := []Edit{
		{Start: 0, End: 0, Text: ">>"}, // pure insertion
		{Start: 2, End: 4, Text: ""},   // pure deletion
	}

	out, err := ApplyEdits(src, edits)
	require.NoError(t, err)
	require.Equal(t, ">>abef", string(out))
}

func TestApplyEdits_AdjacentEditsAllowed(t *testing.T) {
	out, err := ApplyEdits([]byte("abcd"), []Edit{
		{Start: 0, End: 2, Text: "X"},
		{Start: 2, End: 4, Text: "Y"},
	})
	require.NoError(t, err)
	require.Equal(t, "XY", string(out))
}

func TestApplyEdits_RejectsOverlap(t *testing.T) {
	_, err := ApplyEdits([]byte("abcdef"), []Edit{
		{Start: 0, End: 3, Text: "x"},
		{Start: 2, End: 5, Text: "y"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "overlaps")
}

func TestApplyEdits_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		edit Edit
	}{
		{"negative start", Edit{Start: -1, End: 2}},
		{"end past source", Edit{Start: 0, End: 100}},
		{"inverted range", Edit{Start: 4, End: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyEdits([]byte("abcdef"), []Edit{tt.edit})
			require.Error(t, err)
		})
	}
}

func TestApplyEdits_DoesNotMutateInputSlice(t *testing.T) {
	edits := []Edit{
		{Start: 4, End: 5, Text: "B"},
		{Start: 0, End: 1, Text: "A"},
	}

	_, err := ApplyEdits([]byte("a b c"), edits)
	require.NoError(t, err)
	require.Equal(t, 4, edits[0].Start)
	require.Equal(t, 0, edits[1].Start)
}

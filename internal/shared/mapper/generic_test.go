package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint
	Name string
}

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
	assert.Equal(t, []string{}, MapSlice([]int{}, strconv.Itoa))
}

func TestMapSlicePtr_SkipsNil(t *testing.T) {
	in := []*row{{ID: 1, Name: "Acme"}, nil, {ID: 2, Name: "Globex"}}

	out := MapSlicePtr(in, func(r *row) *string { return &r.Name })

	require.Len(t, out, 2)
	assert.Equal(t, "Acme", *out[0])
	assert.Equal(t, "Globex", *out[1])
}

func TestMapSliceWithError(t *testing.T) {
	got, err := MapSliceWithError([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = MapSliceWithError([]string{"1", "x"}, strconv.Atoi)
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = MapSliceWithError([]int{1}, func(int) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

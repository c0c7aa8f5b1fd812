package lox_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"marketsync/pkg/lox"
)

func TestMap(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"1", "2", "3"}, lox.Map([]int{1, 2, 3}, strconv.Itoa))
	rq.Equal([]string{}, lox.Map(nil, strconv.Itoa))
}

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	result, err := lox.MapErr([]string{"1", "2"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 2}, result)

	result, err = lox.MapErr([]string{"1", "x"}, strconv.Atoi)
	rq.Error(err)
	rq.Nil(result)
}

func TestChunk(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{
			name:  "remainder in last chunk",
			items: []int{1, 2, 3, 4, 5},
			size:  2,
			want:  [][]int{{1, 2}, {3, 4}, {5}},
		},
		{
			name:  "evenly divisible",
			items: []int{1, 2, 3, 4},
			size:  2,
			want:  [][]int{{1, 2}, {3, 4}},
		},
		{
			name:  "size larger than input",
			items: []int{1, 2},
			size:  10,
			want:  [][]int{{1, 2}},
		},
		{
			name:  "empty input yields no chunks",
			items: nil,
			size:  3,
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			chunks, err := lox.Chunk(tc.items, tc.size)
			rq.NoError(err)
			rq.Equal(tc.want, chunks)

			var flat []int
			for _, chunk := range chunks {
				flat = append(flat, chunk...)
			}
			if tc.items == nil {
				rq.Empty(flat)
			} else {
				rq.Equal(tc.items, flat)
			}
		})
	}
}

func TestChunkInvalidSize(t *testing.T) {
	rq := require.New(t)

	for _, size := range []int{0, -1} {
		_, err := lox.Chunk([]int{1, 2, 3}, size)
		rq.ErrorIs(err, lox.ErrInvalidSize)
	}
}

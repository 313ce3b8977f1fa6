package providers

import (
	"reflect"
	"testing"
)

func TestNewestFirst(t *testing.T) {
	cases := []struct {
		in    []int
		limit int
		want  []int
	}{
		{[]int{1, 2, 3, 4, 5}, 3, []int{5, 4, 3}},
		{[]int{1, 2}, 5, []int{2, 1}},
		{[]int{1, 2, 3}, 0, []int{3, 2, 1}},
		{nil, 10, []int{}},
	}
	for _, tc := range cases {
		if got := NewestFirst(tc.in, tc.limit); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("NewestFirst(%v, %d) = %v want %v", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestNewestFirstDoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3}
	_ = NewestFirst(in, 2)
	if !reflect.DeepEqual(in, []int{1, 2, 3}) {
		t.Fatalf("input mutated: %v", in)
	}
}

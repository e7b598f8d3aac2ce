package ints

import (
	"reflect"
	"testing"
)

func TestSet(t *testing.T) {
	s := NewSet()
	if !s.IsEmpty() || len(s.ToSlice()) != 0 {
		t.Fatal("new set is not empty")
	}

	s.Add(3, 70, -5)
	for _, item := range []int{3, 70, -5} {
		if !s.Contains(item) {
			t.Errorf("expecting set to contain %d", item)
		}
	}
	for _, item := range []int{0, 4, -6, 71, 1000} {
		if s.Contains(item) {
			t.Errorf("expecting set not to contain %d", item)
		}
	}

	got := s.ToSlice()
	if !reflect.DeepEqual(got, []int{-5, 3, 70}) {
		t.Errorf("expecting [-5 3 70], got %v", got)
	}
}

func TestSetCopy(t *testing.T) {
	s := NewSet(1, 2)
	c := s.Copy()
	c.Add(8)
	if s.Contains(8) {
		t.Error("copy is not independent of the original")
	}
	if !c.Contains(1) || !c.Contains(2) {
		t.Error("copy lost items of the original")
	}
}

func TestSetUnion(t *testing.T) {
	s := NewSet(1).Union(NewSet(100, -40))
	got := s.ToSlice()
	if !reflect.DeepEqual(got, []int{-40, 1, 100}) {
		t.Errorf("expecting [-40 1 100], got %v", got)
	}

	s.Union(NewSet())
	if !reflect.DeepEqual(s.ToSlice(), got) {
		t.Error("union with an empty set changed the receiver")
	}
}

func TestSetIsEqual(t *testing.T) {
	samples := []struct {
		s, other *Set
		expected bool
	}{
		{NewSet(1, 2), NewSet(2, 1), true},
		{NewSet(1, 2), NewSet(1, 3), false},
		{NewSet(), NewSet(), true},
		{NewSet(), NewSet(5), false},
		{NewSet(5), NewSet(), false},
		{NewSet(-100, 100), NewSet(-100, 100), true},
		{NewSet(-100, 100), NewSet(100), false},
	}

	for i, sample := range samples {
		if sample.s.IsEqual(sample.other) != sample.expected {
			t.Errorf("sample %d: expecting IsEqual = %v", i, sample.expected)
		}
	}
}

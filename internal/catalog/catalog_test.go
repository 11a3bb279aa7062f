package catalog

import (
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	return New(map[string]int{"BCA": 6, "B.Tech": 8})
}

func TestSemesters(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		course string
		want   []int
		ok     bool
	}{
		{"BCA", []int{1, 2, 3, 4, 5, 6}, true},
		{"B.Tech", []int{1, 2, 3, 4, 5, 6, 7, 8}, true},
		{"MBA", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		got, ok := cat.Semesters(tt.course)
		if ok != tt.ok {
			t.Errorf("Semesters(%q) ok = %v, want %v", tt.course, ok, tt.ok)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Semesters(%q) = %v, want %v", tt.course, got, tt.want)
		}
	}
}

func TestCoursesStableOrder(t *testing.T) {
	cat := testCatalog()

	got := cat.Courses()
	want := []Course{
		{Name: "B.Tech", Semesters: 8},
		{Name: "BCA", Semesters: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Courses() = %v, want %v", got, want)
	}

	// Repeat calls must agree despite map iteration order.
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(cat.Courses(), want) {
			t.Fatal("Courses() order is not stable")
		}
	}
}

func TestKnown(t *testing.T) {
	cat := testCatalog()
	if !cat.Known("BCA") {
		t.Error("Known(BCA) = false, want true")
	}
	if cat.Known("MBA") {
		t.Error("Known(MBA) = true, want false")
	}
}

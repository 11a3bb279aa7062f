// Package catalog holds the fixed course layout: which courses exist and
// how many semesters each one runs. The mapping is configuration, never
// derived from stored records.
package catalog

import "sort"

// Course describes one course and its semester span.
type Course struct {
	Name      string `json:"name"`
	Semesters int    `json:"semesters"`
}

// Catalog answers course and semester option queries.
type Catalog struct {
	semesters map[string]int
}

// New builds a Catalog from a course→semester-count map.
func New(courseSemesters map[string]int) *Catalog {
	m := make(map[string]int, len(courseSemesters))
	for name, n := range courseSemesters {
		m[name] = n
	}
	return &Catalog{semesters: m}
}

// Courses lists the known courses in a stable order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, 0, len(c.semesters))
	for name, n := range c.semesters {
		out = append(out, Course{Name: name, Semesters: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Semesters returns the semester options {1..N} for a course, or false when
// the course is unknown.
func (c *Catalog) Semesters(course string) ([]int, bool) {
	n, ok := c.semesters[course]
	if !ok {
		return nil, false
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out, true
}

// Known reports whether the course exists in the catalog.
func (c *Catalog) Known(course string) bool {
	_, ok := c.semesters[course]
	return ok
}

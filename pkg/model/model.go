// Package model defines the entities shared by the problem store, the
// validator, and the solver: categories, options, constraints, rows, suites,
// and pairs.
package model

import "fmt"

// Category is a named parameter with a non-empty, ordered set of allowed
// values. A Category with exactly one value is Degenerate; one with two or
// more is Useful.
type Category struct {
	Name   string
	Values []string
}

// Useful reports whether the category has at least two allowed values.
func (c Category) Useful() bool {
	return len(c.Values) >= 2
}

// Degenerate reports whether the category has exactly one allowed value.
func (c Category) Degenerate() bool {
	return len(c.Values) == 1
}

// HasValue reports whether v is one of the category's allowed values.
func (c Category) HasValue(v string) bool {
	for _, want := range c.Values {
		if want == v {
			return true
		}
	}
	return false
}

// Options is an ordered sequence of categories. Category order is preserved
// on output but is not relied on internally by the solver or validator.
type Options []Category

// Find returns the category named name, or false if none exists.
func (o Options) Find(name string) (Category, bool) {
	for _, c := range o {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Useful returns the subset of categories with two or more values.
func (o Options) Useful() Options {
	var out Options
	for _, c := range o {
		if c.Useful() {
			out = append(out, c)
		}
	}
	return out
}

// Degenerate returns the subset of categories with exactly one value.
func (o Options) Degenerate() Options {
	var out Options
	for _, c := range o {
		if c.Degenerate() {
			out = append(out, c)
		}
	}
	return out
}

// Binding is a single (category, value) assignment.
type Binding struct {
	Category string
	Value    string
}

// String renders a binding as "Category=Value", used in diagnostics.
func (b Binding) String() string {
	return fmt.Sprintf("%s=%s", b.Category, b.Value)
}

// Constraint is a forbidden combination: an ordered sequence of bindings. A
// constraint of length k (in Binding terms) binds k (category, value) pairs;
// the same category may repeat within one constraint.
type Constraint []Binding

// AsSet returns the constraint's bindings as a set, which naturally
// de-duplicates any repeated binding within the constraint. A category
// repeated with two different values stays as two distinct members.
func (c Constraint) AsSet() map[Binding]struct{} {
	set := make(map[Binding]struct{}, len(c))
	for _, b := range c {
		set[b] = struct{}{}
	}
	return set
}

// Constraints is an ordered sequence of Constraint rows.
type Constraints []Constraint

// Row is a set of bindings under test, modeled as an ordered sequence. A
// well-formed row binds each category at most once.
type Row []Binding

// AsSet returns the row's bindings as a set.
func (r Row) AsSet() map[Binding]struct{} {
	set := make(map[Binding]struct{}, len(r))
	for _, b := range r {
		set[b] = struct{}{}
	}
	return set
}

// Categories returns the distinct category names present in the row, in
// first-seen order.
func (r Row) Categories() []string {
	seen := make(map[string]struct{}, len(r))
	var out []string
	for _, b := range r {
		if _, ok := seen[b.Category]; !ok {
			seen[b.Category] = struct{}{}
			out = append(out, b.Category)
		}
	}
	return out
}

// Suite is an ordered, append-only sequence of rows.
type Suite []Row

// Pair is an unordered combination of two bindings drawn from two distinct
// categories, canonically ordered CatA before CatB in Options order.
type Pair struct {
	CatA, ValA string
	CatB, ValB string
}

// Satisfies reports whether row contains both bindings of the pair.
func (p Pair) Satisfies(row Row) bool {
	var hasA, hasB bool
	for _, b := range row {
		if b.Category == p.CatA && b.Value == p.ValA {
			hasA = true
		}
		if b.Category == p.CatB && b.Value == p.ValB {
			hasB = true
		}
	}
	return hasA && hasB
}

// ViolatesSuperset reports whether constraint c is a subset of row r's
// bindings — the shared predicate used by both the suite validator and
// the solver's row-acceptance check. An empty constraint never matches.
func ViolatesSuperset(c Constraint, r Row) bool {
	if len(c) == 0 {
		return false
	}
	rowSet := r.AsSet()
	for b := range c.AsSet() {
		if _, ok := rowSet[b]; !ok {
			return false
		}
	}
	return true
}

// AnyConstraintViolated reports whether any constraint in cs is a subset of
// row r's bindings.
func AnyConstraintViolated(cs Constraints, r Row) bool {
	for _, c := range cs {
		if ViolatesSuperset(c, r) {
			return true
		}
	}
	return false
}

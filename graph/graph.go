// Package graph keeps both sides of a bidirectional association consistent
// inside the in-memory object graph, before anything is persisted.
// Membership follows id semantics: two instances are the same element iff
// both carry a non-zero id and the ids match, so adds and removes are
// idempotent for saved entities.
package graph

type Entity interface {
	GetID() uint
}

// Equal reports identity by id. An instance with a zero id equals nothing.
func Equal[E Entity](a, b E) bool {
	return a.GetID() != 0 && b.GetID() != 0 && a.GetID() == b.GetID()
}

func Member[E Entity](set []E, e E) bool {
	for i := range set {
		if Equal(set[i], e) {
			return true
		}
	}
	return false
}

// Append adds e to the set unless an element with the same id is already
// present. Reports whether the set changed.
func Append[E Entity](set *[]E, e E) bool {
	if Member(*set, e) {
		return false
	}
	*set = append(*set, e)
	return true
}

// Delete removes the element with e's id. Removing an absent element is a
// no-op. Reports whether the set changed.
func Delete[E Entity](set *[]E, e E) bool {
	for i := range *set {
		if Equal((*set)[i], e) {
			*set = append((*set)[:i], (*set)[i+1:]...)
			return true
		}
	}
	return false
}

// PointsBack reports whether a scalar inverse reference (a nullable foreign
// key) still points at owner. Remove helpers clear the inverse only in that
// case, so a relation reassigned elsewhere is never clobbered.
func PointsBack(ref *uint, owner Entity) bool {
	return ref != nil && *ref == owner.GetID()
}

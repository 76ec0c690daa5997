package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type node struct {
	id   uint
	name string
}

func (n node) GetID() uint { return n.id }

func TestEqual(t *testing.T) {
	assert.True(t, Equal(node{id: 1}, node{id: 1, name: "other fields ignored"}))
	assert.False(t, Equal(node{id: 1}, node{id: 2}))
	assert.False(t, Equal(node{id: 0}, node{id: 0}), "unsaved instances equal nothing")
	assert.False(t, Equal(node{id: 0}, node{id: 1}))
	assert.False(t, Equal(node{id: 1}, node{id: 0}))
}

func TestAppendIsIdempotent(t *testing.T) {
	var set []node

	assert.True(t, Append(&set, node{id: 1, name: "a"}))
	assert.True(t, Append(&set, node{id: 2, name: "b"}))
	assert.False(t, Append(&set, node{id: 1, name: "same id, different payload"}))
	assert.Len(t, set, 2)
	assert.Equal(t, "a", set[0].name, "first occurrence wins")
}

func TestDelete(t *testing.T) {
	set := []node{{id: 1}, {id: 2}, {id: 3}}

	assert.True(t, Delete(&set, node{id: 2}))
	assert.Equal(t, []node{{id: 1}, {id: 3}}, set)

	assert.False(t, Delete(&set, node{id: 2}), "removing an absent element is a no-op")
	assert.Len(t, set, 2)
}

func TestAppendDeleteRoundTrip(t *testing.T) {
	set := []node{{id: 1}}

	Append(&set, node{id: 5})
	Delete(&set, node{id: 5})
	assert.Equal(t, []node{{id: 1}}, set)
}

func TestMember(t *testing.T) {
	set := []node{{id: 1}, {id: 2}}

	assert.True(t, Member(set, node{id: 2}))
	assert.False(t, Member(set, node{id: 3}))
	assert.False(t, Member(set, node{id: 0}), "zero id never matches")
}

func TestPointsBack(t *testing.T) {
	owner := node{id: 7}
	other := uint(9)
	mine := uint(7)

	assert.True(t, PointsBack(&mine, owner))
	assert.False(t, PointsBack(&other, owner), "reassigned inverse is left alone")
	assert.False(t, PointsBack(nil, owner))
}

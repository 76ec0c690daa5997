package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalonAddRemoveCategoryBothSides(t *testing.T) {
	salon := &Salon{DTO: DTO{ID: 1}, Name: "Bliss"}
	category := &Category{DTO: DTO{ID: 10}, Name: "Hair"}

	salon.AddCategory(category)
	assert.Len(t, salon.Categories, 1)
	assert.Len(t, category.Salons, 1)
	assert.Equal(t, uint(10), salon.Categories[0].ID)
	assert.Equal(t, uint(1), category.Salons[0].ID)

	salon.AddCategory(category)
	assert.Len(t, salon.Categories, 1, "re-adding the same category changes nothing")
	assert.Len(t, category.Salons, 1)

	salon.RemoveCategory(category)
	assert.Empty(t, salon.Categories)
	assert.Empty(t, category.Salons)

	salon.RemoveCategory(category)
	assert.Empty(t, salon.Categories, "removing twice is a no-op")
}

func TestSalonAddOfferSetsInverse(t *testing.T) {
	salon := &Salon{DTO: DTO{ID: 2}}
	offer := &Offer{DTO: DTO{ID: 20}, Name: "Cut"}

	salon.AddOffer(offer)
	assert.Len(t, salon.Offers, 1)
	if assert.NotNil(t, offer.SalonID) {
		assert.Equal(t, uint(2), *offer.SalonID)
	}
	assert.Same(t, salon, offer.Salon)
}

func TestSalonRemoveOfferClearsInverseOnlyWhenOwned(t *testing.T) {
	salon := &Salon{DTO: DTO{ID: 2}}
	offer := &Offer{DTO: DTO{ID: 20}}
	salon.AddOffer(offer)

	// Offer moved to another salon; removing it from the stale side must
	// not clobber the new owner.
	other := &Salon{DTO: DTO{ID: 3}}
	other.AddOffer(offer)

	salon.RemoveOffer(offer)
	assert.Empty(t, salon.Offers)
	if assert.NotNil(t, offer.SalonID) {
		assert.Equal(t, uint(3), *offer.SalonID)
	}

	other.RemoveOffer(offer)
	assert.Nil(t, offer.SalonID)
	assert.Nil(t, offer.Salon)
}

func TestSalonRemoveMaster(t *testing.T) {
	salon := &Salon{DTO: DTO{ID: 4}}
	master := &Master{DTO: DTO{ID: 40}, Nickname: "Ann"}

	salon.AddMaster(master)
	salon.RemoveMaster(master)
	assert.Empty(t, salon.Masters)
	assert.Nil(t, master.SalonID)
	assert.Nil(t, master.Salon)
}

func TestCategoryChildren(t *testing.T) {
	parent := &Category{DTO: DTO{ID: 1}, Name: "Beauty"}
	child := &Category{DTO: DTO{ID: 2}, Name: "Nails"}

	parent.AddChild(child)
	assert.Len(t, parent.Children, 1)
	if assert.NotNil(t, child.ParentID) {
		assert.Equal(t, uint(1), *child.ParentID)
	}

	// Reparent, then remove from the old parent.
	adoptive := &Category{DTO: DTO{ID: 3}}
	adoptive.AddChild(child)
	parent.RemoveChild(child)
	assert.Empty(t, parent.Children)
	if assert.NotNil(t, child.ParentID) {
		assert.Equal(t, uint(3), *child.ParentID)
	}
}

func TestUnsavedEntitiesAlwaysAppend(t *testing.T) {
	offer := &Offer{DTO: DTO{ID: 5}}
	a := &Variant{Name: "30 min"}
	b := &Variant{Name: "60 min"}

	offer.AddVariant(a)
	offer.AddVariant(b)
	assert.Len(t, offer.Variants, 2, "zero-id instances never collide")
}

package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"salon_manager/model"
	"salon_manager/utils"
)

func TestNewSalonDTOFlattensRelations(t *testing.T) {
	salon := &model.Salon{
		DTO:      model.DTO{ID: 1},
		Name:     "Bliss",
		Location: "Kyiv",
		Status:   model.SalonActivated,
		Type:     model.SalonPremium,
		OwnerID:  5,
		Owner:    model.User{DTO: model.DTO{ID: 5}, Login: "olena"},
		ImageID:  utils.Ptr(uint(9)),
		Image:    &model.Image{DTO: model.DTO{ID: 9}, Url: "https://cdn.example/salon.png"},
		Categories: []model.Category{
			{DTO: model.DTO{ID: 10}, Name: "Hair"},
			{DTO: model.DTO{ID: 11}, Name: "Nails"},
		},
	}

	d := NewSalonDTO(salon)
	assert.Equal(t, uint(1), d.ID)
	assert.Equal(t, "Bliss", d.Name)
	assert.Equal(t, uint(5), d.OwnerID)
	assert.Equal(t, "olena", d.OwnerLogin)
	assert.Equal(t, "https://cdn.example/salon.png", d.ImageUrl)
	require.Len(t, d.Categories, 2)
	assert.Equal(t, Ref{ID: 10, Name: "Hair"}, d.Categories[0])
	assert.Equal(t, Ref{ID: 11, Name: "Nails"}, d.Categories[1])
}

func TestNewSalonDTOWithoutOptionalRelations(t *testing.T) {
	d := NewSalonDTO(&model.Salon{DTO: model.DTO{ID: 2}, Name: "Bare"})
	assert.Empty(t, d.ImageUrl)
	assert.NotNil(t, d.Categories, "ref list marshals as [] rather than null")
	assert.Empty(t, d.Categories)
}

func TestNewRecordDTOFlattensRelations(t *testing.T) {
	record := &model.Record{
		DTO:     model.DTO{ID: 3},
		Code:    "abc",
		UserID:  1,
		User:    model.User{DTO: model.DTO{ID: 1}, Login: "client1"},
		SalonID: 2,
		Salon:   model.Salon{DTO: model.DTO{ID: 2}, Name: "Bliss"},
		Master:  &model.Master{DTO: model.DTO{ID: 4}, Nickname: "Ann"},
		Variant: &model.Variant{DTO: model.DTO{ID: 6}, Name: "60 min"},
		Options: []model.Option{{DTO: model.DTO{ID: 7}, Name: "Wash"}},
	}

	d := NewRecordDTO(record)
	assert.Equal(t, "client1", d.UserLogin)
	assert.Equal(t, "Bliss", d.SalonName)
	assert.Equal(t, "Ann", d.MasterNickname)
	assert.Equal(t, "60 min", d.VariantName)
	require.Len(t, d.Options, 1)
	assert.Equal(t, Ref{ID: 7, Name: "Wash"}, d.Options[0])
}

func TestNewVariantDTOExecutorLabels(t *testing.T) {
	v := &model.Variant{
		DTO:  model.DTO{ID: 1},
		Name: "30 min",
		Executors: []model.Master{
			{DTO: model.DTO{ID: 2}, Nickname: "Ann"},
		},
	}
	d := NewVariantDTO(v)
	require.Len(t, d.Executors, 1)
	assert.Equal(t, Ref{ID: 2, Name: "Ann"}, d.Executors[0])
}

func TestMissingRefErrorMessage(t *testing.T) {
	assert.Equal(t, `required reference "ownerId" is missing`, (&MissingRefError{Field: "ownerId"}).Error())
	assert.Equal(t, `reference "ownerId" points to unknown id 7`, (&MissingRefError{Field: "ownerId", ID: 7}).Error())
}

func TestResolveRequiredZeroId(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	_, err = resolveRequired[model.User](db, "ownerId", 0)
	var missing *MissingRefError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "ownerId", missing.Field)
	assert.Zero(t, missing.ID)
}

func TestResolveOptionalNil(t *testing.T) {
	e, err := resolveOptional[model.Image](nil, "imageId", nil)
	require.NoError(t, err)
	assert.Nil(t, e)

	e, err = resolveOptional[model.Image](nil, "imageId", utils.Ptr(uint(0)))
	require.NoError(t, err)
	assert.Nil(t, e)
}

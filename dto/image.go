package dto

import (
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"salon_manager/model"
)

type ImageDTO struct {
	Base
	Name       string `json:"name"`
	Url        string `json:"url" validate:"required,url"`
	PublicId   string `json:"publicId"`
	Format     string `json:"format"`
	OwnerID    uint   `json:"ownerId" validate:"required"`
	OwnerLogin string `json:"ownerLogin"`
}

func NewImageDTO(i *model.Image) *ImageDTO {
	d := new(ImageDTO)
	copier.Copy(d, i)
	d.OwnerLogin = i.Owner.Login
	return d
}

func (d *ImageDTO) ToEntity(db *gorm.DB) (*model.Image, error) {
	i := new(model.Image)
	copier.Copy(i, d)
	owner, err := resolveRequired[model.User](db, "ownerId", d.OwnerID)
	if err != nil {
		return nil, err
	}
	i.OwnerID = owner.ID
	i.Owner = *owner
	return i, nil
}

type TimeTableDTO struct {
	Base
	WeekdayOpen   string `json:"weekdayOpen"`
	WeekdayClose  string `json:"weekdayClose"`
	SaturdayOpen  string `json:"saturdayOpen"`
	SaturdayClose string `json:"saturdayClose"`
	SundayOpen    string `json:"sundayOpen"`
	SundayClose   string `json:"sundayClose"`
}

func NewTimeTableDTO(t *model.TimeTable) *TimeTableDTO {
	d := new(TimeTableDTO)
	copier.Copy(d, t)
	return d
}

func (d *TimeTableDTO) ToEntity(_ *gorm.DB) (*model.TimeTable, error) {
	t := new(model.TimeTable)
	copier.Copy(t, d)
	return t, nil
}

type SubscriberDTO struct {
	Base
	Email          string     `json:"email" validate:"required,email"`
	Name           string     `json:"name"`
	Active         *bool      `json:"active"`
	LastNotifiedAt *time.Time `json:"lastNotifiedAt"`
}

func NewSubscriberDTO(s *model.Subscriber) *SubscriberDTO {
	d := new(SubscriberDTO)
	copier.Copy(d, s)
	return d
}

func (d *SubscriberDTO) ToEntity(_ *gorm.DB) (*model.Subscriber, error) {
	s := new(model.Subscriber)
	copier.Copy(s, d)
	return s, nil
}

type UserDTO struct {
	Base
	Login     string `json:"login" validate:"required,min=3,max=50,alphanum"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" validate:"omitempty,oneof=ADMIN OWNER CLIENT"`
	Active    *bool  `json:"active"`
}

func NewUserDTO(u *model.User) *UserDTO {
	d := new(UserDTO)
	copier.Copy(d, u)
	return d
}

package dto

import (
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"salon_manager/model"
)

type RecordDTO struct {
	Base
	Code           string             `json:"code"`
	StartAt        time.Time          `json:"startAt" validate:"required"`
	EndAt          time.Time          `json:"endAt" validate:"required"`
	Price          float64            `json:"price" validate:"gte=0"`
	Status         model.RecordStatus `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED DONE CANCELLED"`
	Comment        string             `json:"comment"`
	MasterID       *uint              `json:"masterId"`
	MasterNickname string             `json:"masterNickname,omitempty"`
	VariantID      *uint              `json:"variantId"`
	VariantName    string             `json:"variantName,omitempty"`
	UserID         uint               `json:"userId" validate:"required"`
	UserLogin      string             `json:"userLogin"`
	SalonID        uint               `json:"salonId" validate:"required"`
	SalonName      string             `json:"salonName"`
	Options        []Ref              `json:"options"`
}

func NewRecordDTO(r *model.Record) *RecordDTO {
	d := new(RecordDTO)
	copier.Copy(d, r)
	d.UserLogin = r.User.Login
	d.SalonName = r.Salon.Name
	if r.Master != nil {
		d.MasterNickname = r.Master.Nickname
	}
	if r.Variant != nil {
		d.VariantName = r.Variant.Name
	}
	d.Options = make([]Ref, 0, len(r.Options))
	for _, o := range r.Options {
		d.Options = append(d.Options, Ref{ID: o.ID, Name: o.Name})
	}
	return d
}

func (d *RecordDTO) ToEntity(db *gorm.DB) (*model.Record, error) {
	r := new(model.Record)
	copier.Copy(r, d)
	if d.Status == "" {
		r.Status = model.RecordPending
	}

	user, err := resolveRequired[model.User](db, "userId", d.UserID)
	if err != nil {
		return nil, err
	}
	r.UserID = user.ID
	r.User = *user

	salon, err := resolveRequired[model.Salon](db, "salonId", d.SalonID)
	if err != nil {
		return nil, err
	}
	r.SalonID = salon.ID
	r.Salon = *salon

	if _, err := resolveOptional[model.Master](db, "masterId", d.MasterID); err != nil {
		return nil, err
	}
	if _, err := resolveOptional[model.Variant](db, "variantId", d.VariantID); err != nil {
		return nil, err
	}

	opts, err := resolveRefs[model.Option](db, "options", d.Options)
	if err != nil {
		return nil, err
	}
	r.Options = opts
	return r, nil
}

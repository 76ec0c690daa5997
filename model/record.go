package model

import (
	"time"

	"salon_manager/criteria"
	"salon_manager/graph"
)

type RecordStatus string

const (
	RecordPending   RecordStatus = "PENDING"
	RecordConfirmed RecordStatus = "CONFIRMED"
	RecordDone      RecordStatus = "DONE"
	RecordCancelled RecordStatus = "CANCELLED"
)

type Record struct {
	DTO
	Code      string       `gorm:"uniqueIndex;size:40" json:"code"`
	StartAt   time.Time    `gorm:"not null" json:"startAt"`
	EndAt     time.Time    `gorm:"not null" json:"endAt"`
	Price     float64      `json:"price"`
	Status    RecordStatus `gorm:"not null;default:PENDING" json:"status"`
	Comment   string       `json:"comment"`
	MasterID  *uint        `json:"masterId"`
	Master    *Master      `gorm:"foreignKey:MasterID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"master,omitempty"`
	VariantID *uint        `json:"variantId"`
	Variant   *Variant     `gorm:"foreignKey:VariantID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"variant,omitempty"`
	UserID    uint         `gorm:"not null" json:"userId"`
	User      User         `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	SalonID   uint         `gorm:"not null" json:"salonId"`
	Salon     Salon        `gorm:"foreignKey:SalonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"salon"`
	Options   []Option     `gorm:"many2many:record_options" json:"options"`
}

func (r *Record) AddOption(o *Option) {
	if r == nil || o == nil {
		return
	}
	graph.Append(&r.Options, *o)
}

func (r *Record) RemoveOption(o *Option) {
	if r == nil || o == nil {
		return
	}
	graph.Delete(&r.Options, *o)
}

var RecordCriteria = criteria.Spec{
	"id":        {Column: "records.id", Kind: criteria.KindNumber},
	"code":      {Column: "records.code", Kind: criteria.KindString},
	"startAt":   {Column: "records.start_at", Kind: criteria.KindTime},
	"endAt":     {Column: "records.end_at", Kind: criteria.KindTime},
	"price":     {Column: "records.price", Kind: criteria.KindNumber},
	"status":    {Column: "records.status", Kind: criteria.KindString},
	"comment":   {Column: "records.comment", Kind: criteria.KindString},
	"masterId":  {Column: "records.master_id", Kind: criteria.KindNumber},
	"variantId": {Column: "records.variant_id", Kind: criteria.KindNumber},
	"userId":    {Column: "records.user_id", Kind: criteria.KindNumber},
	"salonId":   {Column: "records.salon_id", Kind: criteria.KindNumber},
	"optionId": {
		Column: "record_options.option_id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN record_options ON record_options.record_id = records.id",
	},
}

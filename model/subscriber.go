package model

import (
	"time"

	"salon_manager/criteria"
)

type Subscriber struct {
	DTO
	Email          string     `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Name           string     `json:"name"`
	Active         *bool      `gorm:"not null;default:true" json:"active"`
	LastNotifiedAt *time.Time `json:"lastNotifiedAt"`
}

var SubscriberCriteria = criteria.Spec{
	"id":             {Column: "subscribers.id", Kind: criteria.KindNumber},
	"email":          {Column: "subscribers.email", Kind: criteria.KindString},
	"name":           {Column: "subscribers.name", Kind: criteria.KindString},
	"active":         {Column: "subscribers.active", Kind: criteria.KindBool},
	"lastNotifiedAt": {Column: "subscribers.last_notified_at", Kind: criteria.KindTime},
}

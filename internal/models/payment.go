package models

import "time"

type Payment struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	AppointmentID uint        `json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Reference é o identificador enviado ao gateway (external_reference)
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`
	Gateway   string `gorm:"size:20" json:"gateway"`

	Amount   float64 `json:"amount"`
	Currency string  `gorm:"size:3;default:'BRL'" json:"currency"`

	Status      string `gorm:"size:20;default:'pending'" json:"status"`
	ExternalID  string `gorm:"size:100" json:"external_id"`
	CheckoutURL string `gorm:"size:500" json:"checkout_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

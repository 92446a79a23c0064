package models

import "time"

// Doctor represents a clinician whose schedule the slot system manages.
type Doctor struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	Specialization string    `bson:"specialization" json:"specialization"`
	Qualification  string    `bson:"qualification,omitempty" json:"qualification,omitempty"`
	Experience     int       `bson:"experience,omitempty" json:"experience,omitempty"` // years
	Fee            float64   `bson:"fee" json:"fee"`                                   // consultation fee
	Status         string    `bson:"status" json:"status"`                             // "pending" until slots are set up, then "active"
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DoctorSlotsDTO is the onboarding response: the doctor plus the slots that
// were just generated for them.
type DoctorSlotsDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Slots  []Slot `json:"slots"`
}

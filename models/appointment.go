package models

import "time"

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment ties a patient to a booked slot occurrence on a concrete date.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	PatientID string    `bson:"patientId" json:"patientId"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	SlotID    string    `bson:"slotId" json:"slotId"`
	Date      string    `bson:"date" json:"date"`           // "2006-01-02"
	StartTime string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string    `bson:"endTime" json:"endTime"`
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Invoice   *Invoice  `bson:"invoice,omitempty" json:"invoice,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

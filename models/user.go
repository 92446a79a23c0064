package models

import "time"

// User is a patient or admin account. Authentication is OTP-based, so there
// is no password field for patients; the contact channel is the identity.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Role      Role      `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	Channel       string `json:"channel"` // "email" or "whatsapp"
}

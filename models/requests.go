package models

// CreateSlotRequest is the payload for manually adding one slot.
type CreateSlotRequest struct {
	DoctorID    string `json:"doctorId" binding:"required"`
	Day         string `json:"day,omitempty"`
	Date        string `json:"date,omitempty"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	IsAdminOnly bool   `json:"isAdminOnly"`
}

// UpdateSlotRequest carries the editable slot fields. Pointer fields are
// applied only when present so partial updates stay partial.
type UpdateSlotRequest struct {
	Day         *string `json:"day,omitempty"`
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
	IsAdminOnly *bool   `json:"isAdminOnly,omitempty"`
}

// BulkMutateRequest applies one action across a set of slot ids.
type BulkMutateRequest struct {
	SlotIDs []string   `json:"slotIds" binding:"required,min=1"`
	Action  BulkAction `json:"action" binding:"required"`
}

// BookSlotRequest is the payload for booking an appointment.
type BookSlotRequest struct {
	DoctorID string  `json:"doctorId" binding:"required"`
	SlotID   string  `json:"slotId" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Reason   string  `json:"reason,omitempty"`
	Method   string  `json:"method" binding:"required"` // "card" or "cash"
	Currency string  `json:"currency,omitempty"`
	Amount   float64 `json:"amount,omitempty"` // defaults to the doctor's fee
}

// InitiateOTPRequest starts an OTP login for the given contact.
type InitiateOTPRequest struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Channel string `json:"channel,omitempty"` // "email" or "whatsapp", defaults by contact
}

// VerifyOTPRequest completes an OTP login.
type VerifyOTPRequest struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	OTP   string `json:"otp" binding:"required"`
}

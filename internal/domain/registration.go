package domain

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Registration is one committed registration. Rows are written exactly once,
// with payment status paid and the serial number already assigned; the system
// never updates or deletes them afterwards.
type Registration struct {
	ID uuid.UUID `json:"id" db:"id"`

	// Personal details
	Name        string    `json:"name" db:"name"`
	Phone       string    `json:"phone" db:"phone"`
	Email       string    `json:"email" db:"email"`
	Gender      Gender    `json:"gender" db:"gender"`
	DateOfBirth time.Time `json:"date_of_birth" db:"date_of_birth"`

	// Education details
	CollegeName     string `json:"college_name" db:"college_name"`
	Course          string `json:"course" db:"course"`
	Specialization  string `json:"specialization" db:"specialization"`
	YearOfPassing   int    `json:"year_of_passing" db:"year_of_passing"`
	CurrentSemester string `json:"current_semester" db:"current_semester"`

	// Career preferences
	KeySkills         string `json:"key_skills" db:"key_skills"`
	InterestedJobRole string `json:"interested_job_role" db:"interested_job_role"`
	PreferredLocation string `json:"preferred_location" db:"preferred_location"`
	HasExperience     bool   `json:"has_experience" db:"has_experience"`

	// Resume reference: stored name is opaque and collision-resistant, the
	// original name is display metadata only.
	ResumePath         string `json:"resume_path" db:"resume_path"`
	ResumeOriginalName string `json:"resume_original_name" db:"resume_original_name"`

	Consent bool `json:"consent" db:"consent"`

	// Payment proof. The signature is never serialized to clients.
	PaymentOrderID   string        `json:"payment_order_id" db:"payment_order_id"`
	PaymentID        string        `json:"payment_id" db:"payment_id"`
	PaymentSignature string        `json:"-" db:"payment_signature"`
	PaymentStatus    PaymentStatus `json:"payment_status" db:"payment_status"`
	Amount           int64         `json:"amount" db:"amount"`

	SerialNumber string    `json:"serial_number" db:"serial_number"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PaymentOrder is the gateway order handed to the client before it runs the
// checkout flow.
type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

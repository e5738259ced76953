package model

import "time"

// ContactServiceType enumerates the subjects a contact inquiry may concern.
// Unlike the order form, a general inquiry is allowed.
type ContactServiceType string

const ServiceGeneral ContactServiceType = "general"

// ContactServiceTypes lists the service choices available on the contact form.
var ContactServiceTypes = []ContactServiceType{
	ServiceGeneral,
	ContactServiceType(ServiceThesis),
	ContactServiceType(ServiceReview),
	ContactServiceType(ServiceStatistics),
	ContactServiceType(ServiceTranslation),
	ContactServiceType(ServiceFormatting),
}

// ContactMessage is a general inquiry submitted through the contact form.
type ContactMessage struct {
	ID          int64
	FullName    string
	Email       string
	Phone       string
	Subject     string
	ServiceType ContactServiceType
	Message     string
	IsRead      bool
	CreatedAt   time.Time
}

package dto

// ContactForm mirrors the public contact form fields.
type ContactForm struct {
	FullName    string `form:"full_name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	Subject     string `form:"subject"`
	ServiceType string `form:"service_type"`
	Message     string `form:"message"`
}

// OrderForm mirrors the public order form fields. The attachment travels
// separately as a multipart file.
type OrderForm struct {
	FullName    string `form:"full_name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	ServiceType string `form:"service_type"`
	Message     string `form:"message"`
}

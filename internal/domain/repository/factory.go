package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Contacts() ContactRepository
	Orders() OrderRepository
	Services() ServiceRepository
	Testimonials() TestimonialRepository
}

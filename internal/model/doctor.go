package model

import "github.com/google/uuid"

// Doctor is a row in the doctors table. The directory endpoints return
// rows as-is, column names included.
type Doctor struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Specialty     string    `json:"specialty" db:"specialty"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	Rating        float64   `json:"rating" db:"rating"`
	Experience    string    `json:"experience" db:"experience"`
	Bio           string    `json:"bio" db:"bio"`
	AvailableTime string    `json:"available_time" db:"available_time"`
}

// DoctorSummary is the doctor object nested inside appointment
// responses. Same fields as Doctor, but image_url and available_time
// are renamed to camelCase on the wire.
type DoctorSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Specialty     string    `json:"specialty"`
	ImageURL      *string   `json:"imageUrl"`
	Rating        float64   `json:"rating"`
	Experience    string    `json:"experience"`
	Bio           string    `json:"bio"`
	AvailableTime string    `json:"availableTime"`
}

// Summary reshapes a doctor row for nesting under an appointment.
func (d *Doctor) Summary() DoctorSummary {
	return DoctorSummary{
		ID:            d.ID,
		Name:          d.Name,
		Specialty:     d.Specialty,
		ImageURL:      d.ImageURL,
		Rating:        d.Rating,
		Experience:    d.Experience,
		Bio:           d.Bio,
		AvailableTime: d.AvailableTime,
	}
}

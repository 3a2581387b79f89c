package seed

import (
	"github.com/google/uuid"

	"github.com/medibook/booking-api/internal/model"
)

func mustUUID(s string) uuid.UUID { return uuid.MustParse(s) }

// Doctors returns the fixed doctor directory. Doctors have no write
// endpoint; this is the only way rows enter the table.
func Doctors() []model.Doctor {
	return []model.Doctor{
		{
			ID:            mustUUID("12345678-1234-1234-1234-123456789abc"),
			Name:          "Dr. Sarah Johnson",
			Specialty:     "Cardiologist",
			ImageURL:      strptr("https://placehold.co/100x100/4CAF50/FFFFFF?text=SJ"),
			Rating:        4.8,
			Experience:    "10 years",
			Bio:           "Dr. Johnson is a highly experienced cardiologist dedicated to heart health.",
			AvailableTime: "Mon, Wed, Fri (9 AM - 5 PM)",
		},
		{
			ID:            mustUUID("22345678-2234-2234-2234-223456789abc"),
			Name:          "Dr. Michael Lee",
			Specialty:     "Pediatrician",
			ImageURL:      strptr("https://placehold.co/100x100/8BC34A/FFFFFF?text=ML"),
			Rating:        4.5,
			Experience:    "8 years",
			Bio:           "Dr. Lee specializes in pediatric care, ensuring the well-being of children.",
			AvailableTime: "Tue, Thu (10 AM - 6 PM)",
		},
		{
			ID:            mustUUID("32345678-3234-3234-3234-323456789abc"),
			Name:          "Dr. Emily Chen",
			Specialty:     "Dermatologist",
			ImageURL:      strptr("https://placehold.co/100x100/66BB6A/FFFFFF?text=EC"),
			Rating:        4.9,
			Experience:    "12 years",
			Bio:           "Dr. Chen provides expert care for skin conditions and cosmetic treatments.",
			AvailableTime: "Mon, Tue, Wed (11 AM - 7 PM)",
		},
		{
			ID:            mustUUID("42345678-4234-4234-4234-423456789abc"),
			Name:          "Dr. David Williams",
			Specialty:     "Neurologist",
			ImageURL:      strptr("https://placehold.co/100x100/2196F3/FFFFFF?text=DW"),
			Rating:        4.7,
			Experience:    "15 years",
			Bio:           "Dr. Williams is a leading neurologist with a focus on a wide range of neurological disorders.",
			AvailableTime: "Fri (9 AM - 3 PM)",
		},
		{
			ID:            mustUUID("52345678-5234-5234-5234-523456789abc"),
			Name:          "Dr. Jessica Brown",
			Specialty:     "Ophthalmologist",
			ImageURL:      strptr("https://placehold.co/100x100/3F51B5/FFFFFF?text=JB"),
			Rating:        4.6,
			Experience:    "7 years",
			Bio:           "Dr. Brown specializes in eye and vision care, committed to preserving her patients' sight.",
			AvailableTime: "Thu, Fri (8 AM - 4 PM)",
		},
		{
			ID:            mustUUID("62345678-6234-6234-6234-623456789abc"),
			Name:          "Dr. Robert Green",
			Specialty:     "Orthopedic Surgeon",
			ImageURL:      strptr("https://placehold.co/100x100/E91E63/FFFFFF?text=RG"),
			Rating:        4.9,
			Experience:    "20 years",
			Bio:           "Dr. Green is an expert orthopedic surgeon specializing in joint replacements and sports injuries.",
			AvailableTime: "Mon, Tue (9 AM - 6 PM)",
		},
		{
			ID:            mustUUID("72345678-7234-7234-7234-723456789abc"),
			Name:          "Dr. Laura Adams",
			Specialty:     "Psychiatrist",
			ImageURL:      strptr("https://placehold.co/100x100/9C27B0/FFFFFF?text=LA"),
			Rating:        4.4,
			Experience:    "9 years",
			Bio:           "Dr. Adams provides compassionate psychiatric care for a variety of mental health conditions.",
			AvailableTime: "Wed, Thu (12 PM - 8 PM)",
		},
	}
}

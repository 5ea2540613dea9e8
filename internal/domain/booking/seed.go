package booking

import "time"

// DemoBookings returns the development fixtures shown on the owner
// dashboard before any real traffic arrives
func DemoBookings() []*Booking {
	return []*Booking{
		{
			ID:           1,
			VenueID:      1,
			VenueName:    "Kigali Serena Hotel",
			CustomerName: "Sarah Johnson",
			Email:        "sarah@email.com",
			Phone:        "+250 788 123 456",
			EventDate:    "2024-08-15",
			GuestCount:   150,
			Message:      "Looking for an elegant venue for our wedding. We'd like to include outdoor ceremony space if possible.",
			Price:        "$2,500",
			Status:       StatusPending,
			SubmittedAt:  time.Date(2024, 1, 10, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           2,
			VenueID:      1,
			VenueName:    "Kigali Serena Hotel",
			CustomerName: "David Uwimana",
			Email:        "david@email.com",
			Phone:        "+250 788 987 654",
			EventDate:    "2024-09-22",
			GuestCount:   200,
			Message:      "Traditional wedding ceremony with modern reception. Need catering recommendations.",
			Price:        "$2,500",
			Status:       StatusApproved,
			SubmittedAt:  time.Date(2024, 1, 8, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:              3,
			VenueID:         1,
			VenueName:       "Kigali Serena Hotel",
			CustomerName:    "Marie Mukamana",
			Email:           "marie@email.com",
			Phone:           "+250 788 456 789",
			EventDate:       "2024-07-30",
			GuestCount:      300,
			Message:         "Large family wedding with traditional ceremonies.",
			Price:           "$2,500",
			Status:          StatusRejected,
			RejectionReason: "Venue is already booked for that date.",
			SubmittedAt:     time.Date(2024, 1, 5, 9, 45, 0, 0, time.UTC),
		},
	}
}

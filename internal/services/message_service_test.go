package services

import (
	"strings"
	"testing"
)

func TestFormatBookingNotification(t *testing.T) {
	req := &BookingNotificationRequest{
		HotelName:  "Vinoth Grand Hotel",
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		CheckIn:    "2026-03-01",
		CheckOut:   "2026-03-04",
		TotalCost:  357,
	}

	content := FormatBookingNotification(req)

	for _, want := range []string{
		"Guest Name: Ada Lovelace",
		"Guest Email: ada@example.com",
		"Check-in: 2026-03-01",
		"Check-out: 2026-03-04",
		"Estimated Total: £357",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("notification missing %q:\n%s", want, content)
		}
	}

	if strings.Contains(content, "Guest Phone") {
		t.Error("phone line should be omitted when no phone is given")
	}
	if strings.Contains(content, "Special Requests") {
		t.Error("special requests section should be omitted when empty")
	}
}

func TestFormatBookingNotificationOptionalSections(t *testing.T) {
	req := &BookingNotificationRequest{
		HotelName:       "Vinoth Grand Hotel",
		GuestName:       "Ada Lovelace",
		GuestEmail:      "ada@example.com",
		CheckIn:         "2026-03-01",
		CheckOut:        "2026-03-04",
		TotalCost:       357,
		Phone:           "+44 20 7946 0000",
		SpecialRequests: "Late check-in, please.",
	}

	content := FormatBookingNotification(req)

	if !strings.Contains(content, "Guest Phone: +44 20 7946 0000") {
		t.Error("phone line missing")
	}
	if !strings.Contains(content, "Special Requests:\nLate check-in, please.") {
		t.Error("special requests section missing")
	}
}

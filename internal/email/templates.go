package email

import (
	"fmt"
	"time"
)

// Message builders for the notification points of the delivery flows. Bodies
// are simple inline HTML; template engines are out of scope.

// FormatDate renders a date for email bodies, e.g. "January 2, 2006".
func FormatDate(date time.Time) string {
	return date.Format("January 2, 2006")
}

// Welcome is sent right after registration.
func Welcome(appName, to string) *Message {
	return &Message{
		To:       []string{to},
		Subject:  fmt.Sprintf("Welcome to %s!", appName),
		HTMLBody: "<h1>You have registered successfully as a user on our platform.</h1>",
	}
}

// PasswordResetRequested carries the reset link.
func PasswordResetRequested(to, resetURL string) *Message {
	return &Message{
		To:      []string{to},
		Subject: "Password Reset requested",
		HTMLBody: fmt.Sprintf(
			`<p>You have requested a password reset. Here is your reset url: <a href="%s">Click Here</a></p>`,
			resetURL,
		),
	}
}

// PasswordResetDone confirms a completed password reset.
func PasswordResetDone(to string) *Message {
	return &Message{
		To:       []string{to},
		Subject:  "Successful Password Reset",
		HTMLBody: "<p>You have successfully reset your password.</p>",
	}
}

// PackageConfirmation is sent to the primary recipient when a package is
// submitted for delivery.
func PackageConfirmation(to, trackingCode string, pickupDate time.Time) *Message {
	return &Message{
		To:      []string{to},
		Subject: "Package confirmation",
		HTMLBody: fmt.Sprintf(
			"<p>Hello.\n You have a package to be delivered to you on %s with tracking code %s.</p>",
			FormatDate(pickupDate), trackingCode,
		),
	}
}

// DeliveryConfirmation is sent to the submitter and the primary recipient
// when a package reaches Delivered.
func DeliveryConfirmation(to []string, packageID string) *Message {
	return &Message{
		To:      to,
		Subject: fmt.Sprintf("Successful Delivery of package %s", packageID),
		HTMLBody: fmt.Sprintf(
			"<p>Hello.\n Your package with ID of %s has been successfully delivered.</p>",
			packageID,
		),
	}
}

// Package timezone keeps every clock reading of the service in one location.
//
// The location comes from APP_TIMEZONE (an IANA name such as "Asia/Kolkata" or "UTC")
// and is resolved once when the package is imported. Booking dates are compared
// against Today(), so a clinic in a non-UTC zone does not reject bookings for the
// current local day.
//
//	now := timezone.Now()
//	today := timezone.Today()
//	day, err := timezone.Parse(time.DateOnly, "2025-01-31")
package timezone

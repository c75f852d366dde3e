package models

// PackageStatus is one stage of the delivery lifecycle. Values are the
// display strings stored in the database.
type PackageStatus string

const (
	PackageStatusPending        PackageStatus = "Pending"
	PackageStatusInTransit      PackageStatus = "In Transit"
	PackageStatusOutForDelivery PackageStatus = "Out for Delivery"
	PackageStatusDelivered      PackageStatus = "Delivered"
)

// nextPackageStatus is the forward-only transition table. Delivered has no
// successor. Progression is always computed from this table against the
// currently persisted status, never re-derived from elapsed time.
var nextPackageStatus = map[PackageStatus]PackageStatus{
	PackageStatusPending:        PackageStatusInTransit,
	PackageStatusInTransit:      PackageStatusOutForDelivery,
	PackageStatusOutForDelivery: PackageStatusDelivered,
}

// NextStatus returns the successor of s. ok is false when s is terminal or
// unknown.
func NextStatus(s PackageStatus) (next PackageStatus, ok bool) {
	next, ok = nextPackageStatus[s]
	return next, ok
}

// IsTerminal reports whether s has no outgoing transition.
func IsTerminal(s PackageStatus) bool {
	_, ok := nextPackageStatus[s]
	return !ok
}

// ValidPackageStatus reports whether s is a known lifecycle stage.
func ValidPackageStatus(s PackageStatus) bool {
	switch s {
	case PackageStatusPending, PackageStatusInTransit, PackageStatusOutForDelivery, PackageStatusDelivered:
		return true
	default:
		return false
	}
}

// TokenType tags a stored credential.
type TokenType string

const (
	TokenTypeReset TokenType = "reset"
)

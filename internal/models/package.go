package models

import "time"

type Package struct {
	BaseModel
	Name        string        `gorm:"not null" json:"name"`
	Description *string       `json:"description"`
	Status      PackageStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PickupDate  time.Time     `gorm:"not null" json:"pickup_date"`
	// PrimaryEmail is the recipient notified on submit and delivery.
	PrimaryEmail   string  `gorm:"not null" json:"primary_email"`
	SecondaryEmail *string `json:"secondary_email"`
	// TrackingCode is the public identifier, distinct from ID.
	TrackingCode string `gorm:"uniqueIndex;not null" json:"tracking_code"`
	UserID       string `gorm:"not null;index" json:"user_id"`
	// NextTransitionAt is the durable progression schedule: when the next
	// automatic status change is due. NULL means no progression is pending,
	// either because the package is still Pending or because it is Delivered.
	NextTransitionAt *time.Time `gorm:"index" json:"-"`
}

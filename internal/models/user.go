package models

type User struct {
	BaseModel
	FirstName    string  `gorm:"not null" json:"first_name"`
	LastName     string  `gorm:"not null" json:"last_name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber  *string `json:"phone_number"`
	PasswordHash string  `gorm:"column:password;not null" json:"-"`
	// RefreshToken is nulled on logout; its absence means "logged out".
	RefreshToken *string `json:"refresh_token,omitempty"`

	// Relations
	Packages []Package `gorm:"foreignKey:UserID" json:"-"`
	Tokens   []Token   `gorm:"foreignKey:UserID" json:"-"`
}

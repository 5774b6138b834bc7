package entity

// User is a registered account. Status starts false and is set true once by activation.
type User struct {
	Base
	Name        string `db:"name"`
	Email       string `db:"email"`
	PhoneNumber string `db:"phone_number"`
	City        string `db:"city"`
	Status      bool   `db:"status"`
}

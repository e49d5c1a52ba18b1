package entity

// User is an identity record. Created on registration, never mutated:
// there is no profile edit or password reset in this storefront.
type User struct {
	Base
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}

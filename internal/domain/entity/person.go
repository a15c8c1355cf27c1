package entity

import "time"

// Person is an identity record gated by CPF validation.
type Person struct {
	ID          int64
	Name        string
	Gender      string
	Email       string
	BirthDate   time.Time
	Birthplace  string
	Nationality string
	CPF         string   // Digits only; unique across persons.
	Address     *Address // Optional postal address.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Address is the postal address attached to a person.
type Address struct {
	Street  string
	Number  string
	City    string
	State   string
	ZipCode string
}

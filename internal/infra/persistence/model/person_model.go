package model

import "time"

// PersonModel mirrors the 'persons' table. The CPF is stored as 11 digits.
type PersonModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Name        string         `gorm:"type:varchar(150);not null"`
	Gender      string         `gorm:"type:varchar(20)"`
	Email       string         `gorm:"type:varchar(255)"`
	BirthDate   time.Time      `gorm:"type:date;not null"`
	Birthplace  string         `gorm:"type:varchar(100)"`
	Nationality string         `gorm:"type:varchar(100)"`
	CPF         string         `gorm:"column:cpf;type:char(11);not null;uniqueIndex:uq_persons_cpf"`
	HasAddress  bool           `gorm:"not null;default:false"`
	Address     AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AddressColumns is the optional postal address stored inline on persons.
type AddressColumns struct {
	Street  string `gorm:"type:varchar(200)"`
	Number  string `gorm:"type:varchar(20)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(50)"`
	ZipCode string `gorm:"type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "persons"
}

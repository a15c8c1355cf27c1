package model

import "time"

// CredentialModel mirrors the 'credentials' table. Username and email carry
// named unique indexes so violations can be told apart by constraint name.
type CredentialModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex:uq_credentials_username"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_credentials_email"`
	PasswordHash string `gorm:"type:varchar(128);not null"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

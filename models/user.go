package models

import "time"

type UserAccount struct {
	JsonModel
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	DeviceID string   `json:"-" gorm:"uniqueIndex"`
	Banned   bool     `gorm:"default:false" json:"-"`
	LastIp   string   `json:"-"`
	Platform Platform `sql:"type:ENUM('ios', 'android', 'web')" json:"platform"`

	Subscription   Subscription `json:"subscription"`
	ExpirationDate *time.Time   `json:"-"`

	// Preferred city for weather lookups when the client sends none.
	City string `json:"city"`

	// Daily generation cap set by support for abusive accounts.
	EnforcedDailyGenerationLimit *int32 `json:"enforced_daily_generation_limit"`
}

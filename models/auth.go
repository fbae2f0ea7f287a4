package models

import "time"

type JsonModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeviceAuthIn struct {
	DeviceId string `json:"device_id" validate:"required,max=128"`
	Platform string `json:"platform" validate:"required,platform"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

type DeviceAuthOut struct {
	Id          uint   `json:"id"`
	New         bool   `json:"new"`
	AccessToken string `json:"access_token"`
}

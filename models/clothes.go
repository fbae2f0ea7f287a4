package models

import "github.com/lib/pq"

// ClothingItem is one digitized wardrobe piece. Category, color and the
// style metadata are written by the background image analysis task;
// until that runs they stay empty and the item is excluded from
// generation by its status.
type ClothingItem struct {
	JsonModel
	Name        string      `json:"name"`
	Description *string     `gorm:"type:text" json:"description"`
	Owner       UserAccount `json:"-"`
	OwnerID     uint        `json:"-"`

	// Raw tagger output; normalized on read by the styling engine.
	Category  string         `json:"category"`
	Color     string         `json:"color"`
	StyleTags pq.StringArray `gorm:"type:text[]" json:"style_tags"`
	Season    string         `json:"season"`    // summer, winter, spring, fall, all-season
	Formality string         `json:"formality"` // casual, business-casual, business, formal

	Status              string  `json:"status"`            // temporary, in_closet
	ImageStatus         string  `json:"image_status"`      // draft, uploaded
	ProcessingStatus    string  `json:"processing_status"` // idle, pending, generating, completed, failed
	ProcessRetryTimes   int     `json:"process_retry_times"`
	ProcessErrorMessage *string `json:"process_error_message"`
	ImageKey            *string `json:"image_key"`
}

// OutfitRecord is one generated outfit persisted to history by the API
// layer after a generation call.
type OutfitRecord struct {
	JsonModel
	UserAccountID uint        `json:"-"`
	UserAccount   UserAccount `json:"-"`

	Occasion     string `json:"occasion"`
	WeatherLabel string `json:"weather_label"`

	Title               string         `json:"title"`
	Details             string         `json:"details"`
	Score               float64        `json:"score"`
	ItemCount           int            `json:"item_count"`
	OccasionSuitability float64        `json:"occasion_suitability"`
	WeatherAdaptation   float64        `json:"weather_adaptation"`
	ItemIDs             pq.StringArray `gorm:"type:text[]" json:"item_ids"`
}

package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"vestiapi/models"
	"vestiapi/services"
	"vestiapi/styling"
)

type GenerateOutfitsIn struct {
	Occasion    string   `json:"occasion" validate:"omitempty,max=200"`
	City        string   `json:"city" validate:"omitempty,max=100"`
	NumOutfits  int      `json:"num_outfits" validate:"omitempty,min=1,max=10"`
	FocusItemID *uint    `json:"focus_item_id"`
	TempC       *float64 `json:"temp_c"`
	Condition   string   `json:"condition" validate:"omitempty,max=50"`
}

type OutfitHistoryOut struct {
	ID                  uint     `json:"id"`
	Occasion            string   `json:"occasion"`
	WeatherLabel        string   `json:"weather_label"`
	Title               string   `json:"title"`
	Details             string   `json:"details"`
	Score               float64  `json:"score"`
	ItemCount           int      `json:"item_count"`
	OccasionSuitability float64  `json:"occasion_suitability"`
	WeatherAdaptation   float64  `json:"weather_adaptation"`
	ItemIDs             []string `json:"item_ids"`
	CreatedAt           string   `json:"created_at"`
}

type OutfitsController struct {
	Weather   services.WeatherServiceProvider
	Generator *styling.Generator
}

func (controller *OutfitsController) OutfitRoutes(g *echo.Group) {
	g.POST("/generate", controller.GenerateOutfits)
	g.GET("/history", controller.OutfitHistory)
}

// wardrobeSnapshot loads the user's analyzed closet items and freezes them
// into engine items. Items still waiting for analysis are not eligible.
func wardrobeSnapshot(db *gorm.DB, userID uint) ([]styling.Item, error) {
	var clothes []models.ClothingItem
	if err := db.Where("owner_id = ? AND status = ? AND processing_status = ?", userID, "in_closet", "completed").Find(&clothes).Error; err != nil {
		return nil, err
	}
	items := make([]styling.Item, 0, len(clothes))
	for _, item := range clothes {
		imageKey := ""
		if item.ImageKey != nil {
			imageKey = *item.ImageKey
		}
		items = append(items, styling.SnapshotItem(
			UIntToStr(item.ID),
			item.Category,
			item.Color,
			item.StyleTags,
			item.Season,
			item.Formality,
			imageKey,
		))
	}
	return items, nil
}

func (controller *OutfitsController) GenerateOutfits(c echo.Context) error {
	var req GenerateOutfitsIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	if user.EnforcedDailyGenerationLimit != nil {
		var dailyCount int64
		today := time.Now().UTC().Format("2006-01-02")
		if err := db.Model(&models.OutfitRecord{}).Where("user_account_id = ? AND DATE(created_at) = ?", user.ID, today).Count(&dailyCount).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get generation data"})
		}
		fmt.Printf("[User %v] Enforced daily limit, generated today: %v\n", user.ID, dailyCount)
		if dailyCount >= int64(*user.EnforcedDailyGenerationLimit) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "You have reached your daily generation limit. Please wait for the next day."})
		}
	}

	items, err := wardrobeSnapshot(db, user.ID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch wardrobe"})
	}

	weather := controller.resolveWeather(c, req, user)
	profile := styling.BuildWeatherProfile(weather)

	focusItemID := ""
	if req.FocusItemID != nil {
		focusItemID = UIntToStr(*req.FocusItemID)
	}

	outfits := controller.Generator.Generate(c.Request().Context(), styling.GenerateRequest{
		UserID:      UIntToStr(user.ID),
		Occasion:    req.Occasion,
		Weather:     weather,
		Items:       items,
		NumOutfits:  req.NumOutfits,
		FocusItemID: focusItemID,
	})

	controller.persistHistory(db, user, req.Occasion, profile, outfits)

	return c.JSON(http.StatusOK, echo.Map{
		"outfits":       outfits,
		"count":         len(outfits),
		"weather_label": profile.Label,
	})
}

// resolveWeather prefers inline weather from the request, then the requested
// city, then the user's preferred city. All failures degrade to defaults.
func (controller *OutfitsController) resolveWeather(c echo.Context, req GenerateOutfitsIn, user models.UserAccount) styling.WeatherInfo {
	if req.TempC != nil || req.Condition != "" {
		return styling.WeatherInfo{
			City:      req.City,
			TempC:     req.TempC,
			Condition: req.Condition,
		}
	}
	city := req.City
	if city == "" {
		city = user.City
	}
	if city == "" || controller.Weather == nil {
		return styling.WeatherInfo{}
	}
	weather, err := controller.Weather.CurrentWeather(c.Request().Context(), city)
	if err != nil {
		log.Printf("[Outfits] weather lookup for %q failed: %v", city, err)
		sentry.CaptureException(err)
		return styling.WeatherInfo{City: city}
	}
	return weather
}

func (controller *OutfitsController) persistHistory(db *gorm.DB, user models.UserAccount, occasion string, profile styling.WeatherProfile, outfits []styling.Outfit) {
	if len(outfits) == 0 {
		return
	}
	records := make([]models.OutfitRecord, 0, len(outfits))
	for _, outfit := range outfits {
		itemIDs := make([]string, 0, len(outfit.Items))
		for _, item := range outfit.Items {
			itemIDs = append(itemIDs, item.ID)
		}
		records = append(records, models.OutfitRecord{
			UserAccountID:       user.ID,
			Occasion:            occasion,
			WeatherLabel:        profile.Label,
			Title:               outfit.Title,
			Details:             outfit.Details,
			Score:               outfit.Score,
			ItemCount:           outfit.ItemCount,
			OccasionSuitability: outfit.OccasionSuitability,
			WeatherAdaptation:   outfit.WeatherAdaptation,
			ItemIDs:             pq.StringArray(itemIDs),
		})
	}
	if err := db.CreateInBatches(records, 100).Error; err != nil {
		// History is best effort, the generated outfits still go out.
		log.Printf("[Outfits] failed to persist history for user %v: %v", user.ID, err)
		sentry.CaptureException(err)
	}
}

func (controller *OutfitsController) OutfitHistory(c echo.Context) error {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var records []models.OutfitRecord
	if err := db.Where("user_account_id = ?", user.ID).Order("created_at desc").Limit(50).Find(&records).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch history"})
	}

	history := make([]OutfitHistoryOut, 0, len(records))
	for _, record := range records {
		history = append(history, OutfitHistoryOut{
			ID:                  record.ID,
			Occasion:            record.Occasion,
			WeatherLabel:        record.WeatherLabel,
			Title:               record.Title,
			Details:             record.Details,
			Score:               record.Score,
			ItemCount:           record.ItemCount,
			OccasionSuitability: record.OccasionSuitability,
			WeatherAdaptation:   record.WeatherAdaptation,
			ItemIDs:             record.ItemIDs,
			CreatedAt:           record.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"history": history,
	})
}

package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"vestiapi/models"
	"vestiapi/services"
	"vestiapi/styling"
	"vestiapi/tasks"
)

// Free accounts keep a small closet; everything past this needs a plan.
const freeWardrobeLimit = 20

type CreateClothingIn struct {
	Name        string  `json:"name" validate:"omitempty,max=100"`
	FileName    *string `json:"file_name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type ClothingResponse struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Description      *string  `json:"description"`
	Category         string   `json:"category"`
	Color            string   `json:"color"`
	StyleTags        []string `json:"style_tags"`
	Season           string   `json:"season"`
	Formality        string   `json:"formality"`
	Status           string   `json:"status"`
	ProcessingStatus string   `json:"processing_status"`
	Uri              *string  `json:"uri,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

type ClothingCreatedResponse struct {
	ClothingResponse ClothingResponse `json:"clothes"`
	FileUploadUrl    string           `json:"file_upload_url"`
}

type ClothesListResponse struct {
	Tops        []ClothingResponse `json:"tops"`
	Bottoms     []ClothingResponse `json:"bottoms"`
	Dresses     []ClothingResponse `json:"dresses"`
	Outerwear   []ClothingResponse `json:"outerwear"`
	Shoes       []ClothingResponse `json:"shoes"`
	Accessories []ClothingResponse `json:"accessories"`
	Other       []ClothingResponse `json:"other"`
}

type ClothesController struct {
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
}

func (controller *ClothesController) ClothingRoutes(g *echo.Group) {
	g.POST("/create", controller.CreateClothing)
	g.GET("/list", controller.ListClothes)
	g.DELETE("/:clothingId", controller.DeleteClothing)
}

func (controller *ClothesController) CreateClothing(c echo.Context) error {
	var req CreateClothingIn
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
	asynqClient, ok := c.Get("__asynqclient").(*asynq.Client)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Service is not available, please try again a bit later"})
	}

	if req.FileName == nil || *req.FileName == "" {
		sentry.CaptureException(fmt.Errorf("Image was not provided when creating clothing %s, user %v", req.Name, user.ID))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Sorry, it seems image was not provided, please try again"})
	}
	if !services.IsAllowedImageName(*req.FileName) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unsupported image format"})
	}

	if string(user.Subscription) == "free" {
		var totalClothingCount int64
		if err := db.Model(&models.ClothingItem{}).Where("owner_id = ?", user.ID).Count(&totalClothingCount).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get wardrobe data"})
		}
		fmt.Printf("[User %v] Free plan, wardrobe count: %v\n", user.ID, totalClothingCount)
		if totalClothingCount >= freeWardrobeLimit {
			return c.JSON(http.StatusForbidden, map[string]string{"error": fmt.Sprintf("You have reached the free limit of %v items, please subscribe", freeWardrobeLimit)})
		}
	}

	item := models.ClothingItem{
		Name:             req.Name,
		Description:      req.Description,
		OwnerID:          user.ID,
		Status:           "temporary",
		ImageStatus:      "draft",
		ProcessingStatus: "pending",
	}
	var bucketName = services.GetEnv("R2_BUCKET_NAME", "")
	safeFileName := fmt.Sprintf("clothes/%v/%s", user.ID, *req.FileName)

	uploadUrl, presignErr := controller.AWSService.PresignLink(context.Background(), bucketName, safeFileName)
	item.ImageKey = &safeFileName
	if presignErr != nil {
		log.Printf("Unable to presign generate for %s!, %s", item.Name, presignErr)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Error while creating item with attachment",
		})
	}
	if err := db.Create(&item).Error; err != nil {
		sentry.CaptureException(err)
		return err
	}

	task, err := tasks.NewClothingAnalysisTask(item.ID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Sorry, could not process the item, please try again"})
	}
	info, err := asynqClient.Enqueue(task, asynq.MaxRetry(3), asynq.Queue("analyze"))
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Sorry, could not process the item, please try again"})
	}
	fmt.Println("[Queue] Clothing analysis task submitted, Clothing ID: ", item.ID, " Task ID: ", info.ID)

	response := ClothingCreatedResponse{
		ClothingResponse: clothingToResponse(item, nil),
		FileUploadUrl:    uploadUrl,
	}

	return c.JSON(http.StatusCreated, response)
}

func clothingToResponse(item models.ClothingItem, uri *string) ClothingResponse {
	return ClothingResponse{
		ID:               item.ID,
		Name:             item.Name,
		Description:      item.Description,
		Category:         styling.NormalizeCategory(item.Category),
		Color:            styling.NormalizeColor(item.Color),
		StyleTags:        item.StyleTags,
		Season:           item.Season,
		Formality:        item.Formality,
		Status:           item.Status,
		ProcessingStatus: item.ProcessingStatus,
		Uri:              uri,
		CreatedAt:        item.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:        item.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// populatePresignedClothingImages enriches raw clothing rows with presigned
// read URLs concurrently, with a direct-R2 failsafe when the cache layer
// itself fails. A missing image never fails the whole listing.
func (controller *ClothesController) populatePresignedClothingImages(ctx context.Context, clothes []models.ClothingItem) []ClothingResponse {
	if len(clothes) == 0 {
		return []ClothingResponse{}
	}

	var wg sync.WaitGroup
	processedResponses := make([]ClothingResponse, len(clothes))
	bucketName := services.GetEnv("R2_BUCKET_NAME", "")

	for i, clothingItem := range clothes {
		wg.Add(1)
		go func(index int, item models.ClothingItem) {
			defer wg.Done()

			var imageUrl string
			if item.ImageKey != nil && *item.ImageKey != "" {
				objectKey := *item.ImageKey

				url, err := controller.URLCache.GetReadURL(ctx, objectKey)
				if err == nil {
					imageUrl = url
				} else {
					log.Printf("CACHE WARNING: Cache system failed for key '%s': %v. Triggering manual R2 fallback.", objectKey, err)
					sentry.WithScope(func(scope *sentry.Scope) {
						scope.SetTag("failure_type", "cache_system")
						scope.SetExtra("objectKey", objectKey)
						sentry.CaptureException(err)
					})

					fallbackUrl, fallbackErr := controller.AWSService.GetPresignedR2FileReadURL(ctx, bucketName, objectKey)
					if fallbackErr != nil {
						log.Printf("CRITICAL: Manual R2 fallback also failed for key '%s': %v", objectKey, fallbackErr)
						sentry.CaptureException(fallbackErr)
					} else {
						imageUrl = fallbackUrl
					}
				}
			}
			processedResponses[index] = clothingToResponse(item, &imageUrl)
		}(i, clothingItem)
	}

	wg.Wait()
	return processedResponses
}

func (controller *ClothesController) ListClothes(c echo.Context) error {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var clothes []models.ClothingItem
	if err := db.Where("owner_id = ?", user.ID).Find(&clothes).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch wardrobe"})
	}
	processedResponses := controller.populatePresignedClothingImages(c.Request().Context(), clothes)

	response := ClothesListResponse{
		Tops:        []ClothingResponse{},
		Bottoms:     []ClothingResponse{},
		Dresses:     []ClothingResponse{},
		Outerwear:   []ClothingResponse{},
		Shoes:       []ClothingResponse{},
		Accessories: []ClothingResponse{},
		Other:       []ClothingResponse{},
	}

	for _, resp := range processedResponses {
		switch resp.Category {
		case "top":
			response.Tops = append(response.Tops, resp)
		case "bottom":
			response.Bottoms = append(response.Bottoms, resp)
		case "dress":
			response.Dresses = append(response.Dresses, resp)
		case "outerwear":
			response.Outerwear = append(response.Outerwear, resp)
		case "shoes":
			response.Shoes = append(response.Shoes, resp)
		case "accessory":
			response.Accessories = append(response.Accessories, resp)
		default:
			response.Other = append(response.Other, resp)
		}
	}

	return c.JSON(http.StatusOK, response)
}

func (controller *ClothesController) DeleteClothing(c echo.Context) error {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var clothingId uint
	if err := echo.PathParamsBinder(c).Uint("clothingId", &clothingId).BindError(); err != nil {
		return echo.ErrBadRequest
	}

	result := db.Where("id = ? AND owner_id = ?", clothingId, user.ID).Delete(&models.ClothingItem{})
	if result.Error != nil {
		sentry.CaptureException(result.Error)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete item"})
	}
	if result.RowsAffected == 0 {
		return echo.ErrNotFound
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

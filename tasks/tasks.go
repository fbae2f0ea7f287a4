package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"vestiapi/models"
	"vestiapi/services"
	"vestiapi/telegram"
)

type ClothingAnalysisPayload struct {
	ClothingId uint `json:"clothing_id"`
}

func NewClothingAnalysisTask(clothingId uint) (*asynq.Task, error) {
	payload, err := json.Marshal(ClothingAnalysisPayload{ClothingId: clothingId})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask("analyze:clothing", payload), nil
}

func getFileForClothing(awsService services.AWSServiceProvider, item models.ClothingItem) ([]byte, string, error) {
	bucketName := os.Getenv("R2_BUCKET_NAME")
	if item.ImageKey == nil {
		return nil, "", fmt.Errorf("[Clothing: %v] Image key is nil", item.ID)
	}
	fileUrl, err := awsService.GetPresignedR2FileReadURL(context.TODO(), bucketName, *item.ImageKey)
	fileName := filepath.Base(*item.ImageKey)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Clothing: %v] Error on getting presigned URL for file %s", item.ID, *item.ImageKey))
		return nil, fileName, err
	}
	fmt.Printf("[Clothing: %v] Downloading... %s\n", item.ID, fileUrl)
	fileBytes, err := services.ReadFileFromUrl(fileUrl)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Clothing: %v] Error on downloading file %s: %v", item.ID, *item.ImageKey, err))
		return nil, fileName, err
	}

	return fileBytes, fileName, nil
}

// HandleClothingAnalysisTask tags one uploaded wardrobe image with the LLM
// and moves the item into the closet. Until it completes the item stays out
// of outfit generation.
func HandleClothingAnalysisTask(ctx context.Context, t *asynq.Task, db *gorm.DB, stylist services.StylistServiceProvider, awsService services.AWSServiceProvider) error {
	google_key := os.Getenv("GOOGLE_API_KEY")
	if google_key == "" {
		sentry.CaptureException(fmt.Errorf("[QUEUE] %s Google API key is not set", string(t.Payload())))
		return fmt.Errorf("[QUEUE] %s Google API key is not set", string(t.Payload()))
	}
	var payload ClothingAnalysisPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	fmt.Printf("[Clothing: %v] Start Processing\n", payload.ClothingId)

	var item models.ClothingItem
	res := db.First(&item, payload.ClothingId)
	if res.Error != nil {
		sentry.CaptureException(fmt.Errorf("[QUEUE] Error on retrieving clothing item for processing %v", payload.ClothingId))
		return res.Error
	}

	if item.ImageKey == nil {
		saveClothingProcessingFail(db, item, "No image uploaded for this item, please re-add it", false)
		sentry.CaptureException(fmt.Errorf("[Clothing: %v] Image key is nil", payload.ClothingId))
		return fmt.Errorf("[Clothing: %v] Image key is nil, cannot proceed", payload.ClothingId)
	}

	item.ProcessingStatus = "generating"
	if err := db.Save(&item).Error; err != nil {
		sentry.CaptureException(fmt.Errorf("[Clothing: %v] Error on saving generating status %v", payload.ClothingId, err))
		return err
	}

	fileBytes, fileName, err := getFileForClothing(awsService, item)
	if err != nil {
		saveClothingProcessingFail(db, item, "Failed to read the item image, please re-upload it", true)
		return err
	}
	fmt.Printf("[Clothing: %v] Downloaded file size: %d bytes\n", payload.ClothingId, len(fileBytes))

	filePath, err := services.CreateTempFile(fileBytes, fileName)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Clothing: %v] Error on creating temp file %s: %v", payload.ClothingId, fileName, err))
		return err
	}
	defer os.Remove(filePath)

	analysis, err := stylist.AnalyzeClothing(ctx, filePath, services.Flash25)
	if err != nil {
		if strings.Contains(err.Error(), "content violation") {
			saveClothingProcessingFail(db, item, "Sorry, this image contains content we cannot process.", false)
			sentry.CaptureException(fmt.Errorf("[Clothing: %v] Content violation on analyzing image %s: %v", payload.ClothingId, *item.ImageKey, err))
			return nil
		}
		saveClothingProcessingFail(db, item, "Failed to analyze the item image, please try again", true)
		sentry.CaptureException(fmt.Errorf("[Clothing: %v] Error on analyzing image %s: %v", payload.ClothingId, *item.ImageKey, err))
		telegram.Notify(fmt.Sprintf("Clothing analysis failed for item %v: %v", payload.ClothingId, err))
		return err
	}
	if analysis == nil || analysis.Name == "unknown" {
		saveClothingProcessingFail(db, item, "We could not recognize any clothing in this image", false)
		return nil
	}

	if item.Name == "" {
		item.Name = analysis.Name
	}
	item.Category = analysis.Category
	item.Color = analysis.Color
	item.StyleTags = pq.StringArray(analysis.StyleTags)
	item.Season = analysis.Season
	item.Formality = analysis.Formality
	item.Description = services.StrPointer(analysis.Description)
	item.Status = "in_closet"
	item.ProcessingStatus = "completed"
	item.ProcessErrorMessage = nil

	tx := db.Save(&item)
	if tx.Error != nil {
		sentry.CaptureException(fmt.Errorf("[QUEUE] Error on saving clothing item %v", payload.ClothingId))
		return tx.Error
	}
	fmt.Printf("[Clothing: %v] Analysis finished: %s %s %s\n", payload.ClothingId, item.Color, item.Category, item.Formality)
	return nil
}

func saveClothingProcessingFail(db *gorm.DB, item models.ClothingItem, msg string, shouldRetry bool) error {
	item.ProcessRetryTimes = item.ProcessRetryTimes + 1
	item.ProcessErrorMessage = &msg
	if !shouldRetry || item.ProcessRetryTimes >= 3 {
		item.ProcessingStatus = "failed"
	}
	tx := db.Save(&item)
	if tx.Error != nil {
		sentry.CaptureException(fmt.Errorf("[Fail Clothing %v] Error on saving item for failed status", item.ID))
		return tx.Error
	}
	return nil
}

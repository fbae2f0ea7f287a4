package test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"vestiapi/models"
	"vestiapi/services"
	"vestiapi/styling"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(userPk string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userPk,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Fatalf("Error when signing user token for %s. Error %s ", userPk, err)
	}
	return t
}

func NewJSONAuthRequest(method string, target string, userPk string, param interface{}) *http.Request {
	log.Println(JsonString(param))
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	token := GenerateUserToken(userPk)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	return req
}

func NewJSONAuthRequestRaw(method string, target string, userPk string, json string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(json))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	token := GenerateUserToken(userPk)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	return req
}

func NewRefString(data string) *string {
	return &data
}

func Float64Pointer(f float64) *float64 {
	return &f
}

func FakeUser(db *gorm.DB) *models.UserAccount {
	user := &models.UserAccount{
		Name:         "OurName",
		Email:        "email@example.com",
		DeviceID:     fmt.Sprintf("device-%d", time.Now().UnixNano()),
		Platform:     models.PlatformIOS,
		LastIp:       "123.122.122.122",
		Subscription: models.Free,
	}
	db.Create(&user)
	return user
}

// FakeClothingItem creates one analyzed closet item ready for generation.
func FakeClothingItem(db *gorm.DB, ownerID uint, category, color string, extra func(*models.ClothingItem)) *models.ClothingItem {
	item := &models.ClothingItem{
		Name:             fmt.Sprintf("%s %s", color, category),
		OwnerID:          ownerID,
		Category:         category,
		Color:            color,
		Season:           "all-season",
		Formality:        "casual",
		Status:           "in_closet",
		ImageStatus:      "uploaded",
		ProcessingStatus: "completed",
	}
	if extra != nil {
		extra(item)
	}
	db.Create(&item)
	return item
}

type AWSProviderMock struct {
	MockUrl string
}

func (awsService AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService AWSProviderMock) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {

	return fmt.Sprintf("https://fakebucketurl.com/%s", fileName), nil
}

func (awsService AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	return awsService.MockUrl, nil
}

func (awsService AWSProviderMock) UploadToPresignedURL(ctx context.Context, bucketName, url string, fileContent []byte) (string, int, error) {
	return url, 204, nil
}

// URLCacheMock resolves every object key to a static fake URL.
type URLCacheMock struct {
	MockUrl string
}

func (m URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", nil
	}
	return m.MockUrl, nil
}

// WeatherServiceMock returns fixed conditions for any city.
type WeatherServiceMock struct {
	TempC     float64
	Condition string
}

func (m WeatherServiceMock) CurrentWeather(ctx context.Context, city string) (styling.WeatherInfo, error) {
	temp := m.TempC
	return styling.WeatherInfo{City: city, TempC: &temp, Condition: m.Condition}, nil
}

// MockStylistService fakes both LLM touchpoints.
type MockStylistService struct{}

func (m MockStylistService) AnalyzeClothing(ctx context.Context, filePath string, modelName services.LLMModelName) (*services.ClothingAnalysis, error) {
	return &services.ClothingAnalysis{
		Name:        "Blue T-Shirt",
		Category:    "t-shirt",
		Color:       "blue",
		StyleTags:   []string{"casual"},
		Season:      "all-season",
		Formality:   "casual",
		Description: "A plain blue cotton t-shirt.",
	}, nil
}

func (m MockStylistService) RefineOutfits(ctx context.Context, outfits []styling.Outfit, occasion string, weather styling.WeatherProfile) error {
	for i := range outfits {
		outfits[i].AITitle = "Refined " + outfits[i].Title
		outfits[i].AIDescription = "A balanced look for the day."
		outfits[i].StylingTips = []string{"Roll the sleeves", "Add a simple watch"}
		outfits[i].SuitabilityScore = 0.9
	}
	return nil
}

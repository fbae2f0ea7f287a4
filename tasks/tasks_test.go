package tasks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vestiapi/dbhelper"
	"vestiapi/models"
	"vestiapi/services"
	"vestiapi/test"
)

type unknownStylist struct {
	test.MockStylistService
}

func (s unknownStylist) AnalyzeClothing(ctx context.Context, filePath string, modelName services.LLMModelName) (*services.ClothingAnalysis, error) {
	return &services.ClothingAnalysis{Name: "unknown"}, nil
}

func imageKeyPtr(key string) *string {
	return &key
}

func TestClothingAnalysisTaskOk(t *testing.T) {
	os.Setenv("GOOGLE_API_KEY", "test-key")
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	user := test.FakeUser(db)

	item := models.ClothingItem{
		OwnerID:          user.ID,
		Status:           "temporary",
		ImageStatus:      "uploaded",
		ProcessingStatus: "pending",
		ImageKey:         imageKeyPtr("clothes/1/test-image.jpg"),
	}
	db.Create(&item)

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("fake image bytes"))
	}))
	defer mockServer.Close()

	task, err := NewClothingAnalysisTask(item.ID)
	require.NoError(t, err)
	awsServiceMock := &test.AWSProviderMock{MockUrl: mockServer.URL}

	err = HandleClothingAnalysisTask(context.Background(), task, db, test.MockStylistService{}, awsServiceMock)
	require.NoError(t, err)

	var updated models.ClothingItem
	db.First(&updated, item.ID)
	assert.Equal(t, "in_closet", updated.Status)
	assert.Equal(t, "completed", updated.ProcessingStatus)
	assert.Equal(t, "Blue T-Shirt", updated.Name)
	assert.Equal(t, "t-shirt", updated.Category)
	assert.Equal(t, "blue", updated.Color)
	assert.Equal(t, "casual", updated.Formality)
	assert.Contains(t, updated.StyleTags, "casual")
	assert.Nil(t, updated.ProcessErrorMessage)
}

func TestClothingAnalysisTaskKeepsCustomName(t *testing.T) {
	os.Setenv("GOOGLE_API_KEY", "test-key")
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	user := test.FakeUser(db)

	item := models.ClothingItem{
		Name:             "My Favourite Tee",
		OwnerID:          user.ID,
		Status:           "temporary",
		ImageStatus:      "uploaded",
		ProcessingStatus: "pending",
		ImageKey:         imageKeyPtr("clothes/1/tee.jpg"),
	}
	db.Create(&item)

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake image bytes"))
	}))
	defer mockServer.Close()

	task, err := NewClothingAnalysisTask(item.ID)
	require.NoError(t, err)

	err = HandleClothingAnalysisTask(context.Background(), task, db, test.MockStylistService{}, &test.AWSProviderMock{MockUrl: mockServer.URL})
	require.NoError(t, err)

	var updated models.ClothingItem
	db.First(&updated, item.ID)
	assert.Equal(t, "My Favourite Tee", updated.Name)
	assert.Equal(t, "completed", updated.ProcessingStatus)
}

func TestClothingAnalysisTaskMissingImage(t *testing.T) {
	os.Setenv("GOOGLE_API_KEY", "test-key")
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	user := test.FakeUser(db)

	item := models.ClothingItem{
		OwnerID:          user.ID,
		Status:           "temporary",
		ProcessingStatus: "pending",
	}
	db.Create(&item)

	task, err := NewClothingAnalysisTask(item.ID)
	require.NoError(t, err)

	err = HandleClothingAnalysisTask(context.Background(), task, db, test.MockStylistService{}, &test.AWSProviderMock{})
	assert.Error(t, err)

	var updated models.ClothingItem
	db.First(&updated, item.ID)
	assert.Equal(t, "failed", updated.ProcessingStatus)
	require.NotNil(t, updated.ProcessErrorMessage)
	assert.Contains(t, *updated.ProcessErrorMessage, "No image uploaded")
}

func TestClothingAnalysisTaskNoClothingRecognized(t *testing.T) {
	os.Setenv("GOOGLE_API_KEY", "test-key")
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	user := test.FakeUser(db)

	item := models.ClothingItem{
		OwnerID:          user.ID,
		Status:           "temporary",
		ProcessingStatus: "pending",
		ImageKey:         imageKeyPtr("clothes/1/cat.jpg"),
	}
	db.Create(&item)

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not clothing"))
	}))
	defer mockServer.Close()

	task, err := NewClothingAnalysisTask(item.ID)
	require.NoError(t, err)

	// no clothing in the image is terminal, not retryable
	err = HandleClothingAnalysisTask(context.Background(), task, db, unknownStylist{}, &test.AWSProviderMock{MockUrl: mockServer.URL})
	assert.NoError(t, err)

	var updated models.ClothingItem
	db.First(&updated, item.ID)
	assert.Equal(t, "failed", updated.ProcessingStatus)
	require.NotNil(t, updated.ProcessErrorMessage)
	assert.Contains(t, *updated.ProcessErrorMessage, "could not recognize")
}

func TestClothingAnalysisTaskMissingAPIKey(t *testing.T) {
	os.Unsetenv("GOOGLE_API_KEY")
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()

	task, err := NewClothingAnalysisTask(1)
	require.NoError(t, err)

	err = HandleClothingAnalysisTask(context.Background(), task, db, test.MockStylistService{}, &test.AWSProviderMock{})
	assert.Error(t, err)
}

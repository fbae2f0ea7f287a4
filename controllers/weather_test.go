package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vestiapi/dbhelper"
	"vestiapi/test"
)

func TestWeatherByCity(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AWSProviderMock{}, nil, test.WeatherServiceMock{TempC: 31, Condition: "clear"}, nil, nil)
	user := test.FakeUser(db)

	req := test.NewJSONAuthRequest("GET", "/weather/Dubai", fmt.Sprint(user.ID), "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Dubai", resp["city"])
	assert.Equal(t, float64(31), resp["temp_c"])
	assert.Equal(t, "hot", resp["bucket"])
	assert.Equal(t, "31°C clear in Dubai", resp["label"])
}

func TestWeatherRequiresAuth(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, &test.AWSProviderMock{}, nil, test.WeatherServiceMock{TempC: 20}, nil, nil)

	req := httptest.NewRequest("GET", "/weather/Dubai", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

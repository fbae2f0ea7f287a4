package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vestiapi/services"
	"vestiapi/styling"
)

type WeatherController struct {
	Weather services.WeatherServiceProvider
}

func (controller *WeatherController) WeatherRoutes(g *echo.Group) {
	g.GET("/:city", func(c echo.Context) error {
		city := c.Param("city")
		if city == "" {
			return echo.ErrBadRequest
		}

		weather, err := controller.Weather.CurrentWeather(c.Request().Context(), city)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "Weather service is unavailable, please try again later"})
		}
		profile := styling.BuildWeatherProfile(weather)

		return c.JSON(http.StatusOK, echo.Map{
			"city":      weather.City,
			"temp_c":    profile.TempC,
			"condition": profile.Condition,
			"bucket":    profile.Bucket,
			"label":     profile.Label,
		})
	})
}

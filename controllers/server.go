package controllers

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"vestiapi/models"
	"vestiapi/services"
	"vestiapi/styling"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func SetupServer(
	db *gorm.DB,
	awsService services.AWSServiceProvider,
	urlCache services.URLCacheServiceProvider,
	weatherService services.WeatherServiceProvider,
	stylist services.StylistServiceProvider,
	asynqClient *asynq.Client,
) *echo.Echo {

	err := awsService.InitPresignClient(context.Background())
	if err != nil {
		log.Fatal("Failed to initialize AWS provider: S3")
	}

	e := echo.New()
	v := validator.New()
	v.RegisterValidation("platform", models.ValidatePlatform)
	e.Validator = &CustomValidator{validator: v}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__db", db)
			c.Set("__asynqclient", asynqClient)
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	var images styling.ImageResolver
	if urlCache != nil {
		images = urlCache
	}
	var enricher styling.OutfitEnricher
	if stylist != nil {
		enricher = stylist
	}
	generator := styling.NewGenerator(images, enricher)

	authGroup := e.Group("/auth")
	authController := AuthController{}
	authController.AuthRoutes(authGroup)

	clothesController := ClothesController{AWSService: awsService, URLCache: urlCache}
	clothesGroup := e.Group("/clothes", echojwt.JWT([]byte(os.Getenv("JWT_SECRET"))), UserMiddleware)
	clothesController.ClothingRoutes(clothesGroup)

	outfitsController := OutfitsController{Weather: weatherService, Generator: generator}
	outfitsGroup := e.Group("/outfits", echojwt.JWT([]byte(os.Getenv("JWT_SECRET"))), UserMiddleware)
	outfitsController.OutfitRoutes(outfitsGroup)

	weatherController := WeatherController{Weather: weatherService}
	weatherGroup := e.Group("/weather", echojwt.JWT([]byte(os.Getenv("JWT_SECRET"))), UserMiddleware)
	weatherController.WeatherRoutes(weatherGroup)

	return e
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"vestiapi/models"
)

type UserSettingsIn struct {
	Name string `json:"name" validate:"omitempty,max=100"`
	City string `json:"city" validate:"omitempty,max=100"`
}

type UserMeOut struct {
	Id           uint                `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	City         string              `json:"city"`
	Subscription models.Subscription `json:"subscription"`
}

type AuthController struct{}

func (m *AuthController) AuthRoutes(g *echo.Group) {
	// Anonymous device-bound accounts: the app works without any sign up.
	g.POST("/device", func(c echo.Context) error {
		req := new(models.DeviceAuthIn)
		if err := c.Bind(req); err != nil {
			return err
		}
		if err := c.Validate(req); err != nil {
			return err
		}

		db := c.Get("__db").(*gorm.DB)
		var user models.UserAccount
		r := db.Where("device_id = ?", req.DeviceId).Limit(1).Find(&user)
		if r.Error != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
		}
		isNew := r.RowsAffected == 0
		if isNew {
			user = models.UserAccount{
				Name:         req.Name,
				DeviceID:     req.DeviceId,
				Platform:     models.Platform(req.Platform),
				LastIp:       c.RealIP(),
				Subscription: models.Free,
			}
			if err := db.Create(&user).Error; err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
			}
			fmt.Println("New device account created:", user.ID, req.Platform)
		} else {
			if user.Banned {
				return echo.ErrForbidden
			}
			user.LastIp = c.RealIP()
			db.Save(&user)
		}

		return c.JSON(http.StatusOK, models.DeviceAuthOut{
			Id:          user.ID,
			New:         isNew,
			AccessToken: GenerateUserToken(fmt.Sprint(user.ID), c, 72),
		})
	})

	g.POST("/refresh-token", func(c echo.Context) error {
		type tokenReqBody struct {
			RefreshToken string `json:"refresh_token"`
		}
		tokenReq := new(tokenReqBody)

		if err := c.Bind(&tokenReq); err != nil {
			fmt.Println(err)
			return echo.ErrBadRequest
		}

		if tokenReq.RefreshToken == "" {
			fmt.Println("Refresh token is empty")
			return echo.ErrBadRequest
		}
		token, err := jwt.Parse(tokenReq.RefreshToken, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil {
			fmt.Println(err)
			return echo.ErrBadRequest
		}
		if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
			db := c.Get("__db").(*gorm.DB)
			data, errConvert := claims["sub"].(string)
			if !errConvert {
				fmt.Println("Cannot convert sub to string!", err)
				return echo.ErrInternalServerError
			}
			userId, err := strconv.Atoi(data)
			if err != nil {
				fmt.Println("Error parsing sub of the user!!", err)
				return echo.ErrInternalServerError
			}
			if userId < 1 {
				fmt.Println("Refresh: sub is:", userId)
				return echo.ErrBadRequest
			}
			var user *models.UserAccount
			result := db.First(&user, userId)
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				fmt.Println("Requested user not found!", userId)
				return echo.ErrForbidden
			}
			if result.Error != nil {
				fmt.Println("Error getting user while refreshing token", userId)
				return echo.ErrInternalServerError
			}
			if !user.Banned {
				t := GenerateUserToken(fmt.Sprint(userId), c, 72)
				rt, err := GenerateRefreshToken(fmt.Sprint(userId))
				if err != nil {
					fmt.Println("Error refreshing token ", err)
					return echo.ErrInternalServerError
				}

				return c.JSON(http.StatusOK, echo.Map{
					"access_token":  t,
					"refresh_token": rt,
				})
			}

			return echo.ErrUnauthorized
		}

		return err
	})

	g.GET("/me", func(c echo.Context) error {
		user := c.Get("currentUser").(models.UserAccount)
		return c.JSON(http.StatusOK, UserMeOut{
			Id:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			City:         user.City,
			Subscription: user.Subscription,
		})
	}, echojwt.JWT([]byte(os.Getenv("JWT_SECRET"))), UserMiddleware)

	g.POST("/settings", func(c echo.Context) error {
		user := c.Get("currentUser").(models.UserAccount)
		var settingsIn = new(UserSettingsIn)
		db := c.Get("__db").(*gorm.DB)
		if err := c.Bind(settingsIn); err != nil {
			return err
		}
		if err := c.Validate(settingsIn); err != nil {
			return err
		}
		if settingsIn.Name != "" {
			user.Name = settingsIn.Name
		}
		if settingsIn.City != "" {
			user.City = settingsIn.City
		}
		db.Save(&user)
		return c.JSON(http.StatusOK, settingsIn)
	}, echojwt.JWT([]byte(os.Getenv("JWT_SECRET"))), UserMiddleware)
}

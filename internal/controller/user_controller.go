package controller

import (
	"github.com/MrityunjayMaharana/Vendor-App/internal/dto"
	"github.com/MrityunjayMaharana/Vendor-App/internal/service"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/response"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}
	e.POST("/vendors/register", c.Register)
	e.POST("/vendors/login", c.Login)
	e.GET("/vendors/:id", c.GetUser)
	e.GET("/vendors", c.GetVendors)
	e.POST("/vendors/change-avatar", c.ChangeAvatar, isLoggedIn)
	e.PATCH("/vendors/edit-user", c.EditUser, isLoggedIn)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	err = c.service.Register(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "User registered successfully", nil)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) GetUser(e echo.Context) error {
	id := e.Param("id")

	respPayload, err := c.service.GetUser(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) GetVendors(e echo.Context) error {
	respPayload, err := c.service.GetVendors(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) ChangeAvatar(e echo.Context) error {
	userID, _ := utils.ExtractTokenUser(e)

	file, err := readFormFile(e, "avatar")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	respPayload, err := c.service.ChangeAvatar(e.Request().Context(), userID, file)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) EditUser(e echo.Context) error {
	userID, _ := utils.ExtractTokenUser(e)

	payload := dto.EditUserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "EditUser").Msg("")
	}

	payload.ID = userID
	respPayload, err := c.service.EditUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

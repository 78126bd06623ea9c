package controller

import (
	"io"

	"github.com/MrityunjayMaharana/Vendor-App/internal/dto"
	"github.com/MrityunjayMaharana/Vendor-App/internal/service"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/errs"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/response"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.POST("/products", c.AddProduct, isLoggedIn)
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProduct)
	e.GET("/products/categories/:category", c.GetProductsByCategory)
	e.GET("/products/vendors/:id", c.GetProductsByVendor)
	e.PATCH("/products/:id", c.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	userID, _ := utils.ExtractTokenUser(e)

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	file, err := readFormFile(e, "thumbnail")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload.VendorID = userID
	payload.Thumbnail = file

	respPayload, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", respPayload)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	respPayload, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	id := e.Param("id")

	respPayload, err := c.service.GetProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *ProductController) GetProductsByCategory(e echo.Context) error {
	category := e.Param("category")

	respPayload, err := c.service.GetProductsByCategory(e.Request().Context(), category)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *ProductController) GetProductsByVendor(e echo.Context) error {
	id := e.Param("id")

	respPayload, err := c.service.GetProductsByVendor(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	userID, _ := utils.ExtractTokenUser(e)

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	file, err := readFormFile(e, "thumbnail")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload.ID = e.Param("id")
	payload.VendorID = userID
	payload.Thumbnail = file

	respPayload, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	userID, _ := utils.ExtractTokenUser(e)
	id := e.Param("id")

	message, err := c.service.DeleteProduct(e.Request().Context(), id, userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, message, nil)
}

// readFormFile reads an optional multipart file field. An absent field
// yields a nil upload, not an error.
func readFormFile(e echo.Context, field string) (*dto.FileUpload, error) {
	fileHeader, err := e.FormFile(field)
	if err != nil {
		return nil, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "readFormFile").Msg("")
		return nil, errs.ErrInternalServer
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Error().Err(err).Str("component", "readFormFile").Msg("")
		return nil, errs.ErrInternalServer
	}

	return &dto.FileUpload{Name: fileHeader.Filename, Data: data}, nil
}

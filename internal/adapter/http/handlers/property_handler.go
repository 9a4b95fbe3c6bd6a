package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	response "propie_backend/internal/adapter/http/dto/response"
	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase"
	"propie_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PropertyHandler handles the read-only property search endpoints.

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

// SearchUnits godoc
// @Summary  Search units
// @Tags     properties
// @Produce  json
// @Param    development_id query string false "development id"
// @Param    status query string false "unit status"
// @Param    min_price query string false "decimal amount"
// @Param    max_price query string false "decimal amount"
// @Param    currency query string false "ISO currency for price filters (default EUR)"
// @Param    min_bedrooms query int false "minimum bedrooms"
// @Success  200 {array} response.UnitResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /properties [get]
func (h *PropertyHandler) SearchUnits(c *gin.Context) {
	criteria, err := parseSearchCriteria(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid search criteria", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	units, err := h.usecase.SearchUnits(c.Request.Context(), criteria)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnits(units))
}

// GetUnit godoc
// @Summary  Get a unit by id
// @Tags     properties
// @Produce  json
// @Param    id path string true "unit id"
// @Success  200 {object} response.UnitResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /properties/{id} [get]
func (h *PropertyHandler) GetUnit(c *gin.Context) {
	id := c.Param("id")

	unit, err := h.usecase.GetUnit(c.Request.Context(), id)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnit(unit))
}

func parseSearchCriteria(c *gin.Context) (entities.UnitSearchCriteria, error) {
	criteria := entities.UnitSearchCriteria{
		DevelopmentID: c.Query("development_id"),
		Status:        entities.UnitStatus(c.Query("status")),
	}

	currency := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("currency", "EUR")))
	if v := c.Query("min_price"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return entities.UnitSearchCriteria{}, err
		}
		m := entities.NewMonetaryAmount(amount, currency)
		criteria.MinPrice = &m
	}
	if v := c.Query("max_price"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return entities.UnitSearchCriteria{}, err
		}
		m := entities.NewMonetaryAmount(amount, currency)
		criteria.MaxPrice = &m
	}
	if v := c.Query("min_bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return entities.UnitSearchCriteria{}, err
		}
		criteria.MinBedrooms = n
	}
	return criteria, nil
}

func mapPropertyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSearchCriteria):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid search criteria", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnitNotFound):
		return pkg.NewDomainErrorSimple("UNIT_NOT_FOUND", "Unit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/http/response"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiscountHandler holds dependencies for discount-related handlers.
type DiscountHandler struct {
	uc     usecase.DiscountUsecase
	logger *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler, injected by Fx.
func NewDiscountHandler(uc usecase.DiscountUsecase, logger *slog.Logger) *DiscountHandler {
	return &DiscountHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterProductDiscount handles registering a product-targeted discount.
func (h *DiscountHandler) RegisterProductDiscount(c echo.Context) error {
	var input *usecase.RegisterProductDiscountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	discount, err := h.uc.RegisterProductDiscount(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, discount, "Discount registered successfully")
}

// RegisterCategoryDiscount handles registering a category-subtree discount.
func (h *DiscountHandler) RegisterCategoryDiscount(c echo.Context) error {
	var input *usecase.RegisterCategoryDiscountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	discount, err := h.uc.RegisterCategoryDiscount(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, discount, "Discount registered successfully")
}

// RegisterPromoCode handles registering a checkout promo code.
func (h *DiscountHandler) RegisterPromoCode(c echo.Context) error {
	var input *usecase.RegisterPromoCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promo code input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	promo, err := h.uc.RegisterPromoCode(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promo, "Promo code registered successfully")
}

// GetDiscount handles fetching a single discount by id.
func (h *DiscountHandler) GetDiscount(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid discount id")
	}

	discount, err := h.uc.GetDiscount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, discount, "")
}

// ListDiscounts handles paginated discount listing.
func (h *DiscountHandler) ListDiscounts(c echo.Context) error {
	page, pageSize := pageParams(c)

	result, err := h.uc.ListDiscounts(c.Request().Context(), page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// SearchDiscounts handles description substring search over discounts.
func (h *DiscountHandler) SearchDiscounts(c echo.Context) error {
	query := c.QueryParam("q")
	page, pageSize := pageParams(c)

	result, err := h.uc.SearchDiscounts(c.Request().Context(), query, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetPromoCode handles resolving a promo code discount by its code.
func (h *DiscountHandler) GetPromoCode(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid promo code")
	}

	promo, err := h.uc.FindPromoCode(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promo, "")
}

// DeleteDiscount handles removing a discount and reversing its price effect.
func (h *DiscountHandler) DeleteDiscount(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid discount id")
	}

	if err := h.uc.DeleteDiscount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Discount deleted successfully")
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/api/metrics"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service  ports.CatalogService
	activity ActivityRecorder
}

func NewProductHandler(service ports.CatalogService, activity ActivityRecorder) *ProductHandler {
	return &ProductHandler{service: service, activity: activity}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Exact category filter"
// @Param        search    query     string  false  "Substring match on title or description"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Items per page (default 20, max 100)"
// @Success      200       {object}  listProductsResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Products:   result.Products,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products. The seller is always the authenticated
// caller; there is no way to list on behalf of another account.
//
// @Summary      Create a product listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Listing details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sellerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		PricePerKg:  req.PricePerKg,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()
	h.activity.Record(ports.ActivityInput{
		Kind:      domain.ActivityProductCreated,
		ActorID:   sellerID,
		Subject:   product.ID,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, product)
}

package browser

import (
	"asset-catalog/core/catalog"
	"asset-catalog/core/logger"
	"asset-catalog/core/provider"
	"asset-catalog/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog browser.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the browser routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/categories", h.HandleListCategories)
	group.Post("/query", h.HandleQuery)
	// asset and asset data IDs contain slashes, the routes are wildcards
	group.Get("/assets/*", h.HandleGetAsset)
	group.Get("/asset-data/*", h.HandleGetAssetData)
	group.Get("/files", h.HandleMaterializeFile)
	group.Get("/knowledge", h.HandleKnowledge)
}

// HandleListCategories lists categories under a parent.
// Query params: parent (default "/"), recursive (default false).
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	parent := c.Query("parent", string(catalog.RootCategoryID))
	recursive := utils.ToBool(c.Query("recursive", "false"))

	parentID := provider.GetCategoryIDSafe(h.service.catalog, catalog.CategoryID(parent))
	categories := h.service.ListCategories(parentID, recursive)

	ret := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		ret = append(ret, NewCategoryResponse(category))
	}
	return c.JSON(fiber.Map{"parent": string(parentID), "categories": ret})
}

// HandleQuery runs a catalog query built from the request body.
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var request QueryRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}
	q, err := request.ToQuery()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	view := h.service.Query(q)
	l.Debug("catalog query served",
		zap.String("query", q.String()),
		zap.Int("assets", len(view.Assets)),
	)

	assets := make([]AssetResponse, 0, len(view.Assets))
	for _, asset := range view.Assets {
		assets = append(assets, NewAssetResponse(asset))
	}
	return c.JSON(QueryResponse{
		Assets:         assets,
		ParametersMeta: NewParametersMetaResponse(view.ParametersMeta),
		Count:          len(assets),
	})
}

// HandleGetAsset returns one asset with the IDs of its data records. The
// asset ID is the whole path after /assets, e.g. /catalog/assets/pack/Couch
// serves the asset "/pack/Couch".
func (h *Handler) HandleGetAsset(c *fiber.Ctx) error {
	id := catalog.AssetID("/" + c.Params("*"))
	asset := h.service.GetAsset(id)
	if asset == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "asset not found",
		})
	}

	response := NewAssetResponse(asset)
	for _, dataID := range h.service.ListAssetDataIDs(id) {
		response.DataIDs = append(response.DataIDs, string(dataID))
	}
	return c.JSON(response)
}

// HandleGetAssetData returns one asset data record, addressed the same way as
// assets.
func (h *Handler) HandleGetAssetData(c *fiber.Ctx) error {
	id := catalog.AssetDataID("/" + c.Params("*"))
	data := h.service.GetAssetData(id)
	if data == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "asset data not found",
		})
	}
	return c.JSON(NewAssetDataResponse(data))
}

// HandleMaterializeFile resolves a file ID (or basename) to a local path.
// The ID goes into the "id" query param because file IDs contain slashes.
func (h *Handler) HandleMaterializeFile(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing id query parameter",
		})
	}

	l := logger.WithRayID(h.service.logger, c)
	path, err := h.service.MaterializeFile(c.Context(), id)
	if err != nil {
		l.Error("file materialization failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if path == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "file not found",
		})
	}
	return c.JSON(fiber.Map{"id": id, "path": path})
}

// HandleKnowledge returns the static knowledge table about tags and
// parameters, for building filter interfaces.
func (h *Handler) HandleKnowledge(c *fiber.Ctx) error {
	return c.JSON(KnowledgeResponse{
		Tags:               catalog.KnownTags,
		NumericParameters:  catalog.KnownNumericParameters,
		TextParameters:     catalog.KnownTextParameters,
		VectorParameters:   catalog.KnownVectorParameters,
		LocationParameters: catalog.KnownLocationParameters,
		Grouping:           catalog.ParameterGrouping,
	})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/dto"
	"github.com/fintrackr/personal_finance_app/internal/middleware"
)

// assetHandler handles HTTP requests related to assets and asset categories.
type assetHandler struct {
	assetService portssvc.AssetSvc
}

// RegisterAssetRoutes registers routes related to assets and asset categories.
func RegisterAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvc) {
	h := &assetHandler{assetService: assetService}

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/total", h.totalAssets)
		assets.GET("/:id", h.getAsset)
		assets.PUT("/:id", h.updateAsset)
		assets.DELETE("/:id", h.deleteAsset)
		assets.POST("/:id/duplicate", h.duplicateAsset)
	}

	assetCategories := rg.Group("/asset-categories")
	{
		assetCategories.POST("", h.createAssetCategory)
		assetCategories.GET("", h.listAssetCategories)
		assetCategories.GET("/:id", h.getAssetCategory)
		assetCategories.PUT("/:id", h.updateAssetCategory)
		assetCategories.DELETE("/:id", h.deleteAssetCategory)
	}
}

func (h *assetHandler) createAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create asset")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Asset created", slog.String("asset_id", asset.ID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

func (h *assetHandler) listAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list assets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}

func (h *assetHandler) totalAssets(c *gin.Context) {
	total, err := h.assetService.TotalAssets(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to total assets")
		return
	}
	c.JSON(http.StatusOK, dto.TotalAssetsResponse{TotalAssets: total})
}

func (h *assetHandler) getAsset(c *gin.Context) {
	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

func (h *assetHandler) updateAsset(c *gin.Context) {
	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

func (h *assetHandler) deleteAsset(c *gin.Context) {
	if err := h.assetService.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete asset")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *assetHandler) duplicateAsset(c *gin.Context) {
	asset, err := h.assetService.DuplicateAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to duplicate asset")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

func (h *assetHandler) createAssetCategory(c *gin.Context) {
	var req dto.CreateAssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.assetService.CreateAssetCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create asset category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssetCategoryResponse(category))
}

func (h *assetHandler) listAssetCategories(c *gin.Context) {
	categories, err := h.assetService.ListAssetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list asset categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssetCategoryResponse(categories))
}

func (h *assetHandler) getAssetCategory(c *gin.Context) {
	category, err := h.assetService.GetAssetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve asset category")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetCategoryResponse(category))
}

func (h *assetHandler) updateAssetCategory(c *gin.Context) {
	var req dto.UpdateAssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.assetService.UpdateAssetCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update asset category")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetCategoryResponse(category))
}

func (h *assetHandler) deleteAssetCategory(c *gin.Context) {
	if err := h.assetService.DeleteAssetCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete asset category")
		return
	}
	c.Status(http.StatusNoContent)
}

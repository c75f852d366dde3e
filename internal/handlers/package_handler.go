package handlers

import (
	"net/http"

	"logistik_backend/internal/services"
	"logistik_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	*BaseHandler
	packageService services.PackageService
}

func NewPackageHandler(base *BaseHandler, packageService services.PackageService) *PackageHandler {
	return &PackageHandler{
		BaseHandler:    base,
		packageService: packageService,
	}
}

// RegisterRoutes mounts the /packages endpoints. Fetch by id is public:
// anyone holding a package id may look it up, which is the tracking use
// case. Creation and submission require authentication.
func (h *PackageHandler) RegisterRoutes(api *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	packages := api.Group("/packages")
	{
		packages.POST("", authMiddleware, h.CreatePackage)
		packages.GET("/:packageId", h.FindPackage)
		packages.PUT("/:packageId/submit", authMiddleware, h.SubmitPackage)
	}
}

func (h *PackageHandler) CreatePackage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pkg, err := h.packageService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, pkg, "package created")
}

func (h *PackageHandler) FindPackage(c *gin.Context) {
	packageID := c.Param("packageId")

	pkg, err := h.packageService.FindByID(packageID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, pkg, "package fetched")
}

func (h *PackageHandler) SubmitPackage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	packageID := c.Param("packageId")

	pkg, err := h.packageService.Submit(packageID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, pkg, "package is being processed for delivery")
}

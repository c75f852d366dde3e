package handlers

import (
	"net/http"

	"logistik_backend/internal/services"
	"logistik_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService    services.UserService
	packageService services.PackageService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, packageService services.PackageService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		userService:    userService,
		packageService: packageService,
	}
}

// RegisterRoutes mounts the authenticated /users/me endpoints.
func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	me := api.Group("/users/me")
	me.Use(authMiddleware)
	{
		me.GET("", h.GetMe)
		me.PUT("", h.UpdateMe)
		me.POST("/logout", h.Logout)
		me.GET("/packages", h.GetMyPackages)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, user, "profile fetched")
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, user, "profile updated")
}

func (h *UserHandler) Logout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.Logout(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, nil, "account logged out")
}

func (h *UserHandler) GetMyPackages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.PackagesPageQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	page := query.Page
	if page < 1 {
		page = 1
	}

	pageResult, err := h.packageService.ListForUser(userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "packages fetched"
	if len(pageResult.Data) == 0 {
		message = "no package found"
	}

	h.Success(c, http.StatusOK, pageResult, message)
}

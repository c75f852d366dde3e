package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"logistik_backend/internal/middleware"
	"logistik_backend/internal/models"
	"logistik_backend/internal/services"
	"logistik_backend/internal/services/dto"
	"logistik_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Fake services returning canned results; err wins when set.

type fakeAuthService struct {
	user        *dto.UserResponse
	login       *dto.LoginResponse
	accessToken string
	err         error

	lastResetCode string
}

func (s *fakeAuthService) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *fakeAuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.login, s.err
}

func (s *fakeAuthService) ForgotPassword(email string) error { return s.err }

func (s *fakeAuthService) VerifyResetToken(code string) error {
	s.lastResetCode = code
	return s.err
}

func (s *fakeAuthService) ResetPassword(code, newPassword string) error {
	s.lastResetCode = code
	return s.err
}

func (s *fakeAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	return s.accessToken, s.err
}

type fakeUserService struct {
	user *dto.UserResponse
	err  error
}

func (s *fakeUserService) GetProfile(userID string) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *fakeUserService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *fakeUserService) Logout(userID string) error { return s.err }

type fakePackageService struct {
	pkg  *models.Package
	page *dto.PackagesPage
	err  error

	lastOwnerID string
}

func (s *fakePackageService) Create(userID string, req *dto.CreatePackageRequest) (*models.Package, error) {
	s.lastOwnerID = userID
	return s.pkg, s.err
}

func (s *fakePackageService) FindByID(id string) (*models.Package, error) {
	return s.pkg, s.err
}

func (s *fakePackageService) Submit(packageID, ownerID string) (*models.Package, error) {
	s.lastOwnerID = ownerID
	return s.pkg, s.err
}

func (s *fakePackageService) ListForUser(userID string, page int) (*dto.PackagesPage, error) {
	return s.page, s.err
}

// stubAuth injects an authenticated user the way the real middleware does.
func stubAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

type testServices struct {
	auth     *fakeAuthService
	users    *fakeUserService
	packages *fakePackageService
}

func newTestRouter(t *testing.T, svcs testServices, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var authSvc services.AuthService = svcs.auth
	var userSvc services.UserService = svcs.users
	var pkgSvc services.PackageService = svcs.packages
	if svcs.auth == nil {
		authSvc = &fakeAuthService{}
	}
	if svcs.users == nil {
		userSvc = &fakeUserService{}
	}
	if svcs.packages == nil {
		pkgSvc = &fakePackageService{}
	}

	base := NewBaseHandler(validator.New())

	router := gin.New()
	api := router.Group("/api")
	NewAuthHandler(base, authSvc).RegisterRoutes(api)
	NewUserHandler(base, userSvc, pkgSvc).RegisterRoutes(api, stubAuth(userID))
	NewPackageHandler(base, pkgSvc).RegisterRoutes(api, stubAuth(userID))
	router.NoRoute(middleware.NoRouteHandler())

	return router
}

// envelope mirrors both response shapes for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

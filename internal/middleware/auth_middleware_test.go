package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/coursedesk/coursedesk/internal/database/models"
	"github.com/coursedesk/coursedesk/internal/database/service"
	"github.com/coursedesk/coursedesk/internal/middleware"
	"github.com/coursedesk/coursedesk/internal/testutil"
)

func setupAuthRouter(userService *testutil.MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	authMiddleware := middleware.NewAuthMiddleware(userService, testutil.Logger())

	r := gin.New()
	r.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": user.ID})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name        string
		setRequest  func(*http.Request)
		setupMocks  func(*testutil.MockUserService)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			setRequest:  func(r *http.Request) {},
			setupMocks:  func(m *testutil.MockUserService) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access Denied",
		},
		{
			name: "wrong scheme",
			setRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer some-token")
			},
			setupMocks:  func(m *testutil.MockUserService) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access Denied",
		},
		{
			name: "bad credentials",
			setRequest: func(r *http.Request) {
				r.SetBasicAuth("joe@smith.com", "wrong")
			},
			setupMocks: func(m *testutil.MockUserService) {
				m.On("Authenticate", mock.Anything, "joe@smith.com", "wrong").
					Return(nil, service.ErrInvalidCredentials)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access Denied",
		},
		{
			name: "valid credentials attach the user",
			setRequest: func(r *http.Request) {
				r.SetBasicAuth("joe@smith.com", "joepassword")
			},
			setupMocks: func(m *testutil.MockUserService) {
				m.On("Authenticate", mock.Anything, "joe@smith.com", "joepassword").
					Return(&models.User{ID: 7, EmailAddress: "joe@smith.com"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userService := new(testutil.MockUserService)
			tt.setupMocks(userService)
			router := setupAuthRouter(userService)

			req, _ := http.NewRequest("GET", "/protected", nil)
			tt.setRequest(req)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Contains(t, w.Body.String(), tt.wantMessage)
			}
			userService.AssertExpectations(t)
		})
	}
}

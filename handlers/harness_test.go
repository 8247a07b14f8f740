package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nmapp/checkbackend/handlers"
	"github.com/nmapp/checkbackend/models"
	"github.com/nmapp/checkbackend/repository"
	"github.com/nmapp/checkbackend/routes"
)

// setup builds a router over an in-memory sqlite store, one database per test.
func setup(t *testing.T) (*gin.Engine, repository.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.DownloadHistory{}))

	store := repository.NewGormStore(db)
	router := gin.New()
	routes.Register(router, handlers.New(store))
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, router *gin.Engine, username, email string) map[string]any {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/register/", gin.H{
		"first_name":       "Test",
		"last_name":        "User",
		"username":         username,
		"email":            email,
		"password":         "s3cret-pass",
		"confirm_password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)
}

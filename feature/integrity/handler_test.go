package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"param-host/core/database"
	"param-host/core/storage/mocks"
	"param-host/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func setupTestApp(t *testing.T, db *gorm.DB, shape ShapeSource) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "parameters", zap.NewNop(), db, shape)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func decode(t *testing.T, app *fiber.App, method, target string) (int, map[string]any) {
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil, nil)

	mockClient.On("BucketExists", mock.Anything, "parameters").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "parameters", mock.Anything).Return(mocks.Objects())

	status, body := decode(t, app, "GET", "/integrity/structure")
	assert.Equal(t, 200, status)
	assert.Equal(t, "checked", body["status"])
	assert.Len(t, body["missing"], 2)
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t, nil, nil)

	mockClient.On("BucketExists", mock.Anything, "parameters").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "parameters", mock.Anything).Return(mocks.Objects())
	mockClient.On("PutObject", mock.Anything, "parameters", mock.Anything, mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	status, body := decode(t, app, "GET", "/integrity/structure?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestHandleStructureCheck_BucketMissing(t *testing.T) {
	app, mockClient := setupTestApp(t, nil, nil)
	mockClient.On("BucketExists", mock.Anything, "parameters").Return(false, nil)

	status, body := decode(t, app, "GET", "/integrity/structure")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "does not exist")
}

func TestHandleDocumentsCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil, nil)

	mockClient.On("ListObjects", mock.Anything, "parameters", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Key: "documents/rig.yaml"}))
	mockClient.On("GetObject", mock.Anything, "parameters", "documents/rig.yaml", mock.Anything).
		Return(mocks.Body(rigDoc), nil)

	status, body := decode(t, app, "GET", "/integrity/documents")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, []any{"documents/rig.yaml"}, body["valid"])
}

func TestHandleSchemaCheck(t *testing.T) {
	t.Run("Migrated", func(t *testing.T) {
		db := setupSQLite(t)
		require.NoError(t, snapshot.NewStore(db, nil).Migrate())
		app, _ := setupTestApp(t, db, nil)

		status, body := decode(t, app, "GET", "/integrity/schema")
		assert.Equal(t, 200, status)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, true, body["exists"])
	})

	t.Run("No Database", func(t *testing.T) {
		app, _ := setupTestApp(t, nil, nil)

		status, _ := decode(t, app, "GET", "/integrity/schema")
		assert.Equal(t, 503, status)
	})
}

func TestHandleShapeCheck(t *testing.T) {
	app, _ := setupTestApp(t, nil, openSession(t))

	status, body := decode(t, app, "GET", "/integrity/shape")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, []any{"color"}, body["unadapted"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil, openSession(t))

	mockClient.On("BucketExists", mock.Anything, "parameters").Return(false, nil)
	mockClient.On("ListObjects", mock.Anything, "parameters", mock.Anything).Return(mocks.Objects())

	status, body := decode(t, app, "GET", "/integrity")
	assert.Equal(t, 200, status)

	for _, key := range []string{"structure", "documents", "schema", "shape"} {
		require.Contains(t, body, key)
	}
	assert.Equal(t, "error", body["structure"].(map[string]any)["status"])
	assert.Equal(t, "ok", body["documents"].(map[string]any)["status"])
	assert.Equal(t, "error", body["schema"].(map[string]any)["status"])
	assert.Equal(t, "ok", body["shape"].(map[string]any)["status"])
}

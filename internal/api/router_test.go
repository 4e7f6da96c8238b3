package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroview/groundtruth-backend-go/internal/config"
	"github.com/agroview/groundtruth-backend-go/internal/service"
	"github.com/agroview/groundtruth-backend-go/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	cfg := &config.Config{
		Port:           ":0",
		JWTSecret:      "test-secret",
		BatchSize:      10,
		MaxUploadBytes: 10 << 20,
		SessionTTL:     time.Hour,
		RateLimit:      10000,
		RateWindow:     time.Minute,
	}
	manager := session.NewManager(cfg.BatchSize, 0)
	return SetupRouter(cfg, service.NewSessionService(manager, cfg))
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return do(t, r, method, path, token, bytes.NewBuffer(data), "application/json")
}

// validatorCSV is a 25 point dataset plus one duplicate coordinate row.
// Serials 2, 9, 14 and 23 are Rice.
func validatorCSV() string {
	rice := map[int]bool{2: true, 9: true, 14: true, 23: true}
	var b strings.Builder
	b.WriteString("latitude,longitude,crop_name\n")
	for i := 0; i < 25; i++ {
		crop := "Wheat"
		if rice[i+1] {
			crop = "Rice"
		}
		fmt.Fprintf(&b, "%f,%f,%s\n", 10.0+float64(i)*0.01, 78.0+float64(i)*0.01, crop)
	}
	b.WriteString("10.000000,78.000000,Wheat\n") // duplicate of the first point
	return b.String()
}

func uploadCSV(t *testing.T, r *gin.Engine, token, csvBody string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", "points.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return do(t, r, http.MethodPost, "/api/v1/sessions/data", token, &buf, mw.FormDataContentType())
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, env := do(t, r, http.MethodPost, "/api/v1/sessions", "", nil, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		SessionID string `json:"sessionId"`
		Token     string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w, _ := do(t, r, http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	r := newTestRouter()

	w, _ := do(t, r, http.MethodGet, "/api/v1/batch", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/batch", "bogus-token", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidationWorkflow(t *testing.T) {
	r := newTestRouter()
	token := createSession(t, r)

	// Upload reports the dedup.
	w, env := uploadCSV(t, r, token, validatorCSV())
	require.Equal(t, http.StatusOK, w.Code)
	var load struct {
		TotalPoints       int      `json:"totalPoints"`
		DuplicatesRemoved int      `json:"duplicatesRemoved"`
		Categories        []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &load))
	assert.Equal(t, 25, load.TotalPoints)
	assert.Equal(t, 1, load.DuplicatesRemoved)
	assert.Equal(t, []string{"Rice", "Wheat"}, load.Categories)

	// First batch of 10, cursor at origin.
	w, env = do(t, r, http.MethodGet, "/api/v1/batch", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var batch struct {
		Records []struct {
			SerialID int64 `json:"serialId"`
		} `json:"records"`
		TotalBatches int                        `json:"totalBatches"`
		Cursor       struct{ Batch, Point int } `json:"cursor"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &batch))
	assert.Len(t, batch.Records, 10)
	assert.Equal(t, 3, batch.TotalBatches)

	// Jump to the record at view position 17.
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/navigate", token,
		map[string]interface{}{"action": "jump_to_id", "serialId": 18})
	require.Equal(t, http.StatusOK, w.Code)
	var nav struct {
		Cursor struct{ Batch, Point int } `json:"cursor"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &nav))
	assert.Equal(t, 1, nav.Cursor.Batch)
	assert.Equal(t, 7, nav.Cursor.Point)

	// Validate the current point: advances to (1,8).
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/validate", token,
		map[string]interface{}{"target": "current", "status": "Correct"})
	require.Equal(t, http.StatusOK, w.Code)
	var validated struct {
		Count  int                        `json:"count"`
		Cursor struct{ Batch, Point int } `json:"cursor"`
		Done   bool                       `json:"done"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &validated))
	assert.Equal(t, 1, validated.Count)
	assert.Equal(t, 8, validated.Cursor.Point)
	assert.False(t, validated.Done)

	// Serial 18 no longer shows up as outstanding work.
	w, env = do(t, r, http.MethodGet, "/api/v1/non-validated", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), `"serialId":18,`)

	// Filtering to Rice rebatches to a single 4 point batch.
	w, env = doJSON(t, r, http.MethodPut, "/api/v1/filter", token,
		map[string]interface{}{"category": "Rice"})
	require.Equal(t, http.StatusOK, w.Code)
	var filtered struct {
		TotalBatches int                        `json:"totalBatches"`
		TotalPoints  int                        `json:"totalPoints"`
		Cursor       struct{ Batch, Point int } `json:"cursor"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &filtered))
	assert.Equal(t, 1, filtered.TotalBatches)
	assert.Equal(t, 4, filtered.TotalPoints)
	assert.Equal(t, 0, filtered.Cursor.Batch)
	assert.Equal(t, 0, filtered.Cursor.Point)

	// Export always reads the full store.
	w, _ = do(t, r, http.MethodGet, "/api/v1/export?category=All", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 26) // header + 25 rows
	assert.Equal(t, "S_No,crop_name,latitude,longitude,validation", lines[0])
	assert.Contains(t, w.Body.String(), "Correct")
}

func TestUploadFailureKeepsPriorDataset(t *testing.T) {
	r := newTestRouter()
	token := createSession(t, r)

	w, _ := uploadCSV(t, r, token, validatorCSV())
	require.Equal(t, http.StatusOK, w.Code)

	// A bad upload is rejected...
	w, _ = uploadCSV(t, r, token, "lat,lon\n1,2\n")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// ...and the previous dataset is still being served.
	w, env := do(t, r, http.MethodGet, "/api/v1/batch", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var batch struct {
		TotalPoints int `json:"totalPoints"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &batch))
	assert.Equal(t, 25, batch.TotalPoints)
}

func TestSelectionEndpoint(t *testing.T) {
	r := newTestRouter()
	token := createSession(t, r)

	w, _ := uploadCSV(t, r, token, validatorCSV())
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/selection", token,
		map[string]interface{}{"vertices": [][2]float64{{77, 9}, {80, 9}, {80, 12}, {77, 12}}})
	require.Equal(t, http.StatusOK, w.Code)

	var sel struct {
		SerialIDs []int64 `json:"serialIds"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sel))
	assert.Len(t, sel.SerialIDs, 10) // current batch only

	// Bulk validate the selection.
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/validate", token,
		map[string]interface{}{"target": "bulk", "status": "Incorrect", "serialIds": sel.SerialIDs})
	require.Equal(t, http.StatusOK, w.Code)
	var validated struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &validated))
	assert.Equal(t, 10, validated.Count)
}

func TestDeleteSession(t *testing.T) {
	r := newTestRouter()
	token := createSession(t, r)

	w, _ := do(t, r, http.MethodDelete, "/api/v1/sessions", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The token is still valid JWT-wise, but the session is gone.
	w, _ = do(t, r, http.MethodGet, "/api/v1/batch", token, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateRejectsBadStatus(t *testing.T) {
	r := newTestRouter()
	token := createSession(t, r)

	w, _ := uploadCSV(t, r, token, validatorCSV())
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/validate", token,
		map[string]interface{}{"target": "current", "status": "Maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateUnknownSerialIs404(t *testing.T) {
	r := newTestRouter()
	token := createSession(t, r)

	w, _ := uploadCSV(t, r, token, validatorCSV())
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/validate", token,
		map[string]interface{}{"target": "id", "status": "Correct", "serialId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

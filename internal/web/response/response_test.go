package response

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	SuccessResponse(c, gin.H{"status": "ok"})

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(http.StatusOK), body["code"])
	assert.Equal(t, map[string]any{"status": "ok"}, body["extras"])
}

func TestError_NegotiatesFormat(t *testing.T) {
	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("error.html").Parse(`{{.Code}}: {{.Message}}`)))
	engine.GET("/", func(c *gin.Context) {
		Error(c, http.StatusNotFound, "Cottage not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, map[string]any{"message": "Cottage not found"}, body.Extras)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404: Cottage not found", rec.Body.String())
}

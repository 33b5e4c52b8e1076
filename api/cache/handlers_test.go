package cache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/internal/converter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(deps *types.Dependencies) *gin.Engine {
	router := gin.New()
	group := router.Group("/api/v1/cache")
	RegisterRoutes(group, deps)
	return router
}

// convertOne runs a single file through the converter so the cache has an entry
func convertOne(t *testing.T, conv *converter.BatchConverter) (string, string) {
	t.Helper()

	dir := t.TempDir()
	src := filepath.Join(dir, "song.m4a")
	require.NoError(t, os.WriteFile(src, []byte("m4a data"), 0644))
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0755))

	batchID, err := conv.Submit([]string{src}, outDir)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		status, err := conv.BatchStatus(batchID)
		return err == nil && status.Finished
	}, 2*time.Second, 10*time.Millisecond)

	out, ok := conv.CachedOutput(src)
	require.True(t, ok)
	return src, out
}

func startConverter(t *testing.T) *converter.BatchConverter {
	t.Helper()
	conv := converter.New(converter.TranscoderFunc(func(ctx context.Context, src, dst string) error {
		return os.WriteFile(dst, []byte("RIFF"), 0644)
	}))
	conv.Start(context.Background())
	t.Cleanup(conv.Stop)
	return conv
}

func TestGet_ReturnsCacheContents(t *testing.T) {
	conv := startConverter(t)
	src, out := convertOne(t, conv)

	router := newTestRouter(&types.Dependencies{Converter: conv})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cache", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.CacheResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, out, resp.Files[src])
}

func TestDelete_EvictsEntry(t *testing.T) {
	conv := startConverter(t)
	src, _ := convertOne(t, conv)

	router := newTestRouter(&types.Dependencies{Converter: conv})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cache?source="+src, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	_, ok := conv.CachedOutput(src)
	assert.False(t, ok)
}

func TestDelete_MissingParam(t *testing.T) {
	router := newTestRouter(&types.Dependencies{Converter: startConverter(t)})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cache", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_UnknownSource(t *testing.T) {
	router := newTestRouter(&types.Dependencies{Converter: startConverter(t)})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cache?source=/no/such.m4a", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

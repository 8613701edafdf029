package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
	"github.com/tpgillam/cuneifyplus/internal/core/services"
)

func testRenderer() *services.CuneifyService {
	signs := map[string]string{
		"lugal": "𒈗",
		"a":     "𒀀",
		"ni":    "𒉌",
	}
	return services.NewCuneifyService(driven.ConverterFunc(
		func(_ context.Context, sign string) (string, error) {
			if glyph, ok := signs[sign]; ok {
				return glyph, nil
			}
			return "", fmt.Errorf("%s: %w", sign, domain.ErrUnrecognisedSign)
		}))
}

func doRequest(t *testing.T, srv *Server, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

// TestServer_Cuneify tests a plain conversion request
func TestServer_Cuneify(t *testing.T) {
	srv := NewServer(0, testRenderer())

	rec := doRequest(t, srv, http.MethodPost, "/cuneify", "lugal-a-ni\n", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "𒈗 𒀀 𒉌\n", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Empty(t, rec.Header().Values("X-Unrecognised-Sign"))
}

// TestServer_Cuneify_Form tests a form submission
func TestServer_Cuneify_Form(t *testing.T) {
	srv := NewServer(0, testRenderer())

	header := http.Header{"Content-Type": []string{"application/x-www-form-urlencoded"}}
	rec := doRequest(t, srv, http.MethodPost, "/cuneify", "text=lugal", header)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "𒈗\n", rec.Body.String())
}

// TestServer_Cuneify_ATF tests ATF mode via query parameter
func TestServer_Cuneify_ATF(t *testing.T) {
	srv := NewServer(0, testRenderer())

	rec := doRequest(t, srv, http.MethodPost, "/cuneify?atf=1", "1. lugal\n", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1. lugal\n# 𒈗\n", rec.Body.String())
}

// TestServer_Cuneify_UnrecognisedHeader tests the warning headers and
// the indicator override
func TestServer_Cuneify_UnrecognisedHeader(t *testing.T) {
	srv := NewServer(0, testRenderer())

	rec := doRequest(t, srv, http.MethodPost, "/cuneify?unrecognised=*", "lugal-zz\n", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "𒈗 *\n", rec.Body.String())
	assert.Equal(t, []string{"zz"}, rec.Header().Values("X-Unrecognised-Sign"))
}

// TestServer_Cuneify_InvalidEncoding tests that non-UTF-8 input is a
// client error
func TestServer_Cuneify_InvalidEncoding(t *testing.T) {
	srv := NewServer(0, testRenderer())

	rec := doRequest(t, srv, http.MethodPost, "/cuneify", "lugal\xff\n", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestServer_Cuneify_ConverterUnavailable tests the 503 mapping
func TestServer_Cuneify_ConverterUnavailable(t *testing.T) {
	renderer := services.NewCuneifyService(driven.ConverterFunc(
		func(_ context.Context, _ string) (string, error) {
			return "", domain.ErrConverterUnavailable
		}))
	srv := NewServer(0, renderer)

	rec := doRequest(t, srv, http.MethodPost, "/cuneify", "lugal\n", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// TestServer_Cuneify_MethodNotAllowed tests the route method pattern
func TestServer_Cuneify_MethodNotAllowed(t *testing.T) {
	srv := NewServer(0, testRenderer())

	rec := doRequest(t, srv, http.MethodGet, "/cuneify", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestServer_Healthz tests liveness
func TestServer_Healthz(t *testing.T) {
	srv := NewServer(0, testRenderer())

	rec := doRequest(t, srv, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

// TestServer_StartStop tests the listener lifecycle on a random port
func TestServer_StartStop(t *testing.T) {
	srv := NewServer(0, testRenderer())

	require.NoError(t, srv.Start())
	defer srv.Stop()

	port := srv.Port()
	require.NotZero(t, port)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/healthz", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Stop())
}

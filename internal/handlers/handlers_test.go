package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/swatchbook/internal/models"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	images := fstest.MapFS{
		"Styles/Modern/Swatches/a_1.jpg":          {Data: []byte("swatch-a")},
		"Styles/Modern/Swatches/b_2.jpg":          {Data: []byte("swatch-b")},
		"Styles/Modern/Rooms/a_1_room.jpg":        {Data: []byte("room-a")},
		"Styles/Warm Tones/Swatches/Oak_Grain.png": {Data: []byte("oak")},
	}
	public := fstest.MapFS{
		"index.html": {Data: []byte("<!doctype html><title>swatchbook</title>")},
		"app.js":     {Data: []byte("console.log('app')")},
	}

	ts := httptest.NewServer(New(images, public).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func post(t *testing.T, url, payload string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHandleSets(t *testing.T) {
	ts := newServer(t)

	resp, body := get(t, ts.URL+"/api/sets")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	var sets []string
	require.NoError(t, json.Unmarshal(body, &sets))
	assert.Equal(t, []string{"Modern", "Warm Tones"}, sets)
}

func TestHandleSetsWithoutStyles(t *testing.T) {
	ts := httptest.NewServer(New(fstest.MapFS{}, fstest.MapFS{}).Routes())
	defer ts.Close()

	resp, body := get(t, ts.URL+"/api/sets")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHandleSetImages(t *testing.T) {
	ts := newServer(t)

	resp, body := get(t, ts.URL+"/api/sets/Modern/images")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"name": "a_1.jpg", "swatch": "/images/Styles/Modern/Swatches/a_1.jpg", "room": "/images/Styles/Modern/Rooms/a_1_room.jpg"},
		{"name": "b_2.jpg", "swatch": "/images/Styles/Modern/Swatches/b_2.jpg", "room": "/images/Styles/Modern/Swatches/b_2.jpg"}
	]`, string(body))
}

func TestHandleSetImagesDecodesSetName(t *testing.T) {
	ts := newServer(t)

	resp, body := get(t, ts.URL+"/api/sets/Warm%20Tones/images")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var images []models.Image
	require.NoError(t, json.Unmarshal(body, &images))
	require.Len(t, images, 1)
	assert.Equal(t, "Oak_Grain.png", images[0].Name)
	assert.Equal(t, "/images/Styles/Warm%20Tones/Swatches/Oak_Grain.png", images[0].Swatch)
	assert.Equal(t, images[0].Swatch, images[0].Room)
}

func TestHandleSetImagesPercentInSetName(t *testing.T) {
	images := fstest.MapFS{
		"Styles/50%20off/Swatches/sale.jpg": {Data: []byte("sale")},
		"Styles/50 off/Swatches/other.jpg":  {Data: []byte("other")},
	}
	ts := httptest.NewServer(New(images, fstest.MapFS{}).Routes())
	t.Cleanup(ts.Close)

	resp, body := get(t, ts.URL+"/api/sets/50%2520off/images")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.Image
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "sale.jpg", got[0].Name)
	assert.Equal(t, "/images/Styles/50%2520off/Swatches/sale.jpg", got[0].Swatch)
}

func TestHandleSetImagesNotFound(t *testing.T) {
	ts := newServer(t)

	for _, path := range []string{"/api/sets/Missing/images", "/api/sets/..%2FModern/images", "/api/sets/Modern%2FSwatches/images"} {
		t.Run(path, func(t *testing.T) {
			resp, body := get(t, ts.URL+path)
			require.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.JSONEq(t, `{"error": "Set not found or no swatches"}`, string(body))
		})
	}
}

func TestImagesPassthrough(t *testing.T) {
	ts := newServer(t)

	resp, body := get(t, ts.URL+"/images/Styles/Modern/Rooms/a_1_room.jpg")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "room-a", string(body))

	resp, body = get(t, ts.URL+"/images/Styles/Warm%20Tones/Swatches/Oak_Grain.png")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "oak", string(body))

	resp, _ = get(t, ts.URL+"/images/Styles/Modern/Rooms/missing.jpg")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticFallback(t *testing.T) {
	ts := newServer(t)

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{name: "root serves entry document", path: "/", status: http.StatusOK, contains: "<title>swatchbook</title>"},
		{name: "client routes serve entry document", path: "/sets/Modern", status: http.StatusOK, contains: "<title>swatchbook</title>"},
		{name: "existing asset", path: "/app.js", status: http.StatusOK, contains: "console.log"},
		{name: "unknown api path", path: "/api/unknown", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			require.Equal(t, tt.status, resp.StatusCode)
			if tt.contains != "" {
				assert.Contains(t, string(body), tt.contains)
			} else {
				assert.Empty(t, body)
			}
		})
	}
}

func TestHealthcheck(t *testing.T) {
	ts := newServer(t)

	resp, body := get(t, ts.URL+"/healthcheck")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestSessionLifecycle(t *testing.T) {
	ts := newServer(t)

	resp, body := post(t, ts.URL+"/api/sessions", `{"set": "Modern"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var view models.View
	require.NoError(t, json.Unmarshal(body, &view))
	require.NotEmpty(t, view.SessionID)
	assert.Equal(t, "Modern", view.Set)
	assert.Equal(t, 0, view.Current)
	assert.Equal(t, models.ViewTitle{Main: "A", Sub: "1"}, view.Title)
	assert.Equal(t, "/images/Styles/Modern/Rooms/a_1_room.jpg", view.Preview.Src)
	assert.False(t, view.Preview.Fallback)
	require.Len(t, view.Thumbs, 2)
	assert.Equal(t, "center", view.Thumbs[0].Role)
	assert.Equal(t, "next-1", view.Thumbs[1].Role)

	base := ts.URL + "/api/sessions/" + view.SessionID

	resp, body = post(t, base+"/navigate", `{"direction": "next"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 1, view.Current)
	assert.True(t, view.Preview.Fallback, "b_2 has no room")
	assert.Equal(t, "/images/Styles/Modern/Swatches/b_2.jpg", view.Preview.Src)

	resp, body = post(t, base+"/navigate", `{"index": -1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 1, view.Current, "-1 wraps to the last image, already selected")

	resp, body = post(t, base+"/navigate", `{"index": 2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 0, view.Current)

	resp, body = post(t, base+"/preview-failed", ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "/images/Styles/Modern/Swatches/a_1.jpg", view.Preview.Src)
	assert.True(t, view.Preview.Fallback)

	resp, body = get(t, base)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "/images/Styles/Modern/Swatches/a_1.jpg", view.Preview.Src, "failed preview is remembered")
	assert.True(t, view.Preview.Fallback)

	post(t, base+"/navigate", `{"index": 1}`)
	resp, body = post(t, base+"/navigate", `{"index": 0}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "/images/Styles/Modern/Rooms/a_1_room.jpg", view.Preview.Src, "navigation clears the failure")
	assert.False(t, view.Preview.Fallback)

	resp, body = get(t, ts.URL+"/api/sessions")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sessions []models.SessionSummary
	require.NoError(t, json.Unmarshal(body, &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, models.SessionSummary{ID: view.SessionID, Set: "Modern", Current: 0, Count: 2}, sessions[0])

	req, err := http.NewRequest(http.MethodDelete, base, nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	resp, body = get(t, base)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Session not found"}`, string(body))
}

func TestSessionErrors(t *testing.T) {
	ts := newServer(t)

	tests := []struct {
		name    string
		path    string
		payload string
		status  int
	}{
		{name: "invalid json", path: "/api/sessions", payload: `{`, status: http.StatusBadRequest},
		{name: "missing set", path: "/api/sessions", payload: `{}`, status: http.StatusBadRequest},
		{name: "unknown set", path: "/api/sessions", payload: `{"set": "Missing"}`, status: http.StatusNotFound},
		{name: "unknown session", path: "/api/sessions/nope/navigate", payload: `{"direction": "next"}`, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := post(t, ts.URL+tt.path, tt.payload)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	resp, body := post(t, ts.URL+"/api/sessions", `{"set": "Modern"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var view models.View
	require.NoError(t, json.Unmarshal(body, &view))

	resp, _ = post(t, ts.URL+"/api/sessions/"+view.SessionID+"/navigate", `{"direction": "sideways"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPathParam(t *testing.T) {
	tests := []struct {
		name   string
		target string
		param  string
		want   string
	}{
		{name: "decoded by net/http", target: "/api/sets/Warm%20Tones/images", param: "Warm Tones", want: "Warm Tones"},
		{name: "escaped percent stays literal", target: "/api/sets/50%2520off/images", param: "50%20off", want: "50%20off"},
		{name: "escaped slash decoded once", target: "/api/sets/a%2Fb/images", param: "a%2Fb", want: "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("setName", tt.param)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			assert.Equal(t, tt.want, pathParam(r, "setName"))
		})
	}
}

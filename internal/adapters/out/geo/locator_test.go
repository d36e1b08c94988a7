package geo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"grocery/internal/adapters/out/geo"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewHTTPGeoLocator_RequiresBaseURL(t *testing.T) {
	locator, err := geo.NewHTTPGeoLocator("")

	assert.Nil(t, locator)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_HTTPGeoLocator_Locate_ParsesFirstMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "12 Baker St", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "51.5237", "lon": "-0.1586"}, {"lat": "0", "lon": "0"}]`))
	}))
	defer server.Close()

	locator, err := geo.NewHTTPGeoLocator(server.URL)
	require.NoError(t, err)

	point, err := locator.Locate(t.Context(), "12 Baker St")

	require.NoError(t, err)
	assert.InDelta(t, 51.5237, point.Latitude(), 0.0001)
	assert.InDelta(t, -0.1586, point.Longitude(), 0.0001)
}

func Test_HTTPGeoLocator_Locate_NoMatch_ReturnsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	locator, err := geo.NewHTTPGeoLocator(server.URL)
	require.NoError(t, err)

	_, err = locator.Locate(t.Context(), "nowhere at all")

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_HTTPGeoLocator_Locate_ServerError_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	locator, err := geo.NewHTTPGeoLocator(server.URL)
	require.NoError(t, err)

	_, err = locator.Locate(t.Context(), "12 Baker St")

	assert.ErrorContains(t, err, "geocoder returned status 500")
}

func Test_HTTPGeoLocator_Locate_RequiresAddress(t *testing.T) {
	locator, err := geo.NewHTTPGeoLocator("http://localhost:1")
	require.NoError(t, err)

	_, err = locator.Locate(t.Context(), "")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

package flightstatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusPayload = `[
	{
		"number": "AV 204",
		"status": "Departed",
		"departure": {
			"airport": {"name": "Bogota", "iata": "BOG"},
			"scheduledTime": {"utc": "2024-01-10 05:30Z", "local": "2024-01-10 00:30-05:00"},
			"gate": "A4"
		},
		"arrival": {
			"airport": {"name": "Toronto Pearson", "iata": "YYZ"},
			"scheduledTime": {"utc": "2024-01-10 12:10Z", "local": "2024-01-10 07:10-05:00"}
		},
		"airline": {"name": "Avianca"}
	}
]`

func testClient(server *httptest.Server) *Client {
	client := NewClient(nil)
	client.Endpoint = server.URL

	return client
}

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights/number/av204", r.URL.Path)
		assert.Equal(t, "2024-01-10", r.URL.Query().Get("scheduledDepartureDate"))

		w.Write([]byte(statusPayload))
	}))
	defer server.Close()

	legs, err := testClient(server).Lookup(context.Background(), "AV 204", "2024-01-10")
	require.NoError(t, err)

	require.Len(t, legs, 1)
	assert.Equal(t, "Departed", legs[0].Status)
	assert.Equal(t, "BOG", legs[0].Departure.Airport.IATA)
	assert.Equal(t, "A4", legs[0].Departure.Gate)
	assert.Equal(t, "2024-01-10 07:10-05:00", legs[0].Arrival.ScheduledTime.Local)
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	_, err := testClient(server).Lookup(context.Background(), "ZZ999", "")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestLookupRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Write([]byte(statusPayload))
	}))
	defer server.Close()

	legs, err := testClient(server).Lookup(context.Background(), "AV204", "2024-01-10")
	require.NoError(t, err)
	assert.Len(t, legs, 1)
	assert.Equal(t, 2, attempts)
}

func TestLookupClientErrorNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient(server).Lookup(context.Background(), "AV204", "2024-01-10")
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

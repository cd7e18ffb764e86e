package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
)

func TestAuth_MissingCustomerID(t *testing.T) {
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_StaffWithoutCustomerIDGetsWalkInID(t *testing.T) {
	var gotCustomerID string

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCustomerID(r.Context())
		require.True(t, ok)
		gotCustomerID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	req.Header.Set(HeaderActorRole, "staff")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(gotCustomerID, walkInPrefix))
	assert.Greater(t, len(gotCustomerID), len(walkInPrefix))
}

func TestAuth_PopulatesContext(t *testing.T) {
	var gotCustomerID string
	var gotRole domain.ActorRole

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCustomerID(r.Context())
		require.True(t, ok)
		gotCustomerID = id
		gotRole = GetActorRole(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
	req.Header.Set(HeaderCustomerID, "cust-100")
	req.Header.Set(HeaderActorRole, "staff")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cust-100", gotCustomerID)
	assert.Equal(t, domain.RoleStaff, gotRole)
}

func TestAuth_UnknownRoleDefaultsToCustomer(t *testing.T) {
	var gotRole domain.ActorRole

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = GetActorRole(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderCustomerID, "cust-100")
	req.Header.Set(HeaderActorRole, "superuser")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, domain.RoleCustomer, gotRole)
}

func TestAuth_GeneratesRequestID(t *testing.T) {
	var gotRequestID string

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r.Context())
		require.True(t, ok)
		gotRequestID = id
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderCustomerID, "cust-100")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, gotRequestID, rec.Header().Get(HeaderRequestID))
}

func TestAuth_PropagatesProvidedRequestID(t *testing.T) {
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderCustomerID, "cust-100")
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}

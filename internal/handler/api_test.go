package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (api *testAPI) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	api.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func (api *testAPI) register(t *testing.T, username, password string) map[string]any {
	t.Helper()
	rec := api.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	decodeBody(t, rec, &body)
	return body
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	api := newTestAPI(t)

	registered := api.register(t, "sarah", "secret")
	assert.Equal(t, true, registered["success"])
	assert.Equal(t, "sarah", registered["username"])
	assert.NotEmpty(t, registered["session_id"])
	assert.NotEmpty(t, registered["user_id"])

	rec := api.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "sarah",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login map[string]any
	decodeBody(t, rec, &login)
	assert.Equal(t, registered["user_id"], login["user_id"])
	assert.NotEqual(t, registered["session_id"], login["session_id"])
}

func TestAPI_RegisterDuplicateUsername(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "sarah", "secret")

	rec := api.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "sarah",
		"password": "other",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem map[string]any
	decodeBody(t, rec, &problem)
	assert.Equal(t, "Username already registered", problem["detail"])
}

func TestAPI_LoginWrongPassword(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "sarah", "secret")

	rec := api.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "sarah",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var problem map[string]any
	decodeBody(t, rec, &problem)
	assert.Equal(t, "Incorrect username or password", problem["detail"])
}

func TestAPI_ProfileRequiresSession(t *testing.T) {
	api := newTestAPI(t)
	registered := api.register(t, "sarah", "secret")

	rec := api.do(t, http.MethodGet, "/api/profile?session_id="+registered["session_id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile map[string]any
	decodeBody(t, rec, &profile)
	assert.Equal(t, "sarah", profile["username"])

	rec = api.do(t, http.MethodGet, "/api/profile?session_id=bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_UpdateWeddingAndReadPublic(t *testing.T) {
	api := newTestAPI(t)
	registered := api.register(t, "sarah", "secret")
	sessionID := registered["session_id"].(string)

	rec := api.do(t, http.MethodPut, "/api/wedding", map[string]any{
		"session_id":    sessionID,
		"couple_name_1": "Asha",
		"couple_name_2": "Dev",
		"venue_name":    "Lake Palace",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var wedding map[string]any
	decodeBody(t, rec, &wedding)
	assert.Equal(t, "Asha", wedding["couple_name_1"])
	shareableID := wedding["shareable_id"].(string)
	require.Len(t, shareableID, 8)

	rec = api.do(t, http.MethodGet, "/api/wedding/share/"+shareableID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var public map[string]any
	decodeBody(t, rec, &public)
	assert.Equal(t, "Asha", public["couple_name_1"])
	_, leaked := public["user_id"]
	assert.False(t, leaked, "public view must not carry the owner id")
}

func TestAPI_UpdateWeddingRequiresSession(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPut, "/api/wedding", map[string]any{"couple_name_1": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_UpdateThemeRejectsUnknownTheme(t *testing.T) {
	api := newTestAPI(t)
	registered := api.register(t, "sarah", "secret")
	sessionID := registered["session_id"].(string)

	rec := api.do(t, http.MethodPut, "/api/wedding/theme", map[string]any{
		"session_id": sessionID,
		"theme":      "neon",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem map[string]any
	decodeBody(t, rec, &problem)
	assert.Equal(t, "Invalid theme. Must be one of: classic, modern, boho", problem["detail"])

	rec = api.do(t, http.MethodPut, "/api/wedding/theme", map[string]any{
		"session_id": sessionID,
		"theme":      "modern",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var envelope map[string]any
	decodeBody(t, rec, &envelope)
	assert.Equal(t, true, envelope["success"])
	weddingData := envelope["wedding_data"].(map[string]any)
	assert.Equal(t, "modern", weddingData["theme"])
}

func TestAPI_UnknownUsernameGetsShowcase(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "sarah", "secret")

	// Registered user with no custom wedding still resolves to a document.
	rec := api.do(t, http.MethodGet, "/api/wedding/user/sarah", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/wedding/user/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_RSVPFlow(t *testing.T) {
	api := newTestAPI(t)
	registered := api.register(t, "sarah", "secret")

	rec := api.do(t, http.MethodGet, "/api/wedding?session_id="+registered["session_id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var wedding map[string]any
	decodeBody(t, rec, &wedding)
	weddingID := wedding["id"].(string)

	for _, guest := range []string{"Priya", "Rahul"} {
		rec = api.do(t, http.MethodPost, "/api/rsvp", map[string]any{
			"wedding_id": weddingID,
			"guest_name": guest,
			"attendance": "yes",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var submitted map[string]any
		decodeBody(t, rec, &submitted)
		assert.Equal(t, true, submitted["success"])
		assert.NotEmpty(t, submitted["rsvp_id"])
	}

	rec = api.do(t, http.MethodGet, "/api/rsvp/"+weddingID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing map[string]any
	decodeBody(t, rec, &listing)
	assert.Equal(t, float64(2), listing["total_count"])
	assert.Len(t, listing["rsvps"], 2)
}

func TestAPI_RSVPAcceptsStringGuestCount(t *testing.T) {
	api := newTestAPI(t)
	registered := api.register(t, "sarah", "secret")

	rec := api.do(t, http.MethodGet, "/api/wedding?session_id="+registered["session_id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var wedding map[string]any
	decodeBody(t, rec, &wedding)

	rec = api.do(t, http.MethodPost, "/api/rsvp", map[string]any{
		"wedding_id":  wedding["id"],
		"guest_name":  "Priya",
		"attendance":  "yes",
		"guest_count": "4",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/rsvp/"+wedding["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		RSVPs []struct {
			GuestCount int `json:"guest_count"`
		} `json:"rsvps"`
	}
	decodeBody(t, rec, &listing)
	require.Len(t, listing.RSVPs, 1)
	assert.Equal(t, 4, listing.RSVPs[0].GuestCount)
}

func TestAPI_RSVPListByUnknownShareableID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/rsvp/shareable/nope1234", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_GuestbookPublicWall(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/guestbook", map[string]any{
		"wedding_id": "public",
		"name":       "Visitor",
		"message":    "Beautiful site!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/guestbook/public/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing map[string]any
	decodeBody(t, rec, &listing)
	assert.Equal(t, float64(1), listing["total_count"])
}

func TestAPI_GuestbookPrivateRequiresSession(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/guestbook/private", map[string]any{
		"name":    "Friend",
		"message": "secret note",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_RegistryUpdateRequiresSessionQueryParam(t *testing.T) {
	api := newTestAPI(t)
	registered := api.register(t, "sarah", "secret")
	sessionID := registered["session_id"].(string)

	rec := api.do(t, http.MethodPut, "/api/wedding/registry", map[string]any{
		"destination": "Bali",
		"is_active":   true,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodPut, "/api/wedding/registry?session_id="+sessionID, map[string]any{
		"destination": "Bali",
		"is_active":   true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, true, body["success"])
}

func TestAPI_PaymentIntentLifecycle(t *testing.T) {
	api := newTestAPI(t)
	registered := api.register(t, "sarah", "secret")
	sessionID := registered["session_id"].(string)

	rec := api.do(t, http.MethodGet, "/api/wedding?session_id="+sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var wedding map[string]any
	decodeBody(t, rec, &wedding)
	weddingID := wedding["id"].(string)

	rec = api.do(t, http.MethodPost, "/api/payment/create-intent", map[string]any{
		"wedding_id":       weddingID,
		"contributor_name": "Priya",
		"amount":           120,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var intent map[string]any
	decodeBody(t, rec, &intent)
	intentID := intent["payment_intent_id"].(string)
	require.NotEmpty(t, intent["client_secret"])

	api.provider.settle(intentID, "succeeded", 12000)

	rec = api.do(t, http.MethodPost, "/api/payment/confirm", map[string]any{
		"payment_intent_id": intentID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var confirmed map[string]any
	decodeBody(t, rec, &confirmed)
	assert.Equal(t, "succeeded", confirmed["payment_status"])
	assert.Equal(t, float64(120), confirmed["amount_received"])

	rec = api.do(t, http.MethodGet, "/api/payment/contributions/"+weddingID+"?session_id="+sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var contributions map[string]any
	decodeBody(t, rec, &contributions)
	assert.Equal(t, float64(120), contributions["total_amount"])
}

func TestAPI_PaymentConfirmRequiresIntentID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/payment/confirm", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_PaymentContributionsHidesForeignWeddings(t *testing.T) {
	api := newTestAPI(t)
	owner := api.register(t, "sarah", "secret")
	stranger := api.register(t, "intruder", "secret")

	rec := api.do(t, http.MethodGet, "/api/wedding?session_id="+owner["session_id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var wedding map[string]any
	decodeBody(t, rec, &wedding)
	weddingID := wedding["id"].(string)

	rec = api.do(t, http.MethodGet, "/api/payment/contributions/"+weddingID+"?session_id="+stranger["session_id"].(string), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_ConnectivityCheck(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/test", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Backend is working", body["message"])
}

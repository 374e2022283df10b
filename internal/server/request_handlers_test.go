package server

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolunteerRequestLifecycle(t *testing.T) {
	app, _ := newTestServer(t)

	token := registerUser(t, app, "ann", "volunteer")

	// Empty before any submission.
	resp := doJSON(t, app, fiber.MethodGet, "/api/volunteer", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, body["requests"])

	resp = doJSON(t, app, fiber.MethodPost, "/api/volunteer", map[string]any{
		"skills":       "first aid, logistics",
		"availability": "weekends",
		"motivation":   "want to help my community",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body = decodeBody(t, resp)
	assert.Equal(t, "Volunteer request submitted successfully", body["message"])

	reqObj, ok := body["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pending", reqObj["status"])
	user, ok := reqObj["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ann", user["username"])

	resp = doJSON(t, app, fiber.MethodGet, "/api/volunteer", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	reqs, ok := body["requests"].([]any)
	require.True(t, ok)
	assert.Len(t, reqs, 1)
}

func TestVolunteerRequestValidation(t *testing.T) {
	app, _ := newTestServer(t)

	token := registerUser(t, app, "bob", "volunteer")

	resp := doJSON(t, app, fiber.MethodPost, "/api/volunteer", map[string]any{
		"skills": "cooking",
	}, token)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	errs, ok := decodeBody(t, resp)["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "availability")
	assert.Contains(t, errs, "motivation")
}

func TestVolunteerStatusNotClientSettable(t *testing.T) {
	app, _ := newTestServer(t)

	token := registerUser(t, app, "carl", "volunteer")

	resp := doJSON(t, app, fiber.MethodPost, "/api/volunteer", map[string]any{
		"skills":       "driving",
		"availability": "evenings",
		"motivation":   "time to give back",
		"status":       "approved",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	reqObj, ok := decodeBody(t, resp)["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pending", reqObj["status"])
}

func TestDonorRequestCreate(t *testing.T) {
	app, _ := newTestServer(t)

	token := registerUser(t, app, "dora", "donor")

	resp := doJSON(t, app, fiber.MethodPost, "/api/donor", map[string]any{
		"donation_type": "monthly",
		"amount":        "25.00",
		"message":       "keep up the work",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Donation request submitted successfully", body["message"])

	reqObj, ok := body["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pending", reqObj["status"])
	assert.Equal(t, "monthly", reqObj["donation_type"])
	assert.Equal(t, "25.00", reqObj["amount"])
}

func TestDonorRequestRejectsBadInput(t *testing.T) {
	app, _ := newTestServer(t)

	token := registerUser(t, app, "erin", "donor")

	resp := doJSON(t, app, fiber.MethodPost, "/api/donor", map[string]any{
		"donation_type": "weekly",
		"amount":        "not-a-number",
	}, token)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	errs, ok := decodeBody(t, resp)["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "donation_type")
	assert.Contains(t, errs, "amount")
}

func TestDonorAmountOptional(t *testing.T) {
	app, _ := newTestServer(t)

	token := registerUser(t, app, "finn", "donor")

	resp := doJSON(t, app, fiber.MethodPost, "/api/donor", map[string]any{
		"donation_type": "one_time",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	reqObj, ok := decodeBody(t, resp)["request"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, reqObj["amount"])
}

func TestHelpRequestDefaultsUrgency(t *testing.T) {
	app, _ := newTestServer(t)

	token := registerUser(t, app, "gina", "help_seeker")

	resp := doJSON(t, app, fiber.MethodPost, "/api/help-request", map[string]any{
		"category":    "medical",
		"title":       "Need medicine",
		"description": "Cannot afford prescription refills this month",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Help request submitted successfully", body["message"])

	reqObj, ok := body["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "medium", reqObj["urgency"])
	assert.Equal(t, "open", reqObj["status"])
}

func TestHelpRequestValidatesEnums(t *testing.T) {
	app, _ := newTestServer(t)

	token := registerUser(t, app, "hugo", "help_seeker")

	resp := doJSON(t, app, fiber.MethodPost, "/api/help-request", map[string]any{
		"category":    "transport",
		"title":       "Ride needed",
		"description": "weekly clinic visits",
		"urgency":     "extreme",
	}, token)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	errs, ok := decodeBody(t, resp)["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "urgency")
}

func TestRequestListsAreScopedToCaller(t *testing.T) {
	app, _ := newTestServer(t)

	annToken := registerUser(t, app, "ann", "help_seeker")
	bobToken := registerUser(t, app, "bob", "help_seeker")

	resp := doJSON(t, app, fiber.MethodPost, "/api/help-request", map[string]any{
		"category":    "food",
		"title":       "Groceries",
		"description": "short on food this week",
		"urgency":     "high",
	}, annToken)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Ann sees her request, Bob sees none.
	resp = doJSON(t, app, fiber.MethodGet, "/api/help-request", nil, annToken)
	body := decodeBody(t, resp)
	reqs, ok := body["requests"].([]any)
	require.True(t, ok)
	assert.Len(t, reqs, 1)

	resp = doJSON(t, app, fiber.MethodGet, "/api/help-request", nil, bobToken)
	body = decodeBody(t, resp)
	reqs, ok = body["requests"].([]any)
	require.True(t, ok)
	assert.Len(t, reqs, 0)
}

func TestRegisterLoginDonateFlow(t *testing.T) {
	app, _ := newTestServer(t)

	registerUser(t, app, "ann", "donor")

	// Fresh session via login rather than the registration token.
	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]any{
		"username": "ann",
		"password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token, _ := decodeBody(t, resp)["token"].(string)
	require.NotEmpty(t, token)

	resp = doJSON(t, app, fiber.MethodPost, "/api/donor", map[string]any{
		"donation_type": "one_time",
		"amount":        "25.00",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/donor", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	reqs, ok := decodeBody(t, resp)["requests"].([]any)
	require.True(t, ok)
	require.Len(t, reqs, 1)

	first, ok := reqs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pending", first["status"])
	assert.Equal(t, "25.00", first["amount"])
	owner, ok := first["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ann", owner["username"])
}

func TestRequestEndpointsRequireAuth(t *testing.T) {
	app, _ := newTestServer(t)

	for _, path := range []string{"/api/volunteer", "/api/donor", "/api/help-request"} {
		resp := doJSON(t, app, fiber.MethodGet, path, nil, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)

		resp = doJSON(t, app, fiber.MethodPost, path, map[string]any{}, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

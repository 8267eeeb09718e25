package server

import (
	"net/http"
	"testing"

	"liberty/internal/cache"
	"liberty/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMyAccount(t *testing.T) {
	_, app := newTestServer(t)
	_, token := signupAndLogin(t, app, "profile@example.com")

	t.Run("Partial Update", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/user", token, map[string]any{
			"username":      "fresh_name",
			"first_name":    "Ada",
			"date_of_birth": "1990-12-31",
			"private":       true,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated struct {
			Username    string `json:"username"`
			FirstName   string `json:"first_name"`
			DateOfBirth string `json:"date_of_birth"`
			Private     bool   `json:"private"`
		}
		decodeBody(t, resp, &updated)
		assert.Equal(t, "fresh_name", updated.Username)
		assert.Equal(t, "Ada", updated.FirstName)
		assert.True(t, updated.Private)

		// Omitted fields survive a later partial update.
		resp = doJSON(t, app, http.MethodPut, "/user", token, map[string]any{
			"last_name": "Lovelace",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var again struct {
			Username string `json:"username"`
			LastName string `json:"last_name"`
		}
		decodeBody(t, resp, &again)
		assert.Equal(t, "fresh_name", again.Username)
		assert.Equal(t, "Lovelace", again.LastName)
	})

	t.Run("Invalid Username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/user", token, map[string]any{
			"username": "x",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Invalid Date Of Birth", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/user", token, map[string]any{
			"date_of_birth": "31/12/1990",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Password Never In Response (Plain)", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/user", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := readBody(t, resp)
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "Password")
	})
}

// TestAccountFlowWithRedisCache runs profile reads and writes against a live
// cache client. A cached account copy must carry the stored password hash:
// saving a profile update served from a cache hit must not break login.
func TestAccountFlowWithRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	s, app := newTestServer(t)
	_, token := signupAndLogin(t, app, "cached@example.com")

	// First read is a miss and warms the cache; second read is a hit.
	// Neither may leak the hash into the response.
	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodGet, "/user", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := readBody(t, resp)
		assert.NotContains(t, body, "password")
	}

	// The update loads the account through the cache before saving.
	resp := doJSON(t, app, http.MethodPut, "/user", token, map[string]any{
		"first_name": "Cached",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Logging in again proves the stored hash survived the cached round trip.
	resp = doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
		"email":    "cached@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// And the profile change stuck.
	resp = doJSON(t, app, http.MethodGet, "/user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		FirstName string `json:"first_name"`
	}
	decodeBody(t, resp, &me)
	assert.Equal(t, "Cached", me.FirstName)

	var user models.User
	require.NoError(t, s.db.Where("email = ?", "cached@example.com").First(&user).Error)
	assert.NotEmpty(t, user.Password)
}

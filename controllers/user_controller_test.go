package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/salesapp_backend/config"
	"github.com/HSouheill/salesapp_backend/models"
)

func TestGetProfile(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)
	user := f.register(t, alice)

	t.Run("found", func(t *testing.T) {
		code, env := get(t, f.user.GetProfile, "id", user.ID.Hex())
		assert.Equal(t, http.StatusOK, code)
		require.True(t, env.Success)
		assert.Equal(t, "Profile retrieved successfully", env.Message)

		var got models.User
		decodeData(t, env, &got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, "555-0100", got.Phone)
		assert.Equal(t, "Acme", got.Organisation)
	})

	t.Run("malformed id", func(t *testing.T) {
		code, env := get(t, f.user.GetProfile, "id", "not-hex")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid user ID", env.Message)
	})

	t.Run("absent", func(t *testing.T) {
		code, env := get(t, f.user.GetProfile, "id", primitive.NewObjectID().Hex())
		assert.Equal(t, http.StatusNotFound, code)
		assert.False(t, env.Success)
		assert.Equal(t, "User not found", env.Message)
	})
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)
	user := f.register(t, alice)

	_, env := post(t, f.user.UpdateProfile, map[string]string{
		"userId":       user.ID.Hex(),
		"name":         "Alicia",
		"phone":        "555-0199",
		"email":        "alicia@example.com",
		"organisation": "Globex",
	})
	require.True(t, env.Success, env.Message)
	assert.Equal(t, "Profile updated successfully", env.Message)

	got, err := f.store.Users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.Equal(t, "555-0199", got.Phone)
	assert.Equal(t, "alicia@example.com", got.Email)
	assert.Equal(t, "Globex", got.Organisation)
	assert.Equal(t, "s3cret", got.Password)
	assert.Equal(t, models.RoleManager, got.Role)
}

func TestUpdateProfileUnknownUserIsNoop(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)

	_, env := post(t, f.user.UpdateProfile, map[string]string{"userId": primitive.NewObjectID().Hex(), "name": "x"})
	assert.True(t, env.Success)

	_, env = post(t, f.user.UpdateProfile, map[string]string{"name": "x"})
	assert.False(t, env.Success)
	assert.Equal(t, "userId is required", env.Message)
}

func TestListSalespersons(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)
	f.register(t, alice)
	f.register(t, map[string]string{"name": "Bob", "email": "bob@example.com", "password": "pw", "role": "salesperson"})
	f.register(t, map[string]string{"name": "Cy", "email": "cy@example.com", "password": "pw", "role": "salesperson"})

	_, env := get(t, f.user.ListSalespersons)
	require.True(t, env.Success)
	assert.Equal(t, "Salespersons retrieved successfully", env.Message)

	var users []models.User
	decodeData(t, env, &users)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[0].Name)
	assert.Equal(t, "Cy", users[1].Name)
	for _, u := range users {
		assert.Equal(t, models.RoleSalesperson, u.Role)
		assert.Empty(t, u.Password)
	}
}

func TestListSalespersonsEmpty(t *testing.T) {
	f := newFixture(t, config.LoginMatchExact)

	_, env := get(t, f.user.ListSalespersons)
	require.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart(t *testing.T) {
	cart := Cart{}
	assert.True(t, cart.IsEmpty())

	cart.Add(3)
	cart.Add(3)
	cart.Add(7)
	assert.Equal(t, int64(2), cart[3])
	assert.Equal(t, int64(1), cart[7])

	cart.Remove(3)
	assert.NotContains(t, cart, int64(3))

	// Removing again is harmless.
	cart.Remove(3)
	assert.False(t, cart.IsEmpty())
}

func TestSession_Flashes(t *testing.T) {
	sess := &Session{}
	sess.AddFlash(FlashSuccess, "saved")
	sess.AddFlash(FlashError, "oops")

	flashes := sess.PopFlashes()
	assert.Len(t, flashes, 2)
	assert.Equal(t, FlashSuccess, flashes[0].Type)

	assert.Empty(t, sess.PopFlashes())
}

func TestSession_ClearIdentity(t *testing.T) {
	sess := &Session{
		ID:        "abc",
		UserID:    7,
		Email:     "anna@example.com",
		FirstName: "Anna",
		Cart:      Cart{3: 1},
	}
	assert.True(t, sess.IsAuthenticated())

	sess.ClearIdentity()
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Email)

	// The cart survives a logout.
	assert.Equal(t, int64(1), sess.Cart[3])
}

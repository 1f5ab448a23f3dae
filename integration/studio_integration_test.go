package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingLifecycle(t *testing.T) {
	h := newHarness(t)
	admin := h.admin()
	clientID, client := h.register("sam@example.com", "")

	slotID := h.createSlot(admin, time.Now().Add(72*time.Hour).Truncate(time.Minute), 1)

	w := h.do("POST", fmt.Sprintf("/slots/%d/book", slotID), client, nil)
	assert.Equal(t, http.StatusPaymentRequired, w.Code, "booking needs credits")

	h.grant(admin, clientID, 2)

	w = h.do("POST", fmt.Sprintf("/slots/%d/book", slotID), client, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var booked struct {
		Booking struct {
			ID int `json:"id"`
		} `json:"booking"`
		Balance int `json:"balance"`
	}
	h.decode(w, &booked)
	assert.Equal(t, 1, booked.Balance)

	w = h.do("POST", fmt.Sprintf("/slots/%d/book", slotID), client, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "the same client cannot book twice")

	w = h.do("POST", fmt.Sprintf("/bookings/%d/cancel", booked.Booking.ID), client, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cancelled struct {
		Refunded bool `json:"refunded"`
		Balance  int  `json:"balance"`
	}
	h.decode(w, &cancelled)
	assert.True(t, cancelled.Refunded, "cancelled outside the window")
	assert.Equal(t, 2, cancelled.Balance)
	assert.Equal(t, 2, h.balance(client))
}

func TestWaitlistOnFullSlot(t *testing.T) {
	h := newHarness(t)
	admin := h.admin()
	firstID, first := h.register("first@example.com", "")
	secondID, second := h.register("second@example.com", "")
	h.grant(admin, firstID, 1)
	h.grant(admin, secondID, 1)

	slotID := h.createSlot(admin, time.Now().Add(96*time.Hour).Truncate(time.Minute), 1)

	w := h.do("POST", fmt.Sprintf("/slots/%d/waitlist", slotID), second, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "open slots are booked, not waitlisted")

	w = h.do("POST", fmt.Sprintf("/slots/%d/book", slotID), first, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = h.do("POST", fmt.Sprintf("/slots/%d/book", slotID), second, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"waitlist"`)

	w = h.do("POST", fmt.Sprintf("/slots/%d/waitlist", slotID), second, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var mine []struct {
		SlotID int `json:"slot_id"`
	}
	h.decode(h.do("GET", "/waitlist", second, nil), &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, slotID, mine[0].SlotID)
}

func TestReferralRewardOnFirstPurchase(t *testing.T) {
	h := newHarness(t)
	admin := h.admin()

	w := h.do("POST", "/admin/packs", admin, map[string]any{
		"name": "Five pack", "credits": 5, "price_cents": 5000, "currency": "GBP",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pack struct {
		ID int `json:"id"`
	}
	h.decode(w, &pack)

	w = h.do("POST", "/auth/register", "", map[string]string{
		"email": "referrer@example.com", "password": "password123", "full_name": "Referrer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var referrer authResponse
	h.decode(w, &referrer)

	_, friend := h.register("friend@example.com", referrer.User.ReferralCode)

	w = h.do("POST", fmt.Sprintf("/packs/%d/purchase", pack.ID), friend, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 5, h.balance(friend))
	assert.Equal(t, 1, h.balance(referrer.AccessToken), "referrer earns the bonus")

	var summary struct {
		Rewarded int `json:"rewarded"`
	}
	h.decode(h.do("GET", "/referrals", referrer.AccessToken, nil), &summary)
	assert.Equal(t, 1, summary.Rewarded)

	w = h.do("POST", fmt.Sprintf("/packs/%d/purchase", pack.ID), friend, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, h.balance(referrer.AccessToken), "only the first purchase is rewarded")
}

func TestProgrammeAssignmentNotifiesClient(t *testing.T) {
	h := newHarness(t)
	admin := h.admin()
	clientID, client := h.register("sam@example.com", "")

	w := h.do("POST", "/admin/exercises", admin, map[string]string{"name": "Goblet squat", "muscle_group": "legs"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var exercise struct {
		ID int `json:"id"`
	}
	h.decode(w, &exercise)

	w = h.do("POST", "/admin/programmes", admin, map[string]any{
		"name":      "Foundations",
		"exercises": []map[string]any{{"exercise_id": exercise.ID, "sets": 3, "reps": 10}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var programme struct {
		ID int `json:"id"`
	}
	h.decode(w, &programme)

	w = h.do("POST", fmt.Sprintf("/admin/programmes/%d/assign", programme.ID), admin, map[string]any{
		"user_id": clientID, "starts_on": "2030-01-07",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var assigned []struct {
		Name      string `json:"name"`
		Exercises []struct {
			ExerciseID int `json:"exercise_id"`
		} `json:"exercises"`
	}
	h.decode(h.do("GET", "/programmes", client, nil), &assigned)
	require.Len(t, assigned, 1)
	assert.Equal(t, "Foundations", assigned[0].Name)
	require.Len(t, assigned[0].Exercises, 1)

	var inbox struct {
		Items []struct {
			Kind string `json:"kind"`
		} `json:"items"`
		Unread int `json:"unread"`
	}
	h.decode(h.do("GET", "/notifications", client, nil), &inbox)
	require.Equal(t, 1, inbox.Unread)
	assert.Equal(t, "programme_assigned", inbox.Items[0].Kind)
}

func TestMessagingBetweenClientAndCoach(t *testing.T) {
	h := newHarness(t)
	admin := h.admin()
	clientID, client := h.register("sam@example.com", "")

	var session struct {
		UserID int `json:"user_id"`
	}
	h.decode(h.do("GET", "/auth/session", admin, nil), &session)

	w := h.do("POST", "/messages", admin, map[string]any{"recipient_id": clientID, "body": "See you Monday"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = h.do("POST", "/messages", client, map[string]any{"recipient_id": session.UserID, "body": "Great, thanks"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var unread struct {
		Unread int `json:"unread"`
	}
	h.decode(h.do("GET", "/messages/unread", client, nil), &unread)
	assert.Equal(t, 1, unread.Unread)

	var conversation []struct {
		Body string `json:"body"`
	}
	h.decode(h.do("GET", fmt.Sprintf("/messages/conversations/%d", session.UserID), client, nil), &conversation)
	require.Len(t, conversation, 2)
	assert.Equal(t, "See you Monday", conversation[0].Body, "oldest first")

	w = h.do("POST", fmt.Sprintf("/messages/conversations/%d/read", session.UserID), client, nil)
	require.Equal(t, http.StatusOK, w.Code)
	h.decode(h.do("GET", "/messages/unread", client, nil), &unread)
	assert.Equal(t, 0, unread.Unread)

	w = h.do("POST", "/messages", client, map[string]any{"recipient_id": clientID, "body": "note to self"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientCannotReachAdminRoutes(t *testing.T) {
	h := newHarness(t)
	_, client := h.register("sam@example.com", "")

	w := h.do("GET", "/me", client, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do("GET", "/admin/clients", client, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collab-finder/config"
	"collab-finder/models"
	"collab-finder/repositories"
)

func TestConversationsGroupByCounterpart(t *testing.T) {
	setupDB(t)
	repo := repositories.NewMessageRepository()

	a := seedUser(t, "a@example.edu")
	b := seedUser(t, "b@example.edu")
	c := seedUser(t, "c@example.edu")
	setProfileFields(t, b.ID, map[string]interface{}{"full_name": "Bee"})

	seedMessage(t, a.ID, b.ID, "hi b")
	seedMessage(t, b.ID, a.ID, "hi a")
	seedMessage(t, a.ID, c.ID, "hi c")

	conversations, err := repo.Conversations(a.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// Newest conversation first: the a->c message has the highest id.
	assert.Equal(t, c.ID, conversations[0].OtherID)
	assert.Equal(t, "hi c", conversations[0].LastBody)
	assert.Equal(t, fmt.Sprintf("User %d", c.ID), conversations[0].OtherName)

	assert.Equal(t, b.ID, conversations[1].OtherID)
	assert.Equal(t, "hi a", conversations[1].LastBody)
	assert.Equal(t, "Bee", conversations[1].OtherName)
	assert.Equal(t, 1, conversations[1].Unread)
}

func TestConversationsCountUnreadPerCounterpart(t *testing.T) {
	setupDB(t)
	repo := repositories.NewMessageRepository()

	a := seedUser(t, "a@example.edu")
	b := seedUser(t, "b@example.edu")

	seedMessage(t, b.ID, a.ID, "one")
	seedMessage(t, b.ID, a.ID, "two")
	seedMessage(t, a.ID, b.ID, "reply")

	conversations, err := repo.Conversations(a.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 2, conversations[0].Unread)

	// The sender's own outgoing message is not "unread" for them.
	theirs, err := repo.Conversations(b.ID)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, 1, theirs[0].Unread)
}

func TestThreadChronologicalAndCapped(t *testing.T) {
	setupDB(t)
	repo := repositories.NewMessageRepository()

	a := seedUser(t, "a@example.edu")
	b := seedUser(t, "b@example.edu")

	for i := 0; i < 505; i++ {
		seedMessage(t, a.ID, b.ID, fmt.Sprintf("msg %d", i))
	}

	messages, err := repo.Thread(a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, messages, 500)

	for i := 1; i < len(messages); i++ {
		assert.Greater(t, messages[i].ID, messages[i-1].ID)
	}
}

func TestThreadExcludesThirdParties(t *testing.T) {
	setupDB(t)
	repo := repositories.NewMessageRepository()

	a := seedUser(t, "a@example.edu")
	b := seedUser(t, "b@example.edu")
	c := seedUser(t, "c@example.edu")

	seedMessage(t, a.ID, b.ID, "ab")
	seedMessage(t, b.ID, a.ID, "ba")
	seedMessage(t, a.ID, c.ID, "ac")
	seedMessage(t, c.ID, b.ID, "cb")

	messages, err := repo.Thread(a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "ab", messages[0].Body)
	assert.Equal(t, "ba", messages[1].Body)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	setupDB(t)
	repo := repositories.NewMessageRepository()

	a := seedUser(t, "a@example.edu")
	b := seedUser(t, "b@example.edu")

	seedMessage(t, b.ID, a.ID, "one")
	seedMessage(t, b.ID, a.ID, "two")
	seedMessage(t, a.ID, b.ID, "mine")

	require.NoError(t, repo.MarkRead(a.ID, b.ID))

	var unread int64
	require.NoError(t, config.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", a.ID, false).Count(&unread).Error)
	assert.Zero(t, unread)

	// a's own outgoing message stays untouched.
	var outgoingUnread int64
	require.NoError(t, config.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", b.ID, false).Count(&outgoingUnread).Error)
	assert.Equal(t, int64(1), outgoingUnread)

	// Running it again changes nothing and does not error.
	require.NoError(t, repo.MarkRead(a.ID, b.ID))
}

func TestCreateWithProfile(t *testing.T) {
	setupDB(t)
	repo := repositories.NewUserRepository()

	user := &models.User{Email: "new@example.edu", PasswordHash: "x"}
	require.NoError(t, repo.CreateWithProfile(user))
	require.NotZero(t, user.ID)

	var profile models.Profile
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).First(&profile).Error)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenderlink_backend/internal/apperrors"
	"tenderlink_backend/internal/models"
	"tenderlink_backend/internal/repositories"
	"tenderlink_backend/internal/services/dto"
)

type notificationFixture struct {
	userRepo         *mockUserRepo
	notificationRepo *mockNotificationRepo
	emailProvider    *mockEmailProvider
	service          NotificationService
}

func newNotificationFixture() *notificationFixture {
	userRepo := newMockUserRepo()
	notificationRepo := newMockNotificationRepo()
	emailProvider := newMockEmailProvider()

	return &notificationFixture{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
		service:          NewNotificationService(notificationRepo, userRepo, emailProvider),
	}
}

func (f *notificationFixture) addUser(emailAddr string, prefs models.NotificationPreferences) *models.User {
	user := &models.User{
		Email:             emailAddr,
		UserType:          models.UserTypeBidder,
		BidderType:        models.BidderTypeContractor,
		IsVerified:        true,
		NotificationPrefs: prefs,
	}
	if err := f.userRepo.Create(user); err != nil {
		panic(err)
	}
	return user
}

func TestCreateNotificationPersistsAndEmails(t *testing.T) {
	f := newNotificationFixture()
	user := f.addUser("bidder@example.com", models.DefaultNotificationPreferences())

	resp, err := f.service.CreateNotification(
		user.ID,
		repositories.NotificationTypeNewBid,
		"New bid received",
		"A contractor placed a bid on your project.",
		&dto.NotificationMetadata{ProjectID: "project-42"},
	)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.Read)
	assert.Equal(t, "project-42", resp.Metadata["projectId"])

	stored, err := f.notificationRepo.FindNotificationByID(resp.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsRead)
	assert.Nil(t, stored.ReadAt)

	require.Len(t, f.emailProvider.sent, 1)
	assert.Equal(t, []string{"bidder@example.com"}, f.emailProvider.sent[0].To)
	assert.Equal(t, "New bid received", f.emailProvider.sent[0].Subject)
}

func TestCreateNotificationRespectsEmailPreference(t *testing.T) {
	f := newNotificationFixture()
	user := f.addUser("quiet@example.com", models.NotificationPreferences{Email: false, InApp: true})

	resp, err := f.service.CreateNotification(
		user.ID,
		repositories.NotificationTypeNewBid,
		"New bid received",
		"A contractor placed a bid on your project.",
		nil,
	)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	// In-app record exists, no email went out.
	assert.Empty(t, f.emailProvider.sent)
}

func TestCreateNotificationEmailFailureKeepsRecord(t *testing.T) {
	f := newNotificationFixture()
	user := f.addUser("bidder@example.com", models.DefaultNotificationPreferences())
	f.emailProvider.failFor["bidder@example.com"] = true

	resp, err := f.service.CreateNotification(
		user.ID,
		repositories.NotificationTypeNewBid,
		"New bid received",
		"A contractor placed a bid on your project.",
		nil,
	)
	assert.Error(t, err)
	require.NotNil(t, resp)

	// The record was committed before the send was attempted.
	_, findErr := f.notificationRepo.FindNotificationByID(resp.ID)
	assert.NoError(t, findErr)
}

func TestCreateNotificationUnknownType(t *testing.T) {
	f := newNotificationFixture()
	user := f.addUser("bidder@example.com", models.DefaultNotificationPreferences())

	_, err := f.service.CreateNotification(user.ID, "SOMETHING_ELSE", "t", "m", nil)
	assert.Error(t, err)
}

func TestCreateBulkNotifications(t *testing.T) {
	f := newNotificationFixture()
	first := f.addUser("first@example.com", models.DefaultNotificationPreferences())
	second := f.addUser("second@example.com", models.NotificationPreferences{Email: false, InApp: true})
	third := f.addUser("third@example.com", models.DefaultNotificationPreferences())

	f.emailProvider.failFor["third@example.com"] = true

	ids := []string{first.ID, second.ID, third.ID}
	err := f.service.CreateBulkNotifications(
		ids,
		repositories.NotificationTypeNewTenderMatch,
		"New tender in your field",
		"A new tender may interest you.",
		&dto.NotificationMetadata{ProjectID: "project-7"},
	)
	require.NoError(t, err)

	// One unread record per recipient, email preference notwithstanding.
	for _, id := range ids {
		unread, err := f.notificationRepo.FindUnreadByUser(id)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, repositories.NotificationTypeNewTenderMatch, unread[0].Type)
		assert.False(t, unread[0].IsRead)
	}

	// Emails only to opted-in recipients; the failed send was skipped, not fatal.
	require.Len(t, f.emailProvider.sent, 1)
	assert.Equal(t, []string{"first@example.com"}, f.emailProvider.sent[0].To)
}

func TestCreateBulkNotificationsEmptyRecipientList(t *testing.T) {
	f := newNotificationFixture()

	err := f.service.CreateBulkNotifications(nil, repositories.NotificationTypeNewTenderMatch, "t", "m", nil)
	assert.NoError(t, err)
	assert.Empty(t, f.emailProvider.sent)
}

func TestMarkNotificationAsReadIsIdempotent(t *testing.T) {
	f := newNotificationFixture()
	user := f.addUser("bidder@example.com", models.NotificationPreferences{InApp: true})

	resp, err := f.service.CreateNotification(user.ID, repositories.NotificationTypeNewBid, "t", "m", nil)
	require.NoError(t, err)

	require.NoError(t, f.service.MarkNotificationAsRead(resp.ID))

	stored, err := f.notificationRepo.FindNotificationByID(resp.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
	require.NotNil(t, stored.ReadAt)
	firstReadAt := *stored.ReadAt

	// Marking again succeeds and leaves readAt untouched.
	require.NoError(t, f.service.MarkNotificationAsRead(resp.ID))
	stored, err = f.notificationRepo.FindNotificationByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, firstReadAt, *stored.ReadAt)
}

func TestMarkNotificationAsReadUnknownID(t *testing.T) {
	f := newNotificationFixture()

	err := f.service.MarkNotificationAsRead("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestGetUnreadNotifications(t *testing.T) {
	f := newNotificationFixture()
	user := f.addUser("bidder@example.com", models.NotificationPreferences{InApp: true})

	first, err := f.service.CreateNotification(user.ID, repositories.NotificationTypeNewBid, "first", "m", nil)
	require.NoError(t, err)
	_, err = f.service.CreateNotification(user.ID, repositories.NotificationTypeNewBid, "second", "m", nil)
	require.NoError(t, err)
	_, err = f.service.CreateNotification(user.ID, repositories.NotificationTypeNewBid, "third", "m", nil)
	require.NoError(t, err)

	require.NoError(t, f.service.MarkNotificationAsRead(first.ID))

	list, err := f.service.GetUnreadNotifications(user.ID)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, int64(2), list.UnreadCount)

	// Newest first.
	assert.Equal(t, "third", list.Notifications[0].Title)
	assert.Equal(t, "second", list.Notifications[1].Title)
	assert.True(t, list.Notifications[0].CreatedAt.After(list.Notifications[1].CreatedAt))
}

func TestUpdateNotificationPreferencesReplacesTriple(t *testing.T) {
	f := newNotificationFixture()
	user := f.addUser("bidder@example.com", models.DefaultNotificationPreferences())

	newPrefs := models.NotificationPreferences{Email: false, InApp: false, Push: true}
	require.NoError(t, f.service.UpdateNotificationPreferences(user.ID, newPrefs))

	stored, err := f.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, newPrefs, stored.NotificationPrefs)
}

package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tenderlink_backend/internal/email"
	"tenderlink_backend/internal/models"
	"tenderlink_backend/internal/repositories"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		m.nextID++
		user.ID = fmt.Sprintf("user-%d", m.nextID)
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	for _, u := range m.users {
		if u.VerificationToken == token && token != "" {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) Update(user *models.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) VerifyUser(userID string) error {
	u, ok := m.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsVerified = true
	u.VerificationToken = ""
	u.VerificationTokenExpiry = nil
	return nil
}

func (m *mockUserRepo) FindVerifiedBidders(bidderTypes []models.BidderType) ([]models.User, error) {
	wanted := make(map[models.BidderType]bool, len(bidderTypes))
	for _, bt := range bidderTypes {
		wanted[bt] = true
	}

	var result []models.User
	for _, u := range m.users {
		if u.UserType == models.UserTypeBidder && u.IsVerified && wanted[u.BidderType] {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) FindEmailRecipients(userIDs []string) ([]models.User, error) {
	var result []models.User
	for _, id := range userIDs {
		if u, ok := m.users[id]; ok && u.Email != "" && u.NotificationPrefs.Email {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) UpdateNotificationPreferences(userID string, prefs models.NotificationPreferences) error {
	u, ok := m.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.NotificationPrefs = prefs
	return nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[string]*models.Project
	nextID   int
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*models.Project)}
}

func (m *mockProjectRepo) Create(project *models.Project) error {
	m.nextID++
	project.ID = fmt.Sprintf("project-%d", m.nextID)
	project.CreatedAt = time.Now()
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) FindByID(id string) (*models.Project, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrProjectNotFound
}

func (m *mockProjectRepo) Find(filter repositories.ProjectFilter) ([]models.Project, error) {
	var result []models.Project
	for _, p := range m.projects {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		// Case-insensitive substring, same contract as the ILIKE filter.
		if filter.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(filter.Category)) {
			continue
		}
		if filter.OwnerID != "" && p.OwnerID != filter.OwnerID {
			continue
		}
		result = append(result, *p)
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result, nil
}

func (m *mockProjectRepo) Update(project *models.Project) error {
	m.projects[project.ID] = project
	return nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications map[string]*models.Notification
	nextID        int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (m *mockNotificationRepo) CreateNotification(notification *models.Notification) error {
	m.nextID++
	notification.ID = fmt.Sprintf("notification-%d", m.nextID)
	// Strictly increasing timestamps so ordering is observable in tests.
	notification.CreatedAt = time.Now().Add(time.Duration(m.nextID) * time.Millisecond)
	m.notifications[notification.ID] = notification
	return nil
}

func (m *mockNotificationRepo) CreateBulkNotifications(notifications []*models.Notification) error {
	for _, n := range notifications {
		if err := m.CreateNotification(n); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockNotificationRepo) FindNotificationByID(id string) (*models.Notification, error) {
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, repositories.ErrNotificationNotFound
}

func (m *mockNotificationRepo) FindUnreadByUser(userID string) ([]models.Notification, error) {
	var result []models.Notification
	for _, n := range m.notifications {
		if n.UserID == userID && !n.IsRead {
			result = append(result, *n)
		}
	}
	// Newest first, same contract as the SQL repository.
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockNotificationRepo) MarkAsRead(notificationID string) error {
	n, ok := m.notifications[notificationID]
	if !ok {
		return repositories.ErrNotificationNotFound
	}
	if !n.IsRead {
		now := time.Now()
		n.IsRead = true
		n.ReadAt = &now
	}
	return nil
}

func (m *mockNotificationRepo) GetUnreadCount(userID string) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) byUserAndType(userID, notificationType string) []*models.Notification {
	var result []*models.Notification
	for _, n := range m.notifications {
		if n.UserID == userID && n.Type == notificationType {
			result = append(result, n)
		}
	}
	return result
}

// ── Mock email.Provider ──

type sentEmail struct {
	To       []string
	Subject  string
	Template string
	Data     email.TemplateData
}

type mockEmailProvider struct {
	sent []sentEmail
	// failFor holds recipient addresses whose sends should fail.
	failFor map[string]bool
}

func newMockEmailProvider() *mockEmailProvider {
	return &mockEmailProvider{failFor: make(map[string]bool)}
}

func (m *mockEmailProvider) Send(msg *email.Email) error {
	return m.record("", nil, msg)
}

func (m *mockEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	return m.record(templateName, data, msg)
}

func (m *mockEmailProvider) record(templateName string, data email.TemplateData, msg *email.Email) error {
	for _, to := range msg.To {
		if m.failFor[to] {
			return fmt.Errorf("smtp unavailable for %s", to)
		}
	}
	m.sent = append(m.sent, sentEmail{
		To:       msg.To,
		Subject:  msg.Subject,
		Template: templateName,
		Data:     data,
	})
	return nil
}

func (m *mockEmailProvider) Validate() error { return nil }
func (m *mockEmailProvider) Close() error    { return nil }

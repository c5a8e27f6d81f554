package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"dealerpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type notificationUpdate struct {
	id       uint
	sent     int
	lastSent time.Time
}

type mockStore struct {
	mu sync.Mutex

	reminders []models.Reminder
	customers map[uint]*models.Customer
	fetchErr  error
	lookupErr map[uint]error
	updateErr error

	fetchCalls int
	updates    []notificationUpdate
}

func (m *mockStore) GetPendingReminders() ([]models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.reminders, nil
}

func (m *mockStore) GetCustomer(id uint) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.lookupErr[id]; ok {
		return nil, err
	}
	customer, ok := m.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

func (m *mockStore) UpdateReminderNotification(id uint, sent int, lastSent time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, notificationUpdate{id: id, sent: sent, lastSent: lastSent})
	return nil
}

func (m *mockStore) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCalls
}

type mockMailer struct {
	mu sync.Mutex

	result bool
	err    error

	sentTo []string
}

func (m *mockMailer) SendReminderEmail(r models.Reminder, to string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sentTo = append(m.sentTo, to)
	if m.err != nil {
		return false, m.err
	}
	return m.result, nil
}

func newTestService(store *mockStore, mailer *mockMailer, now time.Time) *ReminderService {
	svc := NewReminderService(store, mailer)
	svc.now = func() time.Time { return now }
	return svc
}

func reminderWithCustomer(id uint, due time.Time) (models.Reminder, map[uint]*models.Customer) {
	reminder := models.Reminder{
		Model:        gorm.Model{ID: id},
		CustomerID:   1,
		ReminderType: "maintenance",
		DueDate:      due,
		Description:  "Oil change and inspection",
	}
	customers := map[uint]*models.Customer{
		1: {Model: gorm.Model{ID: 1}, Name: "John Miller", Email: "john@example.com", Phone: "+15550001111"},
	}
	return reminder, customers
}

func TestProcessReminder_SendsAtThreeDayOffset(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, customers := reminderWithCustomer(42, now.Add(72*time.Hour))

	store := &mockStore{customers: customers}
	mailer := &mockMailer{result: true}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	require.Len(t, mailer.sentTo, 1)
	assert.Equal(t, "john@example.com", mailer.sentTo[0])

	require.Len(t, store.updates, 1)
	assert.Equal(t, uint(42), store.updates[0].id)
	assert.Equal(t, 1, store.updates[0].sent)
	assert.Equal(t, now, store.updates[0].lastSent)
}

func TestProcessReminder_OffsetMembership(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		days       int
		expectSend bool
	}{
		{"60 days out", 60, true},
		{"30 days out", 30, true},
		{"10 days out", 10, true},
		{"3 days out", 3, true},
		{"59 days out", 59, false},
		{"29 days out", 29, false},
		{"11 days out", 11, false},
		{"4 days out", 4, false},
		{"due today", 0, false},
		{"100 days out", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder, customers := reminderWithCustomer(1, now.Add(time.Duration(tt.days)*24*time.Hour))

			store := &mockStore{customers: customers}
			mailer := &mockMailer{result: true}
			svc := newTestService(store, mailer, now)

			svc.processReminder(reminder)

			if tt.expectSend {
				assert.Len(t, mailer.sentTo, 1)
				assert.Len(t, store.updates, 1)
			} else {
				assert.Empty(t, mailer.sentTo)
				assert.Empty(t, store.updates)
			}
		})
	}
}

func TestProcessReminder_FractionalDayRoundsUp(t *testing.T) {
	// Due 2 days and 5 hours from now: the ceiling lands on 3, which is a
	// notification day even though the calendar distance is closer to 2.
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, customers := reminderWithCustomer(1, now.Add(53*time.Hour))

	store := &mockStore{customers: customers}
	mailer := &mockMailer{result: true}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	assert.Len(t, mailer.sentTo, 1)
}

func TestProcessReminder_OverdueSkippedSilently(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, customers := reminderWithCustomer(1, now.Add(-48*time.Hour))

	store := &mockStore{customers: customers}
	mailer := &mockMailer{result: true}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	assert.Empty(t, mailer.sentTo)
	assert.Empty(t, store.updates)
}

func TestProcessReminder_CompletedNeverSends(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, customers := reminderWithCustomer(1, now.Add(72*time.Hour))
	reminder.IsCompleted = true

	store := &mockStore{customers: customers}
	mailer := &mockMailer{result: true}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	assert.Empty(t, mailer.sentTo)
	assert.Empty(t, store.updates)
}

func TestProcessReminder_DedupGuard(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastSent   time.Duration // how long before now
		expectSend bool
	}{
		{"sent 2 hours ago", 2 * time.Hour, false},
		{"sent 23 hours ago", 23 * time.Hour, false},
		{"sent 30 hours ago", 30 * time.Hour, true},
		{"sent 3 days ago", 72 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder, customers := reminderWithCustomer(1, now.Add(72*time.Hour))
			last := now.Add(-tt.lastSent)
			reminder.LastNotificationSent = &last
			reminder.NotificationsSent = 1

			store := &mockStore{customers: customers}
			mailer := &mockMailer{result: true}
			svc := newTestService(store, mailer, now)

			svc.processReminder(reminder)

			if tt.expectSend {
				require.Len(t, mailer.sentTo, 1)
				require.Len(t, store.updates, 1)
				assert.Equal(t, 2, store.updates[0].sent)
			} else {
				assert.Empty(t, mailer.sentTo)
				assert.Empty(t, store.updates)
			}
		})
	}
}

func TestProcessReminder_NeverNotifiedIgnoresGuard(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, customers := reminderWithCustomer(1, now.Add(10*24*time.Hour))
	// Zero counter and nil timestamp: first notification for this reminder.
	require.Nil(t, reminder.LastNotificationSent)
	require.Zero(t, reminder.NotificationsSent)

	store := &mockStore{customers: customers}
	mailer := &mockMailer{result: true}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	assert.Len(t, mailer.sentTo, 1)
}

func TestProcessReminder_FailedSendLeavesStateUnchanged(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, customers := reminderWithCustomer(1, now.Add(72*time.Hour))

	store := &mockStore{customers: customers}
	mailer := &mockMailer{result: false}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	assert.Len(t, mailer.sentTo, 1, "a send attempt should have been made")
	assert.Empty(t, store.updates, "counters must stay untouched after a failed send")
}

func TestProcessReminder_MailerErrorTreatedAsFailure(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, customers := reminderWithCustomer(1, now.Add(72*time.Hour))

	store := &mockStore{customers: customers}
	mailer := &mockMailer{err: errors.New("smtp transport not configured")}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	assert.Empty(t, store.updates)
}

func TestProcessReminder_MissingCustomerSkipped(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, _ := reminderWithCustomer(1, now.Add(72*time.Hour))

	store := &mockStore{customers: map[uint]*models.Customer{}}
	mailer := &mockMailer{result: true}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	assert.Empty(t, mailer.sentTo)
	assert.Empty(t, store.updates)
}

func TestProcessReminder_CustomerWithoutEmailSkipped(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reminder, customers := reminderWithCustomer(1, now.Add(72*time.Hour))
	customers[1].Email = ""

	store := &mockStore{customers: customers}
	mailer := &mockMailer{result: true}
	svc := newTestService(store, mailer, now)

	svc.processReminder(reminder)

	assert.Empty(t, mailer.sentTo)
	assert.Empty(t, store.updates)
}

func TestCheckReminders_FetchFailurePropagates(t *testing.T) {
	store := &mockStore{fetchErr: errors.New("connection refused")}
	svc := newTestService(store, &mockMailer{result: true}, time.Now())

	err := svc.CheckReminders()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch pending reminders")
}

func TestCheckReminders_PerReminderFaultIsolation(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	due := now.Add(72 * time.Hour)

	broken := models.Reminder{Model: gorm.Model{ID: 1}, CustomerID: 9, DueDate: due}
	healthy := models.Reminder{Model: gorm.Model{ID: 2}, CustomerID: 1, DueDate: due}

	store := &mockStore{
		reminders: []models.Reminder{broken, healthy},
		customers: map[uint]*models.Customer{
			1: {Model: gorm.Model{ID: 1}, Name: "Jane Park", Email: "jane@example.com"},
		},
		lookupErr: map[uint]error{9: errors.New("db timeout")},
	}
	mailer := &mockMailer{result: true}
	svc := newTestService(store, mailer, now)

	err := svc.CheckReminders()
	require.NoError(t, err)

	require.Len(t, mailer.sentTo, 1, "the healthy reminder must still be processed")
	assert.Equal(t, "jane@example.com", mailer.sentTo[0])
	require.Len(t, store.updates, 1)
	assert.Equal(t, uint(2), store.updates[0].id)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}

func TestScheduler_StartRunsImmediateScan(t *testing.T) {
	store := &mockStore{}
	svc := newTestService(store, &mockMailer{result: true}, time.Now())

	svc.Start(60)
	defer svc.Stop()

	assert.True(t, svc.IsRunning())
	waitFor(t, 2*time.Second, func() bool { return store.fetchCount() >= 1 })
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	svc := newTestService(&mockStore{}, &mockMailer{result: true}, time.Now())

	svc.Stop() // never started
	assert.False(t, svc.IsRunning())

	svc.Start(60)
	svc.Stop()
	svc.Stop()
	assert.False(t, svc.IsRunning())
}

func TestScheduler_DoubleStartReplacesTimer(t *testing.T) {
	store := &mockStore{}
	svc := newTestService(store, &mockMailer{result: true}, time.Now())

	svc.Start(60)
	svc.Start(30)
	assert.True(t, svc.IsRunning())

	// A single Stop must leave nothing running: the first timer was
	// replaced, not stacked.
	svc.Stop()
	assert.False(t, svc.IsRunning())
}

func TestScheduler_ScanFailureDoesNotStopTimer(t *testing.T) {
	store := &mockStore{fetchErr: errors.New("down")}
	svc := newTestService(store, &mockMailer{result: true}, time.Now())

	svc.Start(60)
	defer svc.Stop()

	waitFor(t, 2*time.Second, func() bool { return store.fetchCount() >= 1 })
	assert.True(t, svc.IsRunning(), "a failed scan must not de-schedule the timer")
}

func TestIsNotificationDay(t *testing.T) {
	for _, offset := range NotificationOffsets {
		assert.True(t, isNotificationDay(offset), "offset %d", offset)
	}
	for _, days := range []int{-1, 0, 1, 2, 5, 31, 61} {
		assert.False(t, isNotificationDay(days), "days %d", days)
	}
}

package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcreator/ems-backend-go/internal/domain/notification"
	"github.com/techcreator/ems-backend-go/internal/pkg/push"
)

var errDeadToken = errors.New("token is unregistered")

type fakeSender struct {
	enabled  bool
	failFor  map[string]error
	invalid  map[string]bool
	messages []push.Message
}

func (f *fakeSender) Send(ctx context.Context, msg push.Message) error {
	if err, ok := f.failFor[msg.Token]; ok {
		return err
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeSender) Enabled() bool { return f.enabled }

func (f *fakeSender) IsTokenInvalid(err error) bool {
	return errors.Is(err, errDeadToken)
}

type fakeTokenRepo struct {
	all        []notification.DeviceToken
	byEmployee map[string][]notification.DeviceToken
	deleted    []string
}

func (f *fakeTokenRepo) ListAll(ctx context.Context) ([]notification.DeviceToken, error) {
	return f.all, nil
}

func (f *fakeTokenRepo) ListByEmployee(ctx context.Context, employeeID string) ([]notification.DeviceToken, error) {
	return f.byEmployee[employeeID], nil
}

func (f *fakeTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return nil
}

func ownerName(name string) *string { return &name }

func TestBroadcastPersonalizesTitles(t *testing.T) {
	sender := &fakeSender{enabled: true}
	repo := &fakeTokenRepo{all: []notification.DeviceToken{
		{Token: "tok-a", OwnerName: ownerName("Ayesha")},
		{Token: "tok-b"},
	}}
	svc := NewNotificationService(repo, sender)

	resp, err := svc.Broadcast(context.Background(), notification.BroadcastRequest{
		Title: "Standup in 5",
		Body:  "Join the call",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalTokens)
	assert.Equal(t, 2, resp.SuccessCount)
	require.Len(t, sender.messages, 2)
	assert.Equal(t, "Ayesha: Standup in 5", sender.messages[0].Title)
	assert.Equal(t, "Standup in 5", sender.messages[1].Title)
}

func TestBroadcastPrunesDeadTokens(t *testing.T) {
	sender := &fakeSender{
		enabled: true,
		failFor: map[string]error{"tok-dead": errDeadToken},
	}
	repo := &fakeTokenRepo{all: []notification.DeviceToken{
		{Token: "tok-dead"},
		{Token: "tok-live"},
	}}
	svc := NewNotificationService(repo, sender)

	resp, err := svc.Broadcast(context.Background(), notification.BroadcastRequest{
		Title: "Hello", Body: "World",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.SuccessCount)
	assert.Equal(t, []string{"tok-dead"}, repo.deleted)

	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Pruned)
	assert.False(t, resp.Results[0].Success)
	assert.True(t, resp.Results[1].Success)
}

func TestBroadcastTransientFailureIsNotPruned(t *testing.T) {
	sender := &fakeSender{
		enabled: true,
		failFor: map[string]error{"tok-flaky": errors.New("service unavailable")},
	}
	repo := &fakeTokenRepo{all: []notification.DeviceToken{{Token: "tok-flaky"}}}
	svc := NewNotificationService(repo, sender)

	resp, err := svc.Broadcast(context.Background(), notification.BroadcastRequest{
		Title: "Hello", Body: "World",
	})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Empty(t, repo.deleted)
	assert.False(t, resp.Results[0].Pruned)
}

func TestBroadcastRequiresTokens(t *testing.T) {
	svc := NewNotificationService(&fakeTokenRepo{}, &fakeSender{enabled: true})

	_, err := svc.Broadcast(context.Background(), notification.BroadcastRequest{
		Title: "Hello", Body: "World",
	})
	assert.ErrorIs(t, err, notification.ErrNoDeviceTokens)
}

func TestBroadcastWhenPushDisabled(t *testing.T) {
	svc := NewNotificationService(&fakeTokenRepo{}, &fakeSender{enabled: false})

	_, err := svc.Broadcast(context.Background(), notification.BroadcastRequest{
		Title: "Hello", Body: "World",
	})
	assert.ErrorIs(t, err, notification.ErrPushDisabled)
}

func TestSendMergesExplicitAndRegisteredTokens(t *testing.T) {
	sender := &fakeSender{enabled: true}
	repo := &fakeTokenRepo{byEmployee: map[string][]notification.DeviceToken{
		"emp-1": {{Token: "tok-phone"}, {Token: "tok-explicit"}},
	}}
	svc := NewNotificationService(repo, sender)

	resp, err := svc.Send(context.Background(), notification.SendRequest{
		Title:      "Your leave was approved",
		Body:       "Enjoy!",
		Token:      "tok-explicit",
		EmployeeID: "emp-1",
	})
	require.NoError(t, err)

	// The explicit token and the registered duplicate collapse to one send.
	assert.Equal(t, 2, resp.TotalTokens)
	require.Len(t, sender.messages, 2)
	assert.Equal(t, "tok-explicit", sender.messages[0].Token)
	assert.Equal(t, "tok-phone", sender.messages[1].Token)
}

func TestSendValidatesRequest(t *testing.T) {
	svc := NewNotificationService(&fakeTokenRepo{}, &fakeSender{enabled: true})

	_, err := svc.Send(context.Background(), notification.SendRequest{Title: "No body"})
	assert.Error(t, err)
}

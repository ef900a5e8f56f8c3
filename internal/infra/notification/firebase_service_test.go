package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"crm/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []*messaging.Message
	err      error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	r.messages = append(r.messages, message)
	if r.err != nil {
		return "", r.err
	}

	return "projects/crm/messages/1", nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender, logger: newDiscardLogger()}

	data := map[string]string{"complaint_id": "CMPT-1"}
	require.NoError(t, svc.SendToTopic(context.Background(), "crm-role-general_manager", "Escalated", "CMPT-1 escalated", data))

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "crm-role-general_manager", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Escalated", msg.Notification.Title)
	assert.Equal(t, "CMPT-1 escalated", msg.Notification.Body)
	assert.Equal(t, data, msg.Data)
}

func TestFirebaseService_SendToTopic_Error(t *testing.T) {
	svc := &firebaseService{client: &recordingSender{err: errors.New("quota exceeded")}, logger: newDiscardLogger()}

	err := svc.SendToTopic(context.Background(), "crm-role-staff", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crm-role-staff")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNewNotificationService_Unconfigured(t *testing.T) {
	for _, cfg := range []*config.FirebaseConfig{nil, {}} {
		svc, err := NewNotificationService(Params{
			Ctx:    context.Background(),
			Config: &config.Config{Firebase: cfg},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &logOnlyService{}, svc)
		assert.NoError(t, svc.SendToTopic(context.Background(), "crm-role-staff", "t", "b", nil))
	}
}

package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"todo/internal/domain/service"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newFakeToken(err error, completed bool) *fakeToken {
	token := &fakeToken{done: make(chan struct{}), err: err}
	if completed {
		close(token.done)
	}

	return token
}

func (t *fakeToken) Wait() bool {
	<-t.done

	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *fakeToken) Done() <-chan struct{} { return t.done }

func (t *fakeToken) Error() error { return t.err }

type publishedMessage struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient overrides the calls the publisher makes; any other method panics.
type fakeClient struct {
	mqtt.Client

	token        *fakeToken
	published    []publishedMessage
	connected    bool
	disconnected uint
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload any) mqtt.Token {
	c.published = append(c.published, publishedMessage{
		topic:    topic,
		qos:      qos,
		retained: retained,
		payload:  payload.([]byte),
	})

	return c.token
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Disconnect(quiesce uint) {
	c.connected = false
	c.disconnected = quiesce
}

func TestMQTTPublisher_PublishAuditEvent(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, true), connected: true}
	publisher := newMQTTPublisher(client, "todo/audit", 1, newDiscardLogger())

	require.NoError(t, publisher.PublishAuditEvent(context.Background(), newAuditEvent()))

	require.Len(t, client.published, 1)
	msg := client.published[0]
	assert.Equal(t, "todo/audit/user.logged_in", msg.topic)
	assert.Equal(t, byte(1), msg.qos)
	assert.False(t, msg.retained)

	var event service.AuditEvent
	require.NoError(t, json.Unmarshal(msg.payload, &event))
	assert.Equal(t, "evt-1", event.EventID)
	assert.Equal(t, int64(42), event.UserID)
}

func TestMQTTPublisher_PublishError(t *testing.T) {
	client := &fakeClient{token: newFakeToken(errors.New("not connected"), true)}
	publisher := newMQTTPublisher(client, "todo/audit", 0, newDiscardLogger())

	err := publisher.PublishAuditEvent(context.Background(), newAuditEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}

func TestMQTTPublisher_ContextCanceled(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, false)}
	publisher := newMQTTPublisher(client, "todo/audit", 0, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.PublishAuditEvent(ctx, newAuditEvent())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMQTTPublisher_Close(t *testing.T) {
	client := &fakeClient{connected: true}
	publisher := newMQTTPublisher(client, "todo/audit", 0, newDiscardLogger())

	require.NoError(t, publisher.Close())
	assert.False(t, client.connected)
	assert.Equal(t, uint(mqttQuiesceMillis), client.disconnected)

	// Closing twice is safe.
	require.NoError(t, publisher.Close())
}

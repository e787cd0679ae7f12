package notify

import (
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

type fakeToken struct {
	err     error
	timeout bool
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.timeout }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakeClient struct {
	topic   string
	payload []byte
	token   *fakeToken
}

func (c *fakeClient) Connect() paho.Token { return &fakeToken{} }
func (c *fakeClient) Disconnect(uint)     {}
func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.topic = topic
	c.payload = payload.([]byte)
	return c.token
}

func withFakeClient(t *testing.T, cli *fakeClient) {
	t.Helper()
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) mqttClient { return cli }
	t.Cleanup(func() { newMQTTClient = orig })
}

func TestPublisherPublish(t *testing.T) {
	cli := &fakeClient{token: &fakeToken{}}
	withFakeClient(t, cli)

	pub, err := New(Config{Enabled: true, Broker: "tcp://broker:1883"})
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	defer pub.Close()

	if err := pub.Publish([]byte(`{"id":"p1"}`)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if cli.topic != "biosched/plan" {
		t.Fatalf("bad topic %q", cli.topic)
	}
	if string(cli.payload) != `{"id":"p1"}` {
		t.Fatalf("bad payload %s", cli.payload)
	}
}

func TestPublisherTimeout(t *testing.T) {
	cli := &fakeClient{token: &fakeToken{timeout: true}}
	withFakeClient(t, cli)

	pub, err := New(Config{Enabled: true, Broker: "tcp://broker:1883"})
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	if err := pub.Publish([]byte("x")); err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Enabled: true}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing broker")
	}
	cfg.Broker = "tcp://broker:1883"
	cfg.Topic = "plans"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	disabled := Config{}
	if err := disabled.Validate(); err != nil {
		t.Fatalf("disabled config should validate: %v", err)
	}
}

// Package sink publishes animation frames to an MQTT broker.
package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/san-kum/glide/internal/config"
	"github.com/san-kum/glide/internal/logging"
	"github.com/san-kum/glide/internal/sim"
)

var (
	ErrTimeout = errors.New("sink: broker timed out")
	ErrNoTopic = errors.New("sink: no topic configured")
)

const DefaultTimeout = 5 * time.Second

// Client is the part of mqtt.Client the publisher uses.
type Client interface {
	Connect() mqtt.Token
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// Frame is the JSON payload of one published sample.
type Frame struct {
	Scenario string  `json:"scenario"`
	Time     float64 `json:"t"`
	Value    float64 `json:"value"`
	Target   float64 `json:"target"`
	Records  int     `json:"records"`
	Status   string  `json:"status"`
}

func Encode(scenario string, s sim.Sample) ([]byte, error) {
	return json.Marshal(Frame{
		Scenario: scenario,
		Time:     s.Time.Seconds(),
		Value:    s.Value,
		Target:   s.Target,
		Records:  s.Records,
		Status:   s.Status.String(),
	})
}

type Publisher struct {
	client   Client
	topic    string
	qos      byte
	retained bool
	timeout  time.Duration
	log      logging.Logger
}

type Option func(*Publisher)

func WithLogger(l logging.Logger) Option {
	return func(p *Publisher) { p.log = l }
}

func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) { p.timeout = d }
}

// NewPublisher wraps a connected client.
func NewPublisher(client Client, cfg config.MQTTConfig, opts ...Option) (*Publisher, error) {
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}
	p := &Publisher{
		client:   client,
		topic:    cfg.Topic,
		qos:      cfg.QoS,
		retained: cfg.Retained,
		timeout:  DefaultTimeout,
		log:      logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Dial connects to the configured broker.
func Dial(cfg config.MQTTConfig, opts ...Option) (*Publisher, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = config.DefaultClientID
	}
	options := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetConnectTimeout(DefaultTimeout).
		SetAutoReconnect(true)

	p, err := NewPublisher(mqtt.NewClient(options), cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.wait(p.client.Connect()); err != nil {
		return nil, fmt.Errorf("sink: connect %s: %w", cfg.Broker, err)
	}
	p.log.Info("connected to broker", "broker", cfg.Broker, "topic", p.topic)
	return p, nil
}

func (p *Publisher) wait(tok mqtt.Token) error {
	if !tok.WaitTimeout(p.timeout) {
		return ErrTimeout
	}
	return tok.Error()
}

// Publish sends one sample and waits for the broker.
func (p *Publisher) Publish(scenario string, s sim.Sample) error {
	payload, err := Encode(scenario, s)
	if err != nil {
		return err
	}
	if err := p.wait(p.client.Publish(p.topic, p.qos, p.retained, payload)); err != nil {
		return fmt.Errorf("sink: publish to %s: %w", p.topic, err)
	}
	return nil
}

// Observer publishes every sample it sees. Failures are logged and counted
// rather than stopping the run.
func (p *Publisher) Observer(scenario string, failures *int) sim.ObserverFunc {
	return func(s sim.Sample) {
		if err := p.Publish(scenario, s); err != nil {
			if failures != nil {
				*failures++
			}
			p.log.Warn("publish failed", "error", err, "t", s.Time)
		}
	}
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
	p.log.Debug("disconnected from broker")
}

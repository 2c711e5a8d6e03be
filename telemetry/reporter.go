// Package telemetry implements rdm.FaultReporter by publishing bus-driver
// faults to an MQTT broker, for a responder wired to a network uplink
// alongside its RS-485 port (a gateway/bridge deployment rather than a
// bare standalone fixture).
package telemetry

import (
	"context"
	"strconv"
	"time"

	mqtt "github.com/soypat/natiu-mqtt"
)

// Reporter publishes ReportFault calls as QoS0 MQTT messages under a
// per-device fault topic; the retain flag is not set. It never blocks the
// poll loop on a slow broker: ReportFault enqueues onto a small ring and a
// background Run loop (or Drain) does the actual publish.
type Reporter struct {
	client *mqtt.Client
	topic  string

	pending chan faultMsg
}

type faultMsg struct {
	at  time.Time
	err error
}

// Config configures a Reporter.
type Config struct {
	Client     *mqtt.Client
	DeviceUID  string
	QueueDepth int // default 8
}

// New builds a Reporter publishing to "rdm/<DeviceUID>/fault".
func New(cfg Config) *Reporter {
	depth := cfg.QueueDepth
	if depth == 0 {
		depth = 8
	}
	return &Reporter{
		client:  cfg.Client,
		topic:   "rdm/" + cfg.DeviceUID + "/fault",
		pending: make(chan faultMsg, depth),
	}
}

// ReportFault satisfies rdm.FaultReporter. A full queue drops the oldest
// fault rather than blocking the caller — the poll loop must never stall
// waiting on network I/O.
func (r *Reporter) ReportFault(err error) {
	msg := faultMsg{at: nowStub(), err: err}
	select {
	case r.pending <- msg:
	default:
		<-r.pending
		r.pending <- msg
	}
}

// nowStub exists so ReportFault has a timestamp source that doesn't reach
// into the responder's own Clock collaborator — telemetry is a peripheral
// concern, not a dispatch-path dependency.
var nowStub = time.Now

// Run drains pending faults and publishes each as a QoS0 PUBLISH, until ctx
// is canceled. Call this from its own goroutine on a platform that has
// one; a bare-metal single-goroutine build instead calls Drain from its
// poll loop.
func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m := <-r.pending:
			if err := r.publish(m); err != nil {
				return err
			}
		}
	}
}

// Drain publishes every fault currently queued without blocking, for
// callers without a spare goroutine to run Run in.
func (r *Reporter) Drain() error {
	for {
		select {
		case m := <-r.pending:
			if err := r.publish(m); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (r *Reporter) publish(m faultMsg) error {
	payload := strconv.FormatInt(m.at.Unix(), 10) + " " + m.err.Error()
	var pub mqtt.PublishFlags
	if err := pub.SetQoS(mqtt.QoS0); err != nil {
		return err
	}
	return r.client.PublishPayload(pub, mqtt.VariablesPublish{
		TopicName: []byte(r.topic),
	}, []byte(payload))
}

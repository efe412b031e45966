package provisioning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEvent(t *testing.T) {
	o := NewConsoleObserver()

	msg := o.formatEvent(Event{
		Type:     EventResourceCreated,
		Stage:    "bootstrap",
		Resource: "nf-vpc",
		Message:  "network created",
	})

	assert.Contains(t, msg, "resource.created")
	assert.Contains(t, msg, "[bootstrap]")
	assert.Contains(t, msg, "resource=nf-vpc")
	assert.Contains(t, msg, "network created")
}

func TestFormatEvent_WithFields(t *testing.T) {
	o := NewConsoleObserver()

	msg := o.formatEvent(Event{
		Type:    EventProgress,
		Message: "polling",
		Fields:  map[string]string{"status": "PROVISIONING"},
	})

	assert.Contains(t, msg, "status=PROVISIONING")
}

func TestWithFields_InheritsContext(t *testing.T) {
	base := NewConsoleObserver()
	scoped, ok := base.WithFields(map[string]string{"project": "nf-test-1"}).(*ConsoleObserver)
	assert.True(t, ok)
	assert.Equal(t, "nf-test-1", scoped.contextFields["project"])

	// The parent observer is unchanged.
	assert.Empty(t, base.contextFields)
}

func TestStateRecordAndLookup(t *testing.T) {
	s := NewState()
	s.Record("compute-instance", "nf-dev-instance", map[string]string{"status": "RUNNING"})

	assert.Equal(t, "RUNNING", s.Attribute("compute-instance", "nf-dev-instance", "status"))
	assert.Empty(t, s.Attribute("compute-instance", "nf-all-in-one", "status"))
	assert.Nil(t, s.Observed("network", "nf-vpc"))
}

func TestEventTimestampDefaulted(t *testing.T) {
	// Event with explicit timestamp keeps it; formatEvent does not use it,
	// but Event() must not panic on either form.
	o := NewConsoleObserver()
	o.Event(Event{Type: EventStageStarted, Stage: "bootstrap", Message: "starting"})
	o.Event(Event{Type: EventStageCompleted, Stage: "bootstrap", Message: "done", Timestamp: time.Now()})
}

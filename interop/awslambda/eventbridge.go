package awslambda

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/sudzxd/azure-functions-test/bindings"
)

// DefaultScheduleRuleARN is the rule reported by scheduled events.
const DefaultScheduleRuleARN = "arn:aws:events:" + DefaultRegion + ":" + DefaultAccountID + ":rule/test-schedule"

const (
	cloudWatchVersion    = "0"
	scheduledEventSource = "aws.events"
	scheduledEventType   = "Scheduled Event"
)

type scheduleDetail struct {
	PastDue  bool           `json:"pastDue"`
	Schedule map[string]any `json:"schedule,omitempty"`
}

// CloudWatchEvent converts an Event Grid event into an EventBridge event. The
// event type becomes detail-type, the topic the source, the subject the only
// resource and the data payload the detail.
func CloudWatchEvent(e bindings.EventGridEvent) (events.CloudWatchEvent, error) {
	detail, err := json.Marshal(e.GetJSON())
	if err != nil {
		return events.CloudWatchEvent{}, fmt.Errorf("failed to encode event data: %w", err)
	}

	return events.CloudWatchEvent{
		Version:    cloudWatchVersion,
		ID:         e.ID(),
		DetailType: e.EventType(),
		Source:     e.Topic(),
		AccountID:  DefaultAccountID,
		Time:       timeOrZero(e.EventTime()),
		Region:     DefaultRegion,
		Resources:  []string{e.Subject()},
		Detail:     detail,
	}, nil
}

// ScheduledEvent converts a timer invocation into an EventBridge scheduled
// event fired at the Last occurrence. The past-due flag and the schedule
// configuration travel in the detail.
func ScheduledEvent(r bindings.TimerRequest) (events.CloudWatchEvent, error) {
	detail, err := json.Marshal(scheduleDetail{
		PastDue:  r.PastDue(),
		Schedule: r.Schedule(),
	})
	if err != nil {
		return events.CloudWatchEvent{}, fmt.Errorf("failed to encode schedule: %w", err)
	}

	return events.CloudWatchEvent{
		Version:    cloudWatchVersion,
		ID:         fmt.Sprintf("scheduled-%d", r.ScheduleStatus()[bindings.ScheduleLast].Unix()),
		DetailType: scheduledEventType,
		Source:     scheduledEventSource,
		AccountID:  DefaultAccountID,
		Time:       r.ScheduleStatus()[bindings.ScheduleLast],
		Region:     DefaultRegion,
		Resources:  []string{DefaultScheduleRuleARN},
		Detail:     detail,
	}, nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

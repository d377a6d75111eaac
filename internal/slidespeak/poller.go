package slidespeak

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/logger"
)

const pollerService = "slidespeak_poller"

// OutcomeState is the terminal state of one submit-and-wait run.
type OutcomeState string

const (
	// OutcomeSubmitFailed means the submission call failed or its
	// response carried no task id; nothing was polled.
	OutcomeSubmitFailed OutcomeState = "SUBMIT_FAILED"
	// OutcomeSucceeded means the task reached SUCCESS while polling.
	OutcomeSucceeded OutcomeState = "SUCCEEDED"
	// OutcomeFailed means the task reached FAILED while polling.
	OutcomeFailed OutcomeState = "FAILED"
	// OutcomeTimedOut means the local deadline elapsed first. The
	// remote task may still be running.
	OutcomeTimedOut OutcomeState = "TIMED_OUT"
)

// Outcome is the structured result of SubmitAndWait. The tool layer
// renders it into the message returned to the calling agent.
type Outcome struct {
	State  OutcomeState
	TaskID string

	// Result holds the success payload: the task's result if non-empty,
	// otherwise the entire status document.
	Result any
	// Reason holds the remote failure description for OutcomeFailed.
	Reason string
	// Raw holds the offending response for OutcomeSubmitFailed when a
	// response arrived but carried no task id. Nil when the submission
	// call itself failed.
	Raw any

	Polls   int
	Elapsed time.Duration
}

// Poller drives one generation job from submission to a terminal
// outcome: POST the payload, extract the task id, then poll the status
// endpoint until the task finishes or the generation deadline elapses.
type Poller struct {
	client *Client
}

// NewPoller creates a Poller on top of an API client.
func NewPoller(client *Client) *Poller {
	return &Poller{client: client}
}

// SubmitAndWait submits payload to the generation endpoint and polls
// the task until it succeeds, fails, or the generation deadline
// elapses. The submission itself runs under the full generation
// deadline since the remote service may block on it; each poll uses the
// shorter poll timeout. A failed poll is logged and retried on the next
// interval rather than aborting the job.
func (p *Poller) SubmitAndWait(ctx context.Context, endpoint string, payload any) Outcome {
	lg := logger.New(pollerService, uuid.NewString())
	opts := p.client.opts

	lg.WithPayload(map[string]interface{}{"endpoint": endpoint}).Info("submitting generation request")
	submitted, err := p.client.Request(ctx, http.MethodPost, endpoint, payload, opts.GenerationTimeout)
	if err != nil {
		lg.WithError(models.ErrorInfo{Message: err.Error()}).Error("generation request failed")
		return Outcome{State: OutcomeSubmitFailed}
	}

	taskID := taskIDOf(submitted)
	if taskID == "" {
		lg.WithPayload(map[string]interface{}{"response": submitted}).Error("generation response did not contain a task id")
		return Outcome{State: OutcomeSubmitFailed, Raw: submitted}
	}

	lg.WithPayload(map[string]interface{}{"task_id": taskID}).Info("generation initiated, polling for completion")

	start := time.Now()
	polls := 0

	for time.Since(start) < opts.GenerationTimeout {
		polls++
		status, err := p.client.TaskStatus(ctx, taskID)
		if err != nil {
			// One missed poll is not fatal; the next interval retries.
			lg.WithPayload(map[string]interface{}{"task_id": taskID, "poll": polls}).
				Warn("failed to fetch task status, will retry")
		} else if outcome, done := p.classify(status, taskID, lg); done {
			outcome.Polls = polls
			outcome.Elapsed = time.Since(start)
			return outcome
		}

		select {
		case <-ctx.Done():
			lg.WithPayload(map[string]interface{}{"task_id": taskID, "polls": polls}).
				Warn("context cancelled while waiting for task")
			return Outcome{State: OutcomeTimedOut, TaskID: taskID, Polls: polls, Elapsed: time.Since(start)}
		case <-time.After(opts.PollInterval):
		}
	}

	lg.WithPayload(map[string]interface{}{
		"task_id": taskID,
		"polls":   polls,
		"elapsed": time.Since(start).String(),
	}).Warn("generation deadline elapsed, giving up locally")

	return Outcome{State: OutcomeTimedOut, TaskID: taskID, Polls: polls, Elapsed: time.Since(start)}
}

// classify inspects one status document. done is true only for
// terminal states; unknown or in-progress states keep the loop going.
func (p *Poller) classify(status any, taskID string, lg *logger.Logger) (Outcome, bool) {
	doc, ok := status.(map[string]any)
	if !ok {
		lg.WithPayload(map[string]interface{}{"task_id": taskID, "response": status}).
			Warn("task status response is not an object")
		return Outcome{}, false
	}

	rawState, _ := doc["task_status"].(string)
	state := models.ParseTaskState(rawState)

	switch {
	case state == models.TaskSuccess:
		result := doc["task_result"]
		if emptyResult(result) {
			result = status
		}
		lg.WithPayload(map[string]interface{}{"task_id": taskID}).Info("task completed successfully")
		return Outcome{State: OutcomeSucceeded, TaskID: taskID, Result: result}, true

	case state == models.TaskFailed:
		reason := "Unknown error"
		if payload, ok := doc["task_result"].(map[string]any); ok {
			if v, present := payload["error"]; present {
				reason = fmt.Sprint(v)
			}
		}
		lg.WithError(models.ErrorInfo{Message: reason, Type: "task_failed"}).
			WithPayload(map[string]interface{}{"task_id": taskID}).
			Error("task failed remotely")
		return Outcome{State: OutcomeFailed, TaskID: taskID, Reason: reason}, true

	case state.InProgress():
		lg.WithPayload(map[string]interface{}{"task_id": taskID, "status": string(state)}).
			Debug("task still in progress")
		return Outcome{}, false

	default:
		lg.WithPayload(map[string]interface{}{"task_id": taskID, "status": rawState}).
			Warn("task reported an unknown status, continuing to poll")
		return Outcome{}, false
	}
}

// taskIDOf extracts a non-empty task_id from a submission response.
// Anything else (missing field, wrong type, non-object response) means
// there is no usable task id.
func taskIDOf(response any) string {
	doc, ok := response.(map[string]any)
	if !ok {
		return ""
	}
	id, _ := doc["task_id"].(string)
	return id
}

// emptyResult reports whether a task_result carries nothing worth
// returning on its own.
func emptyResult(v any) bool {
	switch r := v.(type) {
	case nil:
		return true
	case string:
		return r == ""
	case map[string]any:
		return len(r) == 0
	case []any:
		return len(r) == 0
	default:
		return false
	}
}

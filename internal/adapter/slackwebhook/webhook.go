package slackwebhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"aws-health-notifier/internal/domain/model"
	"aws-health-notifier/internal/domain/ports"
)

const (
	headline     = ":helmet_with_white_cross: AWS Health notification"
	detailsLabel = "Click here for details"
	maxRedirects = 10
)

// Webhook is a Slack incoming-webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Slack webhook notifier. A zero timeout leaves the client without one.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout, CheckRedirect: checkRedirect},
		logger:     logger,
	}
}

// Payload is the exact wire body posted to the webhook.
type Payload struct {
	Channel string       `json:"channel"`
	Blocks  slack.Blocks `json:"blocks"`
}

// Send posts the message to Slack in a single attempt. A non-2xx answer is
// reported as *model.StatusError; transport failures return the underlying cause.
func (w *Webhook) Send(ctx context.Context, message model.Message) error {
	body, err := json.Marshal(RenderMessage(message))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return transportError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &model.StatusError{Code: resp.StatusCode, Reason: reasonPhrase(resp)}
	}

	w.logger.Debug(ctx, "notification sent to slack", "channel", message.Channel, "status", resp.StatusCode)
	return nil
}

// RenderMessage builds the Block Kit payload: a headline section carrying the
// bold description and a section with the details link.
func RenderMessage(message model.Message) Payload {
	summary := slack.NewTextBlockObject(slack.MarkdownType,
		fmt.Sprintf("%s\n\n*%s*", headline, message.Description), false, false)
	link := slack.NewTextBlockObject(slack.MarkdownType,
		fmt.Sprintf("<%s|%s>", message.DetailsURL, detailsLabel), false, false)

	return Payload{
		Channel: message.Channel,
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewSectionBlock(summary, nil, nil),
				slack.NewSectionBlock(link, nil, nil),
			},
		},
	}
}

// checkRedirect follows 301/302/303 (which the client replays as GET) but
// stops on 307/308 so a POST body is never resent. The redirect response is
// then reported as a status error.
func checkRedirect(req *http.Request, via []*http.Request) error {
	if req.Response != nil {
		switch req.Response.StatusCode {
		case http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
			return http.ErrUseLastResponse
		}
	}
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	return nil
}

// transportError strips the *url.Error wrapper so the reason names the cause
// (DNS, refused connection, TLS) rather than repeating the webhook URL.
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

package sender

import (
	"context"
	"fmt"
	"net/http"

	commonmq "autopile/app/common/mq"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

// Sender delivers one rendered email message.
type Sender interface {
	Send(ctx context.Context, msg commonmq.EmailMessage) error
}

// New returns a webhook-backed sender, or a log-only sender when no endpoint
// is configured.
func New(endpoint, apiKey, from string) Sender {
	if endpoint == "" {
		return &logSender{}
	}
	return &webhookSender{endpoint: endpoint, apiKey: apiKey, from: from}
}

type webhookSender struct {
	endpoint string
	apiKey   string
	from     string
}

type sendRequest struct {
	Authorization string            `header:"Authorization"`
	From          string            `json:"from"`
	To            string            `json:"to"`
	Subject       string            `json:"subject"`
	Template      string            `json:"template"`
	Params        map[string]string `json:"params,omitempty"`
}

func (s *webhookSender) Send(ctx context.Context, msg commonmq.EmailMessage) error {
	req := sendRequest{
		Authorization: "Bearer " + s.apiKey,
		From:          s.from,
		To:            msg.To,
		Subject:       msg.Subject,
		Template:      msg.Template,
		Params:        msg.Params,
	}
	resp, err := httpc.Do(ctx, http.MethodPost, s.endpoint+"/v1/send", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("mail service returned status %d", resp.StatusCode)
	}
	return nil
}

type logSender struct{}

func (s *logSender) Send(ctx context.Context, msg commonmq.EmailMessage) error {
	logx.WithContext(ctx).Infof("email (log-only): to=%s subject=%q template=%s", msg.To, msg.Subject, msg.Template)
	return nil
}

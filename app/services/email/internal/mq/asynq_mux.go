package mq

import (
	"context"
	"encoding/json"

	commonmq "autopile/app/common/mq"
	"autopile/app/services/email/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// NewMux registers the email task handlers. A returned error makes asynq
// retry the task with backoff.
func NewMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(commonmq.TaskSendEmail, func(ctx context.Context, t *asynq.Task) error {
		var msg commonmq.EmailMessage
		if err := json.Unmarshal(t.Payload(), &msg); err != nil {
			logx.Errorf("drop undecodable email task: %v", err)
			return nil
		}
		if err := sc.Sender.Send(ctx, msg); err != nil {
			logx.Errorf("send email to %s: %v", msg.To, err)
			return err
		}
		return nil
	})
	return mux
}

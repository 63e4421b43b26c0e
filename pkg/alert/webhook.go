package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/pkg/config"
)

// Message is the payload accepted by the team chat robot.
type Message struct {
	Msgtype string `json:"msgtype"`
	Text    struct {
		Content string `json:"content"`
	} `json:"text"`
}

type webhookRobot struct {
	address string
}

func newWebhookRobot() alertHandlerInterface {
	return &webhookRobot{
		address: config.GetConfig().Notify.WebhookAddress,
	}
}

// SendMessageTo posts a text message to the chat webhook. The subject and
// receiver collapse into the message body, the robot has no addressing.
func (w *webhookRobot) SendMessageTo(ctx context.Context, user *model.User, subject, body string) error {
	msg := Message{Msgtype: "text"}
	msg.Text.Content = fmt.Sprintf("[%s] %s: %s", subject, user.DisplayName, body)

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.address, bytes.NewBuffer(msgBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	return nil
}

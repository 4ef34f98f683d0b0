// Package webhook forwards voice recordings and chat messages to the
// automation workflow and turns whatever it answers into a single message.
package webhook

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"FITTRACK_BACK-END/internal/config"
	"FITTRACK_BACK-END/internal/observability"
)

// Voice upload encodings
const (
	ModeMultipart = "multipart"
	ModeJSON      = "json"
)

const (
	kindVoice = "voice"
	kindChat  = "chat"

	maxResponseBytes = 1 << 20
	defaultFilename  = "voice-message.webm"
	defaultMimeType  = "application/octet-stream"

	emptyChatReply  = "Thank you for your message!"
	emptyVoiceReply = "Thank you for your voice message!"
	// VoiceFallbackReply is returned when no voice webhook answered.
	VoiceFallbackReply = "I received your voice message! While I'm having trouble processing voice right now, feel free to type your questions. I'm here to help with fitness advice, workout plans, and motivation!"
)

// VoiceMessage is one recorded clip plus who recorded it.
type VoiceMessage struct {
	Audio     []byte
	Filename  string
	MimeType  string
	UserID    string
	Username  string
	Timestamp time.Time
}

// Reply is the message shown to the user.
type Reply struct {
	Message string
	// Fallback is set when every URL failed and the reply was produced locally.
	Fallback bool
}

// Client posts to an ordered list of webhook URLs. Each URL is tried once;
// there is no retry or backoff beyond moving on to the next URL.
type Client struct {
	httpClient *http.Client
	voiceURLs  []string
	chatURLs   []string
	mode       string
	pick       func(n int) int
}

// NewClient creates a new Client from the webhook configuration
func NewClient(cfg config.WebhookConfig) *Client {
	mode := cfg.Mode
	if mode == "" {
		mode = ModeMultipart
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		voiceURLs:  cfg.VoiceURLs,
		chatURLs:   cfg.ChatURLs,
		mode:       mode,
		pick:       rand.IntN,
	}
}

// SendVoice forwards a recording. It never fails: when no URL answers, the
// fixed voice fallback reply is returned.
func (c *Client) SendVoice(ctx context.Context, msg VoiceMessage) Reply {
	if msg.Filename == "" {
		msg.Filename = defaultFilename
	}
	if msg.MimeType == "" {
		msg.MimeType = defaultMimeType
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	body, contentType, err := c.encodeVoice(msg)
	if err != nil {
		log.Printf("webhook: encode voice message: %v", err)
		observability.RecordWebhookFallback(kindVoice)
		return Reply{Message: VoiceFallbackReply, Fallback: true}
	}

	if text, ok := c.tryURLs(ctx, kindVoice, c.voiceURLs, contentType, body); ok {
		if text == "" {
			text = emptyVoiceReply
		}
		return Reply{Message: text}
	}

	observability.RecordWebhookFallback(kindVoice)
	return Reply{Message: VoiceFallbackReply, Fallback: true}
}

// SendChat forwards a typed message. When no URL answers, a canned reply
// matched on keywords in the message is returned.
func (c *Client) SendChat(ctx context.Context, text string) Reply {
	body, err := json.Marshal(map[string]string{
		"chatInput": text,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"type":      "text",
	})
	if err == nil {
		if answer, ok := c.tryURLs(ctx, kindChat, c.chatURLs, "application/json", body); ok {
			if answer == "" {
				answer = emptyChatReply
			}
			return Reply{Message: answer}
		}
	}

	observability.RecordWebhookFallback(kindChat)
	return Reply{Message: MockReply(text, c.pick), Fallback: true}
}

func (c *Client) encodeVoice(msg VoiceMessage) ([]byte, string, error) {
	ts := msg.Timestamp.UTC().Format(time.RFC3339)

	if c.mode == ModeJSON {
		body, err := json.Marshal(map[string]string{
			"audio":     base64.StdEncoding.EncodeToString(msg.Audio),
			"mime_type": msg.MimeType,
			"filename":  msg.Filename,
			"user_id":   msg.UserID,
			"username":  msg.Username,
			"timestamp": ts,
			"type":      "voice",
		})
		return body, "application/json", err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="data"; filename=%q`, msg.Filename))
	h.Set("Content-Type", msg.MimeType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(msg.Audio); err != nil {
		return nil, "", err
	}

	fields := [][2]string{
		{"timestamp", ts},
		{"type", "voice"},
		{"user_id", msg.UserID},
		{"username", msg.Username},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}

// tryURLs posts body to each URL in order and returns the first answer.
func (c *Client) tryURLs(ctx context.Context, kind string, urls []string, contentType string, body []byte) (string, bool) {
	for _, url := range urls {
		text, err := c.post(ctx, url, contentType, body)
		if err != nil {
			log.Printf("webhook: %s via %s failed: %v", kind, url, err)
			observability.RecordWebhookAttempt(kind, observability.OutcomeFailure)
			if ctx.Err() != nil {
				return "", false
			}
			continue
		}
		observability.RecordWebhookAttempt(kind, observability.OutcomeSuccess)
		return text, true
	}
	return "", false
}

func (c *Client) post(ctx context.Context, url, contentType string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, truncate(strings.TrimSpace(string(data)), 200))
	}
	return ExtractMessage(data), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

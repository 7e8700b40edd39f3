package notify

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"zumpfinanc/internal/config"
)

func TestFromConfig(t *testing.T) {
	d, err := FromConfig(config.NotifyConfig{})
	if err != nil || d != nil {
		t.Fatalf("FromConfig(empty) = %v, %v; want nil, nil", d, err)
	}

	if _, err := FromConfig(config.NotifyConfig{DiscordWebhookID: "123"}); err == nil {
		t.Error("FromConfig without token: error = nil, want error")
	}

	d, err = FromConfig(config.NotifyConfig{DiscordWebhookID: "123", DiscordWebhookToken: "abc"})
	if err != nil || d == nil {
		t.Fatalf("FromConfig(full) = %v, %v", d, err)
	}
	if d.webhookID != "123" || d.token != "abc" {
		t.Errorf("webhook = %q/%q", d.webhookID, d.token)
	}
}

func TestDiscord_EmptyMessageIsSkipped(t *testing.T) {
	d, err := NewDiscord("123", "abc")
	if err != nil {
		t.Fatalf("NewDiscord() error = %v", err)
	}
	// no request is made for a blank message
	if err := d.Notify(context.Background(), "   "); err != nil {
		t.Errorf("Notify(blank) error = %v", err)
	}
}

func TestClip(t *testing.T) {
	if got := clip("short", 10); got != "short" {
		t.Errorf("clip short = %q", got)
	}

	// multi-byte characters stay whole
	msg := strings.Repeat("é", maxContent+5)
	got := clip(msg, maxContent)
	if !utf8.ValidString(got) {
		t.Fatal("clip produced invalid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != maxContent {
		t.Errorf("clip length = %d runes, want %d", n, maxContent)
	}
}

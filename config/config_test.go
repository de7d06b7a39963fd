package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got, err := Parse(nil)
		if err != nil {
			t.Fatal(err)
		}

		want := Config{
			DatabaseURL:       "postgresql://root@127.0.0.1:26257/defaultdb?sslmode=disable",
			Port:              4444,
			RequestTimeout:    10 * time.Second,
			ShutdownTimeout:   15 * time.Second,
			BackgroundTimeout: 5 * time.Second,
			CreateRoomRate:    10,
			CreateRoomBurst:   5,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("flags", func(t *testing.T) {
		got, err := Parse([]string{"-p", "8080", "--database-url", "kvdb://hanghub.db", "--create-room-rate", "0"})
		if err != nil {
			t.Fatal(err)
		}

		if got.Port != 8080 || got.DatabaseURL != "kvdb://hanghub.db" || got.CreateRoomRate != 0 {
			t.Errorf("unexpected config %+v", got)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("HANGHUB_NATS_URL", "nats://127.0.0.1:4222")
		t.Setenv("HANGHUB_REQUEST_TIMEOUT", "3s")

		got, err := Parse(nil)
		if err != nil {
			t.Fatal(err)
		}

		if got.NATSURL != "nats://127.0.0.1:4222" || got.RequestTimeout != 3*time.Second {
			t.Errorf("unexpected config %+v", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := Parse([]string{"--port", "not-a-port"}); err == nil {
			t.Error("expected error")
		}
	})
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type Config struct {
	DatabaseURL       string        `ff:"long: database-url, default: postgresql://root@127.0.0.1:26257/defaultdb?sslmode=disable, usage: CockroachDB URL or kvdb://path for an embedded bbolt file"`
	Port              uint32        `ff:"long: port, short: p, default: 4444, usage: Port for the HTTP server"`
	NATSURL           string        `ff:"long: nats-url, usage: NATS server URL for room events (in-process when empty)"`
	RequestTimeout    time.Duration `ff:"long: request-timeout, default: 10s, usage: Timeout for non streaming HTTP requests"`
	ShutdownTimeout   time.Duration `ff:"long: shutdown-timeout, default: 15s, usage: Timeout for graceful shutdown"`
	BackgroundTimeout time.Duration `ff:"long: background-timeout, default: 5s, usage: Timeout for background event publishing"`
	CreateRoomRate    int           `ff:"long: create-room-rate, default: 10, usage: Room creations per minute per client IP (0 disables)"`
	CreateRoomBurst   int           `ff:"long: create-room-burst, default: 5, usage: Room creation burst per client IP"`
}

func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse(os.Args[1:])
}

func Parse(args []string) (Config, error) {
	var cfg Config
	fs := ff.NewFlagSetFrom("hanghub", &cfg)
	err := ff.Parse(fs, args, ff.WithEnvVarPrefix("HANGHUB"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Println(ffhelp.Flags(fs))
		os.Exit(0)
	}

	return cfg, err
}

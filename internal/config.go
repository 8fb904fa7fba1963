package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host string `env:"HOST,default=localhost"`
	Port int    `env:"PORT,default=8080"`

	LogLevel       string `env:"LOG_LEVEL,required=true"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`

	CharReplacement string `env:"CHARACTER_REPLACEMENT,required=true"`
	LimitMessages   *int   `env:"LIMIT_MESSAGES"`
	SearchLimit     int    `env:"SEARCH_LIMIT,default=20"`

	VerificationCodeTTL time.Duration `env:"VERIFICATION_CODE_TTL,default=10m"`
	CodeSweepInterval   time.Duration `env:"CODE_SWEEP_INTERVAL,default=1m"`

	DebugPort   int  `env:"DEBUG_PORT,default=8090"`
	EnableDebug bool `env:"ENABLE_DEBUG,default=false"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

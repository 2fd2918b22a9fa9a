//go:build integration

package testingh

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/timeline/internal/logger"
	"github.com/zestagio/timeline/internal/validator"
)

var Config config

type config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"required,oneof=debug info warn error"`

	PostgresAddress  string `envconfig:"PSQL_ADDRESS" default:"localhost:5432" validate:"required,hostname_port"`
	PostgresUser     string `envconfig:"PSQL_USER" validate:"required"`
	PostgresPassword string `envconfig:"PSQL_PASSWORD" validate:"required"`
	PostgresDebug    bool   `envconfig:"PSQL_DEBUG" default:"false"`

	KafkaAddress string `envconfig:"KAFKA_ADDRESS" default:"localhost:9092" validate:"required,hostname_port"`
}

func init() {
	if err := envconfig.Process("TEST", &Config); err != nil {
		panic(fmt.Sprintf("parse testing config: %v", err))
	}

	if err := validator.Validator.Struct(Config); err != nil {
		panic(fmt.Sprintf("validate testing config: %v", err))
	}

	logger.MustInit(logger.NewOptions(Config.LogLevel))
}

package config

import "time"

type Config struct {
	Global   GlobalConfig   `toml:"global"`
	Log      LogConfig      `toml:"log"`
	Sentry   SentryConfig   `toml:"sentry"`
	Servers  ServersConfig  `toml:"servers"`
	Stores   StoresConfig   `toml:"stores"`
	Services ServicesConfig `toml:"services"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Debug DebugServerConfig `toml:"debug"`
}

type DebugServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
}

// StoresConfig selects the message storage backend. Only the section of the chosen driver is used.
type StoresConfig struct {
	Driver string       `toml:"driver" validate:"required,oneof=postgres sqlite badger memory"`
	PSQL   PSQLConfig   `toml:"psql"`
	SQLite SQLiteConfig `toml:"sqlite"`
	Badger BadgerConfig `toml:"badger"`
}

type PSQLConfig struct {
	Addr     string `toml:"addr" validate:"omitempty,hostname_port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	Debug    bool   `toml:"debug"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

type BadgerConfig struct {
	Dir string `toml:"dir"`
}

type ServicesConfig struct {
	MsgProducer           MsgProducerConfig           `toml:"msg_producer"`
	PostRequestsProcessor PostRequestsProcessorConfig `toml:"post_requests_processor"`
}

type MsgProducerConfig struct {
	Enabled    bool     `toml:"enabled"`
	Brokers    []string `toml:"brokers" validate:"required_if=Enabled true,dive,hostname_port"`
	Topic      string   `toml:"topic" validate:"required_if=Enabled true"`
	BatchSize  int      `toml:"batch_size" validate:"omitempty,min=1"`
	EncryptKey string   `toml:"encrypt_key" validate:"omitempty,hexadecimal"`
}

type PostRequestsProcessorConfig struct {
	Brokers                []string      `toml:"brokers" validate:"min=1,dive,hostname_port"`
	Consumers              int           `toml:"consumers" validate:"min=1,max=16"`
	ConsumerGroup          string        `toml:"consumer_group" validate:"required"`
	RequestsTopic          string        `toml:"requests_topic" validate:"required"`
	DLQTopic               string        `toml:"dlq_topic" validate:"required"`
	BatchSize              int           `toml:"batch_size" validate:"omitempty,min=1"`
	BackoffInitialInterval time.Duration `toml:"backoff_initial_interval" validate:"omitempty,min=50ms,max=1s"`
	BackoffMaxElapsedTime  time.Duration `toml:"backoff_max_elapsed_time" validate:"omitempty,min=500ms,max=1m"`
}

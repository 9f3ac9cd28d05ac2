package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env    Env
	Minio  MinioConfig
	Upload FileUploadConfig
	Trash  TrashConfig
	NATS   NATSConfig
	Mongo  MongoConfig
	Server ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type MinioConfig struct {
	Endpoint          string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName        string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey         string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey         string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	SignedURLDuration time.Duration `envconfig:"MINIO_SIGNED_URL_DURATION" default:"1h"`
	UseSSL            bool          `envconfig:"MINIO_USE_SSL" default:"false"`
}

type FileUploadConfig struct {
	MaxSize   int64 `envconfig:"UPLOAD_MAX_SIZE" default:"104857600"`  // 100MB
	MaxMemory int64 `envconfig:"UPLOAD_MAX_MEMORY" default:"33554432"` // 32MB
}

type TrashConfig struct {
	Retention  time.Duration `envconfig:"TRASH_RETENTION" default:"720h"`
	PurgeEvery time.Duration `envconfig:"TRASH_PURGE_EVERY" default:"1h"`
}

type NATSConfig struct {
	Enabled        bool          `envconfig:"NATS_ENABLED" default:"false"`
	URL            string        `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	ClientName     string        `envconfig:"NATS_CLIENT_NAME" default:"workspace-drive"`
	StreamName     string        `envconfig:"NATS_STREAM_NAME" default:"FILES"`
	SubjectPrefix  string        `envconfig:"NATS_SUBJECT_PREFIX" default:"files"`
	PublishTimeout time.Duration `envconfig:"NATS_PUBLISH_TIMEOUT" default:"2s"`
}

type MongoConfig struct {
	URI            string        `envconfig:"MONGO_URI" required:"true"`
	Database       string        `envconfig:"MONGO_DATABASE" required:"true"`
	Collection     string        `envconfig:"MONGO_COLLECTION" default:"files"`
	MaxPoolSize    uint64        `envconfig:"MONGO_MAX_POOL_SIZE" default:"25"`
	MinPoolSize    uint64        `envconfig:"MONGO_MIN_POOL_SIZE" default:"5"`
	ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"5s"`
}

// Load reads an optional .env file then processes the environment
func Load() (*Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

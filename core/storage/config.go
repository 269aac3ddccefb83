package storage

// Config points at the S3 compatible store holding parameter documents and exports.
type Config struct {
	// Endpoint is host:port; an http:// or https:// prefix is stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds documents/ and exports/.
	Bucket string `mapstructure:"bucket" default:"parameters"`
	// Region is used when the bucket has to be created.
	Region string `mapstructure:"region" default:""`
	// CreateBucket lets startup create a missing bucket instead of running without storage.
	CreateBucket bool `mapstructure:"create_bucket" default:"true"`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

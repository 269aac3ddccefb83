package document

// Config selects the parameter document a host session starts from.
type Config struct {
	// Source is a file path, or an object key when FromBucket is set.
	Source string `mapstructure:"source" default:"parameters.yaml"`
	// FromBucket reads Source from the storage bucket instead of the filesystem.
	FromBucket bool `mapstructure:"from_bucket" default:"false"`
	// CacheTTLSeconds keeps fetched bucket documents for this long. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

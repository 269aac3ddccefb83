package reconcile

const (
	// DefaultPlugName names the plug of an unnamed top-level compound parameter.
	DefaultPlugName = "parameters"

	// DefaultExcludeKey is the user data flag that opts a parameter out of plugs.
	DefaultExcludeKey = "noHostMapping"
)

// component identifies this package in log entries.
const component = "reconcile.CompoundAdapter"

// Config controls naming and exclusion policy.
type Config struct {
	// DefaultPlugName replaces an empty compound parameter name.
	DefaultPlugName string `mapstructure:"default_plug_name" default:"parameters"`
	// ExcludeKey is the boolean user data key that excludes a parameter.
	ExcludeKey string `mapstructure:"exclude_key" default:"noHostMapping"`
}

// withDefaults fills empty fields.
func (c Config) withDefaults() Config {
	if c.DefaultPlugName == "" {
		c.DefaultPlugName = DefaultPlugName
	}
	if c.ExcludeKey == "" {
		c.ExcludeKey = DefaultExcludeKey
	}
	return c
}

package config

// RedisConfig contains Redis configuration for the shared identity
// cache. When Enabled is false the service falls back to an in-process
// cache, which is fine for a single instance.
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

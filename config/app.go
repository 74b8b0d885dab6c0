package config

type App struct {
	Port        string `env:"APP_PORT" default:"5000"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	Env         string `env:"APP_ENV" default:"dev"`
}

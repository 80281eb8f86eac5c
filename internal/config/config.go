package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Backend Backend `envPrefix:"BACKEND_"`
	Session Session `envPrefix:"SESSION_"`
}

type Backend struct {
	BaseURL string `env:"BASE_URL"`
}

type Session struct {
	DBPath string `env:"DB_PATH" envDefault:"./admin-session.db"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Templates struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"templates"`
	Render struct {
		Mode       string        `mapstructure:"mode"`
		ChromePath string        `mapstructure:"chrome_path"`
		Timeout    time.Duration `mapstructure:"timeout"`
	} `mapstructure:"render"`
	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
}

// LoadConfig reads .env, then an optional config.yaml from path, then the
// environment. Later sources win.
func LoadConfig(path string) (cfg Config, err error) {
	if err := godotenv.Load(); err != nil {
		log.Println("note: .env file not found, using environment only")
	}

	v := viper.New()
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.env", "development")
	v.SetDefault("templates.dir", "templates")
	v.SetDefault("render.mode", "print")
	v.SetDefault("render.timeout", 60*time.Second)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("app.port", "PORT")
	_ = v.BindEnv("app.env", "APP_ENV")
	_ = v.BindEnv("db.dsn", "CV_DATABASE_URL")
	_ = v.BindEnv("templates.dir", "TEMPLATES_DIR")
	_ = v.BindEnv("render.mode", "RASTERIZER")
	_ = v.BindEnv("render.chrome_path", "CHROME_PATH")
	_ = v.BindEnv("render.timeout", "EXPORT_TIMEOUT")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")

	err = v.Unmarshal(&cfg)
	return
}

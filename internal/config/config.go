package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	Admin struct {
		APIKey       string   `mapstructure:"api_key"`
		EmailMarkers []string `mapstructure:"email_markers"`
		NameMarkers  []string `mapstructure:"name_markers"`
	} `mapstructure:"admin"`
	App struct {
		RecommendLimit int `mapstructure:"recommend_limit"`
		SessionLimit   int `mapstructure:"session_limit"`
	} `mapstructure:"app"`
	Chatbot struct {
		AgentURL       string `mapstructure:"agent_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"chatbot"`
	Mailer struct {
		Type string `mapstructure:"type"`
		From string `mapstructure:"from"`
	} `mapstructure:"mailer"`
	SES  SESConfig `mapstructure:"ses"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("admin.api_key", "ADMIN_API_KEY")
	viper.BindEnv("chatbot.agent_url", "CHATBOT_AGENT_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.App.RecommendLimit <= 0 {
		Cfg.App.RecommendLimit = 5
	}
	if Cfg.App.SessionLimit <= 0 {
		Cfg.App.SessionLimit = 10
	}
	if Cfg.Chatbot.TimeoutSeconds <= 0 {
		Cfg.Chatbot.TimeoutSeconds = 10
	}
	if len(Cfg.Admin.EmailMarkers) == 0 {
		Cfg.Admin.EmailMarkers = []string{"admin", "demo"}
	}
	if len(Cfg.Admin.NameMarkers) == 0 {
		Cfg.Admin.NameMarkers = []string{"admin", "administrator"}
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// Auth defaults to enabled unless explicitly switched off.
	if !viper.IsSet("auth.enabled") {
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	return nil
}

package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (default), TEST, QA, PROD
	AppName  string
	Build    string

	RollbarToken string

	// StateDir holds the local client state (session, settings, credit journal).
	StateDir string

	API struct {
		BaseURL string
		Timeout time.Duration
	}

	Credit struct {
		InterviewCost  int
		AssessmentCost int
	}
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "FeedAQ Academy")
	v.SetDefault("build", "dev")
	v.SetDefault("apiUrl", "http://localhost:3000")
	v.SetDefault("apiTimeout", 30*time.Second)
	v.SetDefault("stateDir", defaultStateDir())
	v.SetDefault("interviewCost", 50)
	v.SetDefault("assessmentCost", 20)

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     env == "TEST",
		Env:          env,
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		StateDir:     v.GetString("stateDir"),
	}
	conf.API.BaseURL = strings.TrimRight(v.GetString("apiUrl"), "/")
	conf.API.Timeout = v.GetDuration("apiTimeout")
	conf.Credit.InterviewCost = v.GetInt("interviewCost")
	conf.Credit.AssessmentCost = v.GetInt("assessmentCost")
	return conf
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "feedaq")
}

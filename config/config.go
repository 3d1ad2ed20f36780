package config

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	Trace                                    bool
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig reads ./config.yaml once. A missing file leaves the
// defaults in place; a malformed one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		v := newViper()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
			log.Warnln("config.yaml not found, using defaults")
		}
		config = fromViper(v)
	})

	return config
}

// LoadSchedulerConfig reads the yaml file at path.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return fromViper(v), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.trace", false)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{7, 14})
	return v
}

func fromViper(v *viper.Viper) *SchedulerConfig {
	return &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		LogLevel:                                 v.GetString("log_level"),
		Trace:                                    v.GetBool("scheduler.trace"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
	}
}

// ConfigureLogger applies the configured level to the standard logrus logger.
func (c *SchedulerConfig) ConfigureLogger() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

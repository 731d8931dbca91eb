package config

import "time"

type Todos struct {
	DeletedRetention time.Duration `env:"DELETED_RETENTION,expand" envDefault:"120h"`
}

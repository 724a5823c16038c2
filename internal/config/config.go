package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	DBPath    string `envconfig:"DB_PATH" default:"jdga.db"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./web/static"`

	// Course dataset source: an http(s) URL or a local file path.
	CourseData string `envconfig:"COURSE_DATA" default:"./data/us_courses.csv"`

	// Handicap lookup page, %s replaced by the player registration number.
	HCPLookupURL string `envconfig:"HCP_LOOKUP_URL" default:"https://www.golfhandicaps.example/player/%s"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

package env

import (
	"strconv"
	"strings"

	"github.com/ducksouplab/ridgeplot/helpers"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	TimeFormat = "20060102-150405.000"
)

var LogStdout bool
var LogLevel, StoreSize int
var Login, LogFile, Mode, OutputDir, Password, Port, StyleFile, WebPrefix string
var AllowedOrigins []string

func init() {
	Mode = helpers.GetenvOr("RIDGEPLOT_MODE", "PROD")
	if Mode == "DEV" {
		if err := godotenv.Load(".env"); err != nil {
			log.Error().Err(err).Str("context", "init").Msg("dotenv_not_loaded")
		}
	}
	// bools
	LogStdout = helpers.GetenvBool("RIDGEPLOT_LOG_STDOUT")

	// ints
	var err error
	LogLevel, err = strconv.Atoi(helpers.Getenv("RIDGEPLOT_LOG_LEVEL"))
	if err != nil {
		LogLevel = 2
	}
	// rendered figures kept in memory by the server, oldest evicted first
	StoreSize, err = strconv.Atoi(helpers.Getenv("RIDGEPLOT_STORE_SIZE"))
	if err != nil || StoreSize < 1 {
		StoreSize = 64
	}

	// strings
	LogFile = helpers.Getenv("RIDGEPLOT_LOG_FILE")
	Port = helpers.Getenv("RIDGEPLOT_PORT")
	if len(Port) < 2 {
		Port = "8300"
	}
	// for instance "/path" if the server is reachable at https://host/path
	WebPrefix = helpers.GetenvOr("RIDGEPLOT_WEB_PREFIX", "")
	// basic auth is disabled when login is empty
	Login = helpers.Getenv("RIDGEPLOT_LOGIN")
	Password = helpers.Getenv("RIDGEPLOT_PASSWORD")
	StyleFile = helpers.Getenv("RIDGEPLOT_STYLE_FILE")
	OutputDir = helpers.GetenvOr("RIDGEPLOT_OUTPUT_DIR", ".")
	// CORS origins for the HTTP API
	originsUnsplit := helpers.Getenv("RIDGEPLOT_ALLOWED_ORIGINS")
	if len(originsUnsplit) > 0 {
		AllowedOrigins = append(AllowedOrigins, strings.Split(originsUnsplit, ",")...)
	}
	if Mode == "DEV" {
		AllowedOrigins = append(AllowedOrigins, "http://localhost:"+Port)
	}

	// other global configuration
	configureGlobalLogger(LogLevel)
}

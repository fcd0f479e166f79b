package shared

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/l3montree-dev/updatehub/database"
	"github.com/l3montree-dev/updatehub/utils"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func SanitizeParam(s string) string {
	// remove trailing or leading slashes
	return strings.Trim(s, "/")
}

func DatabaseFactory() (DB, error) {
	db, err := database.NewConnection(os.Getenv("POSTGRES_HOST"), os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD"), os.Getenv("POSTGRES_DB"), os.Getenv("POSTGRES_PORT"))

	return db, err
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
// this is obviously not required, but it makes the logs easier to read.
func InitLogger() {
	w := os.Stderr

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
			// CI log collectors choke on the escape sequences
			NoColor: utils.RunsInCI(),
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// GetActor returns the identity the session layer injected into the request.
// Session handling itself lives outside this service.
func GetActor(c Context) string {
	return c.Request().Header.Get("X-Updatehub-User")
}

func GetParam(c Context, name string) string {
	return SanitizeParam(c.Param(name))
}

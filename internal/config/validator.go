package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EnvSchemaVersion is the .env layout this build reads. Bump it when a
// variable is renamed or removed.
const EnvSchemaVersion = "1.0"

// Placeholders shipped in the example environment file.
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks a loaded configuration. An error means the bot cannot
// start; warnings describe settings that work but are probably unintended.
func (c *Config) Validate() ([]string, error) {
	switch c.EnvSchemaVersion {
	case EnvSchemaVersion:
	case "":
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s)", EnvSchemaVersion)
	default:
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s; the .env file is outdated", EnvSchemaVersion, c.EnvSchemaVersion)
	}

	if err := configValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			problems = append(problems, describeFieldError(fe))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return c.warnings(), nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "numeric":
		return fe.Field() + " must be numeric"
	case "min", "gt", "gte":
		return fmt.Sprintf("%s must be %s %s", fe.Field(), comparison(fe.Tag()), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is not a valid %s", fe.Field(), fe.Tag())
	}
}

func comparison(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}

func (c *Config) warnings() []string {
	var warnings []string
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the example value; set a real password")
	}
	switch c.APIKey {
	case ExampleAPIKey:
		warnings = append(warnings, "API_KEY is the example value; generate one with: openssl rand -hex 32")
	case "":
		warnings = append(warnings, "API_KEY is not set; /api/v1 accepts unauthenticated requests")
	}
	if c.DefaultGuildName == "" {
		warnings = append(warnings, "WARMANE_GUILD_NAME is not set; role sync only runs for guilds with a stored configuration")
	}
	if c.RedisAddr == "" {
		warnings = append(warnings, "REDIS_ADDR is not set; roster cache and sync cooldowns are per process")
	}
	if c.ReminderLead < c.ReminderInterval {
		warnings = append(warnings, fmt.Sprintf("REMINDER_LEAD (%s) is shorter than REMINDER_INTERVAL (%s); some raids may get no reminder", c.ReminderLead, c.ReminderInterval))
	}
	return warnings
}

/*
Package warden initializes and manages a waymark app with sane defaults.

# Warden

The main entrypoint to package warden is the [Warden] type.
A [Warden] ought to be constructed with [New].

[New] verifies every family in the configured registry before handing the
[Warden] back, so a defective catalog declaration stops the application
from booting rather than surfacing later as a wrong lookup.

A constructed [Warden] exposes its components through the Emit methods and
resolves the active configuration with [*Warden.Settings] and
[*Warden.ProfileSettings].

# Configuration

A developer configures a waymark app through environment variables
and by passing [WardenOption]s to [New].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - CONFIG_FILE: the YAML file stored settings are read from and written to; default: waymark.yml
  - DATABASE_HOST: the host the database is running on; default: localhost
  - DATABASE_NAME: the name of the database
  - DATABASE_PASSWORD: the password for authenticating a connection to the database
  - DATABASE_PORT: the port the database is listening on; default: 5432
  - DATABASE_SSLMODE: the sslmode to open database connections with; default: prefer
  - DATABASE_URL: the fully-qualified connection string for connecting to the database; replaces all other DATABASE_* env vars
  - DATABASE_USER: the user for authenticating a connection to the database
  - ENVIRONMENT: the environment the application is running in; cf. [waymark.Environment]
  - LOCALE: the BCP 47 tag of the language labels resolve into; default: en
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - SENTRY_DSN: a Sentry DSN for forwarding warnings and errors; cf. [logger.NewSentryLogger]
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]

The DATABASE_TEST_* set mirrors DATABASE_* for the database integration
tests use; confer [NewPostgresConfig].
*/
package warden

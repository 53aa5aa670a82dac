// Package config provides the startup settings for the story API.
//
// Settings are read from environment variables. Any variable the environment
// does not define is looked up in a local env file (.env in the working
// directory by default), which never overrides the environment. Names are
// case-sensitive.
//
// # Settings
//
//   - API_PREFIX: path prefix for API routes (default "/api")
//   - DEBUG: debug mode, accepts true/false, 1/0, yes/no, on/off (default false)
//   - DATABASE_URI: database connection string (required)
//   - ALLOWED_ORIGINS: comma-separated CORS origins (default "")
//   - OPENAI_API_KEY: OpenAI API key (required)
//
// # Usage
//
// Construct the settings once at process entry and pass them to the
// components that need them:
//
//	settings, err := config.Get()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	origins := settings.AllowedOriginsList()
//
// Every missing or malformed setting is reported at once in a *config.Error,
// which matches ErrMissingField and ErrInvalidValue with errors.Is.
package config

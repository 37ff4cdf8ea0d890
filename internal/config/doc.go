// Package config manages application configuration for the content API.
//
// Configuration is loaded from environment variables (optionally seeded
// from a .env file by the server entry point) and validated once at
// startup. Services receive the validated config by injection; required
// credentials and database identifiers are never re-checked per request.
//
// # Environment Variables
//
//	SERVER_PORT                 HTTP server port (default: 8080)
//	SERVER_ENV                  development | production | test
//	CORS_ALLOWED_ORIGINS        comma-separated list of allowed origins
//	NOTION_API_KEY              content store credential (required)
//	NOTION_DATABASE_NOTICES     database identifier per content type
//	NOTION_DATABASE_ACTIVITIES  (all six identifiers are required)
//	NOTION_DATABASE_PROGRAMS
//	NOTION_DATABASE_BUSINESS
//	NOTION_DATABASE_BANNERS
//	NOTION_DATABASE_ABOUT
//	ASSET_ALLOWED_HOSTS         optional host suffixes the relay may fetch from
package config

// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "maori-dictionary"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort        = ":8080"
	DefaultDatabaseDriver    = "postgres"
	DefaultLogLevel          = "info"
	DefaultSessionTTL        = 24 * time.Hour
	DefaultSessionCookieName = "dictionary_session"
)

package config

import (
	"time"

	"github.com/spf13/viper"
)

type WarningLevel struct {
	// Level is the ordinal position of this level in the ladder. Level 0 always
	// means "no warnings".
	Level int
	Name  string
	// Length is how long warnings given on this level stay in effect. Zero means forever.
	Length time.Duration
}

type Configuration struct {
	// Name of the forum.
	Name string
	// Addr is the address the HTTP server listens on.
	Addr string
	// DbUrl is the path to the database file.
	DbUrl string
	// MigrationsFolder holds the SQL migrations applied on setup.
	MigrationsFolder string
	// AvatarsRoot is the directory where uploaded avatar images are kept.
	AvatarsRoot string
	// StaticDir is the directory on which the favicon, stylesheet and other static files can be found.
	StaticDir string
	// SessionKey is the secret used by the cookie session manager.
	SessionKey string
	// OnlineCutoff is how long after their last click a user still counts as online.
	OnlineCutoff time.Duration
	// WarningLevels is the ordered warning ladder, starting at level 0.
	WarningLevels []WarningLevel
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
}

func ReadConfig() (Configuration, error) {
	viper.SetConfigName("agora")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/agora")

	viper.SetDefault("name", "Agora")
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("db_url", "agora.db")
	viper.SetDefault("migrations_folder", "migrations")
	viper.SetDefault("avatars_root", "avatars")
	viper.SetDefault("static_dir", "static")
	viper.SetDefault("session_key", "")
	viper.SetDefault("online_cutoff", "15m")
	viper.SetDefault("debug", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Configuration{}, err
		}
	}

	cfg := Configuration{
		Name:             viper.GetString("name"),
		Addr:             viper.GetString("addr"),
		DbUrl:            viper.GetString("db_url"),
		MigrationsFolder: viper.GetString("migrations_folder"),
		AvatarsRoot:      viper.GetString("avatars_root"),
		StaticDir:        viper.GetString("static_dir"),
		SessionKey:       viper.GetString("session_key"),
		OnlineCutoff:     viper.GetDuration("online_cutoff"),
		Debug:            viper.GetBool("debug"),
	}

	cfg.WarningLevels = readWarningLevels()
	return cfg, nil
}

// readWarningLevels loads the configured warning ladder. Level 0 is always
// present; the rest can be overriden in the config file.
func readWarningLevels() []WarningLevel {
	levels := []WarningLevel{{Level: 0, Name: "No warnings"}}

	var configured []struct {
		Name   string
		Length time.Duration
	}
	if err := viper.UnmarshalKey("warning_levels", &configured); err != nil || len(configured) == 0 {
		return append(levels,
			WarningLevel{Level: 1, Name: "Watched", Length: 14 * 24 * time.Hour},
			WarningLevel{Level: 2, Name: "Moderated", Length: 14 * 24 * time.Hour},
			WarningLevel{Level: 3, Name: "Silenced"},
		)
	}

	for i, l := range configured {
		levels = append(levels, WarningLevel{
			Level:  i + 1,
			Name:   l.Name,
			Length: l.Length,
		})
	}
	return levels
}

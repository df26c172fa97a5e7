package config

const (
	defaultDataFile            = "~/.local/share/rechub/data.json"
	defaultCacheDir            = "~/.cache/rechub"
	defaultLogDir              = "~/.local/share/rechub/logs"
	defaultBind                = "127.0.0.1:7680"
	defaultAniListURL          = "https://graphql.anilist.co"
	defaultAniListTimeout      = 10
	defaultTMDBBaseURL         = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL    = "https://image.tmdb.org/t/p/w500"
	defaultTMDBLanguage        = "en-US"
	defaultTMDBTimeoutSeconds  = 10
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataFile: defaultDataFile,
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
			Bind:     defaultBind,
		},
		AniList: AniList{
			URL:            defaultAniListURL,
			TimeoutSeconds: defaultAniListTimeout,
		},
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			ImageBaseURL:   defaultTMDBImageBaseURL,
			Language:       defaultTMDBLanguage,
			TimeoutSeconds: defaultTMDBTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

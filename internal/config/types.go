package config

// Config holds all configuration for the application.
type Config struct {
	DBName     string
	Port       string
	Discord    DiscordConfig
	Codeforces CodeforcesConfig
	Turso      TursoConfig
	// ProjectID enables duel event publishing when set.
	ProjectID string
}

type DiscordConfig struct {
	Token string
}

type CodeforcesConfig struct {
	BaseURL string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

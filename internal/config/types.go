package config

// Config is the top-level campusbot configuration, corresponding to .campusbot.yml.
type Config struct {
	AgentName      string       `yaml:"agent_name" koanf:"agent_name"`
	UserName       string       `yaml:"user_name" koanf:"user_name"`
	ExitPhrases    []string     `yaml:"exit_phrases" koanf:"exit_phrases"`
	KnowledgeFiles []string     `yaml:"knowledge_files" koanf:"knowledge_files"`
	Seed           uint64       `yaml:"seed" koanf:"seed"`
	LogLevel       string       `yaml:"log_level" koanf:"log_level"`
	Server         ServerConfig `yaml:"server" koanf:"server"`
	Slack          SlackConfig  `yaml:"slack" koanf:"slack"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// SlackConfig holds Slack bot settings. An empty signing secret disables
// request verification.
type SlackConfig struct {
	SigningSecret string `yaml:"signing_secret" koanf:"signing_secret"`
}

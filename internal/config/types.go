package config

// Config is the optional .qedit/config.yml file.
type Config struct {
	Version int          `yaml:"version"`
	UI      UIConfig     `yaml:"ui"`
	Export  ExportConfig `yaml:"export"`
	Score   ScoreConfig  `yaml:"score"`
}

// UIConfig configures the editor surface.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// ExportConfig configures where exports land.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// ScoreConfig bounds the score editor and range filter.
type ScoreConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

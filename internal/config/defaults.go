package config

func Defaults() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Export: ExportConfig{
			Title:      "Signal backup",
			TimeFormat: "2006-01-02 15:04",
		},
	}
}

package config

import "strings"

func (c *Config) normalize() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColorMode
	}

	if path := strings.TrimSpace(c.Logging.Path); path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return err
		}
		c.Logging.Path = expanded
	} else {
		c.Logging.Path = ""
	}

	return nil
}

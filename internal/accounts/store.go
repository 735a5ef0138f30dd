package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Mohamed-68/pnl-report/internal/logging"
	"github.com/Mohamed-68/pnl-report/internal/parsererror"
)

// classificationFile mirrors the accounts.yaml layout:
//
//	groups:
//	  revenue: ["4001", "4002"]
//	  cogs:    ["5001"]
//	ranges:
//	  - group: opex
//	    from: 6000
//	    to: 6999
type classificationFile struct {
	Groups map[string][]string `yaml:"groups"`
	Ranges []struct {
		Group string `yaml:"group"`
		From  int    `yaml:"from"`
		To    int    `yaml:"to"`
	} `yaml:"ranges"`
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself, ./config/, then $HOME/.config/pnl-report/.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "pnl-report", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadClassifier loads an account classification from a YAML file, resolving
// the path through the standard config locations.
func LoadClassifier(filename string) (*Classifier, error) {
	filePath, err := FindConfigFile(filename)
	if err != nil {
		return nil, fmt.Errorf("accounts file %s not found: %w", filename, err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path resolved from config locations
	if err != nil {
		return nil, fmt.Errorf("error reading accounts file: %w", err)
	}

	classifier, err := ParseClassifier(data)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", filePath, err)
	}

	log.Info("Loaded account classification", logging.F(logging.FieldFile, filePath))
	return classifier, nil
}

// ParseClassifier builds a classifier from YAML classification data.
func ParseClassifier(data []byte) (*Classifier, error) {
	var file classificationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid accounts YAML: %w", err)
	}

	if len(file.Groups) == 0 && len(file.Ranges) == 0 {
		return nil, &parsererror.ValidationError{
			Source: "accounts configuration",
			Reason: "no groups or ranges defined",
		}
	}

	c := &Classifier{exact: make(map[string]Group)}
	for rawGroup, codes := range file.Groups {
		group, err := ParseGroup(rawGroup)
		if err != nil {
			return nil, err
		}
		for _, code := range codes {
			c.exact[code] = group
		}
	}

	for _, r := range file.Ranges {
		group, err := ParseGroup(r.Group)
		if err != nil {
			return nil, err
		}
		if r.From > r.To {
			return nil, &parsererror.ValidationError{
				Source: "accounts configuration",
				Reason: fmt.Sprintf("range %d-%d for group %s is inverted", r.From, r.To, r.Group),
			}
		}
		c.ranges = append(c.ranges, rangeRule{Group: group, From: r.From, To: r.To})
	}

	return c, nil
}

package redaxios

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileDefaults is the on-disk shape for instance defaults. Only data-bearing
// options are representable; function-valued options (transforms, serializer,
// validateStatus, transport) are set in code.
type fileDefaults struct {
	URL             string            `json:"url" yaml:"url"`
	Method          string            `json:"method" yaml:"method"`
	BaseURL         string            `json:"baseUrl" yaml:"baseUrl"`
	Headers         map[string]string `json:"headers" yaml:"headers"`
	Params          map[string]string `json:"params" yaml:"params"`
	ResponseType    string            `json:"responseType" yaml:"responseType"`
	WithCredentials bool              `json:"withCredentials" yaml:"withCredentials"`
	Auth            string            `json:"auth" yaml:"auth"`
	XSRFCookieName  string            `json:"xsrfCookieName" yaml:"xsrfCookieName"`
	XSRFHeaderName  string            `json:"xsrfHeaderName" yaml:"xsrfHeaderName"`
	Extra           map[string]any    `json:"extra" yaml:"extra"`
}

// LoadDefaults reads an instance default configuration from a YAML or JSON
// file, keyed off the file extension (.json decodes as JSON, everything else
// as YAML).
func LoadDefaults(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file: %w", err)
	}

	var fd fileDefaults
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(raw, &fd); err != nil {
			return nil, fmt.Errorf("parsing defaults file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(raw, &fd); err != nil {
			return nil, fmt.Errorf("parsing defaults file %s: %w", path, err)
		}
	}

	switch fd.ResponseType {
	case "", "text", "json", "stream":
	default:
		return nil, fmt.Errorf("defaults file %s: unknown responseType %q", path, fd.ResponseType)
	}

	cfg := &Config{
		URL:             fd.URL,
		Method:          fd.Method,
		BaseURL:         fd.BaseURL,
		Params:          fd.Params,
		ResponseType:    fd.ResponseType,
		WithCredentials: fd.WithCredentials,
		Auth:            fd.Auth,
		XSRFCookieName:  fd.XSRFCookieName,
		XSRFHeaderName:  fd.XSRFHeaderName,
		Extra:           fd.Extra,
	}
	if fd.Headers != nil {
		cfg.Headers = make(Headers, len(fd.Headers))
		for name, value := range fd.Headers {
			cfg.Headers.Set(name, value)
		}
	}
	return cfg, nil
}

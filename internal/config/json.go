package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations so that operators can write "30s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Client struct {
		BaseURL        string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
		DBPath         string   `json:"db_path"`
	} `json:"client,omitempty"`

	Push struct {
		PingInterval          Duration `json:"ping_interval"`
		InitialReconnectDelay Duration `json:"initial_reconnect_delay"`
		MaxReconnectDelay     Duration `json:"max_reconnect_delay"`
	} `json:"push,omitempty"`

	Netmon struct {
		ProbeInterval Duration `json:"probe_interval"`
		ProbeTimeout  Duration `json:"probe_timeout"`
	} `json:"netmon,omitempty"`

	Workers struct {
		InitialBackoff Duration `json:"initial_backoff"`
		MaxBackoff     Duration `json:"max_backoff"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Client: Client{
			BaseURL:        jsonCfg.Client.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
			DBPath:         jsonCfg.Client.DBPath,
		},
		Push: Push{
			PingInterval:          time.Duration(jsonCfg.Push.PingInterval),
			InitialReconnectDelay: time.Duration(jsonCfg.Push.InitialReconnectDelay),
			MaxReconnectDelay:     time.Duration(jsonCfg.Push.MaxReconnectDelay),
		},
		Netmon: Netmon{
			ProbeInterval: time.Duration(jsonCfg.Netmon.ProbeInterval),
			ProbeTimeout:  time.Duration(jsonCfg.Netmon.ProbeTimeout),
		},
		Workers: Workers{
			InitialBackoff: time.Duration(jsonCfg.Workers.InitialBackoff),
			MaxBackoff:     time.Duration(jsonCfg.Workers.MaxBackoff),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

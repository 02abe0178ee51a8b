package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseMetric reads a keyword metric encoded as a JSON number, a numeric
// JSON string or null. Null, absent and blank values yield nil.
func ParseMetric(raw []byte) (*float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil, nil
	}
	if strings.HasPrefix(s, `"`) {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return nil, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UnmarshalJSON accepts the metric fields as numbers or numeric strings;
// registries written by older tooling stored whatever the keyword tool
// returned. Metrics are always written back as numbers.
func (p *Page) UnmarshalJSON(data []byte) error {
	type plain Page
	aux := struct {
		*plain
		HaloscanVolume json.RawMessage `json:"haloscan_volume"`
		HaloscanKD     json.RawMessage `json:"haloscan_kd"`
		HaloscanCPC    json.RawMessage `json:"haloscan_cpc"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if p.HaloscanVolume, err = ParseMetric(aux.HaloscanVolume); err != nil {
		return fmt.Errorf("haloscan_volume: %w", err)
	}
	if p.HaloscanKD, err = ParseMetric(aux.HaloscanKD); err != nil {
		return fmt.Errorf("haloscan_kd: %w", err)
	}
	if p.HaloscanCPC, err = ParseMetric(aux.HaloscanCPC); err != nil {
		return fmt.Errorf("haloscan_cpc: %w", err)
	}
	return nil
}

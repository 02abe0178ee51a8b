package api

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"seo-pages-go/pkg/catalog"
)

//go:embed schema/haloscan-response.yaml
var responseSchemaYAML []byte

var responseSchema = mustCompileSchema(responseSchemaYAML)

// mustCompileSchema converts a YAML schema to JSON for gojsonschema.
func mustCompileSchema(doc []byte) *gojsonschema.Schema {
	var data interface{}
	if err := yaml.Unmarshal(doc, &data); err != nil {
		panic(fmt.Sprintf("api: invalid response schema: %v", err))
	}
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("api: invalid response schema: %v", err))
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(jsonBytes))
	if err != nil {
		panic(fmt.Sprintf("api: invalid response schema: %v", err))
	}
	return schema
}

type haloscanResponse struct {
	Results []struct {
		Volume     json.RawMessage `json:"volume"`
		AllInTitle json.RawMessage `json:"allintitle"`
		CPC        json.RawMessage `json:"cpc"`
	} `json:"results"`
}

// ResponseParser turns a Haloscan "highlights" document into KeywordMetrics.
type ResponseParser struct{}

func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// ParseResponse validates body and returns the metrics of the first result,
// or nil when the result list is empty or missing. Numbers may be encoded as
// JSON strings.
func (p *ResponseParser) ParseResponse(body []byte) (*KeywordMetrics, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrMalformedResponse)
	}

	if err := p.ValidateResponse(body); err != nil {
		return nil, err
	}

	var resp haloscanResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v (response: %s)", ErrMalformedResponse, err, snippet(body))
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	top := resp.Results[0]
	var (
		m   KeywordMetrics
		err error
	)
	if m.Volume, err = catalog.ParseMetric(top.Volume); err != nil {
		return nil, fmt.Errorf("%w: volume: %v", ErrMalformedResponse, err)
	}
	if m.AllInTitle, err = catalog.ParseMetric(top.AllInTitle); err != nil {
		return nil, fmt.Errorf("%w: allintitle: %v", ErrMalformedResponse, err)
	}
	if m.CPC, err = catalog.ParseMetric(top.CPC); err != nil {
		return nil, fmt.Errorf("%w: cpc: %v", ErrMalformedResponse, err)
	}
	return &m, nil
}

// ValidateResponse checks body against the response schema.
func (p *ResponseParser) ValidateResponse(body []byte) error {
	result, err := responseSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v (response: %s)", ErrMalformedResponse, err, snippet(body))
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			msgs = append(msgs, verr.String())
		}
		return fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(msgs, "; "))
	}
	return nil
}

func snippet(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit])
	}
	return string(body)
}

package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type airlineSeries struct {
	Name   string
	Series seriesDTO
}

// seriesByAirline encodes as an object keyed by airline name, in the
// dataset's airline order rather than sorted by key.
type seriesByAirline []airlineSeries

// Get returns the series exported for the named airline.
func (s seriesByAirline) Get(name string) (seriesDTO, bool) {
	for _, e := range s {
		if e.Name == name {
			return e.Series, true
		}
	}
	return seriesDTO{}, false
}

func (s seriesByAirline) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Series)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *seriesByAirline) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil {
		return err
	} else if tok != json.Delim('{') {
		return fmt.Errorf("airline data: want object, got %v", tok)
	}
	var out seriesByAirline
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var e airlineSeries
		e.Name = name
		if err := dec.Decode(&e.Series); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, e)
	}
	*s = out
	return nil
}

func (s seriesByAirline) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range s {
		var v yaml.Node
		if err := v.Encode(e.Series); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name}, &v)
	}
	return node, nil
}

func (s *seriesByAirline) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("airline data: want mapping, line %d", node.Line)
	}
	out := make(seriesByAirline, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		e := airlineSeries{Name: node.Content[i].Value}
		if err := node.Content[i+1].Decode(&e.Series); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		out = append(out, e)
	}
	*s = out
	return nil
}

package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// object is a JSON object that keeps its keys in column order
type object struct {
	keys   []string
	values []interface{}
}

func orderedObject(keys []string, values []interface{}) json.Marshaler {
	return object{keys: keys, values: values}
}

// MarshalJSON implements json.Marshaler
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// yamlObject builds a mapping node that keeps its keys in column order
func yamlObject(keys []string, values []interface{}) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, key := range keys {
		value := yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if values[i] != nil {
			if err := value.Encode(values[i]); err != nil {
				value = yaml.Node{Kind: yaml.ScalarNode, Value: cell(values[i], "")}
			}
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&value,
		)
	}
	return node
}

func yamlList(headers []string, rows [][]interface{}) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.SequenceNode,
		Content: lo.Map(rows, func(row []interface{}, _ int) *yaml.Node {
			return yamlObject(headers, row)
		}),
	}
}

func writeYAML(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

// writeCSV writes rows as comma separated records
func writeCSV(w io.Writer, rows [][]interface{}) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		record := lo.Map(row, func(v interface{}, _ int) string { return cell(v, "") })
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

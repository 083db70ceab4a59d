package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/enumkit/config"
	"github.com/c360studio/enumkit/enum"
)

// render writes a vocabulary's ordered variants in the requested format.
func render(w io.Writer, set enum.Interface, format config.Format) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, set)
	case config.FormatYAML:
		return renderYAML(w, set)
	default:
		return renderTable(w, set)
	}
}

func renderTable(w io.Writer, set enum.Interface) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVALUE")
	for _, v := range set.Variants() {
		fmt.Fprintf(tw, "%s\t%v\n", v.Name, v.Value)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, set enum.Interface) error {
	data, err := json.MarshalIndent(set.Variants(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", set.Name(), err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderYAML(w io.Writer, set enum.Interface) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range set.Variants() {
		var key, val yaml.Node
		if err := key.Encode(v.Name); err != nil {
			return fmt.Errorf("encode %s: %w", set.Name(), err)
		}
		if err := val.Encode(v.Value); err != nil {
			return fmt.Errorf("encode %s: %w", set.Name(), err)
		}
		node.Content = append(node.Content, &key, &val)
	}

	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("encode %s: %w", set.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

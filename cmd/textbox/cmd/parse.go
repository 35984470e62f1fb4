package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/textbox/foundation/core/log"
	"github.com/msto63/textbox/foundation/utils/textbox"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		from       string
		to         string
		schemaPath string
	)

	parseCmd := &cobra.Command{
		Use:   "parse [TEXT...]",
		Short: "Convert structured text",
		Long: `Parses TEXT, or standard input, as JSON, YAML or TOML and prints it as
JSON or YAML with the original key order. With --schema the document is
validated against a JSON Schema first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromFormat, err := textbox.ParseFormat(from)
			if err != nil {
				return errors.WithHint(err, "--from accepts json, yaml or toml")
			}
			toName := strings.ToLower(strings.TrimSpace(to))
			if toName == "" {
				toName = a.cfg.GetString("output.format")
			}
			toFormat, err := textbox.ParseFormat(toName)
			if err != nil || toFormat == textbox.FormatTOML {
				return errors.WithHint(
					errors.Newf("unsupported output format %q", toName),
					"--to accepts json or yaml")
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			tb := textbox.New(text)

			m, err := tb.ToStructuredArrayAs(fromFormat)
			if err != nil {
				return err
			}

			if schemaPath != "" {
				if err := validate(m, schemaPath); err != nil {
					return err
				}
				a.logger.Debug("schema validation passed", log.String("schema", schemaPath))
			}

			out, err := render(m, toFormat)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	parseCmd.Flags().StringVarP(&from, "from", "f", "json", "input format: json, yaml or toml")
	parseCmd.Flags().StringVarP(&to, "to", "t", "", "output format: json or yaml (default: output.format)")
	parseCmd.Flags().StringVar(&schemaPath, "schema", "", "JSON Schema file to validate against")
	return parseCmd
}

// validate checks the parsed document against the schema file. The
// document is re-encoded as JSON so YAML and TOML input can be validated.
func validate(m *textbox.OrderedMap, schemaPath string) error {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return errors.Wrapf(err, "read schema %s", schemaPath)
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	return textbox.New(doc).ValidateStructured(string(schema))
}

func render(m *textbox.OrderedMap, format textbox.Format) (string, error) {
	if format == textbox.FormatYAML {
		node, err := yamlNode(m)
		if err != nil {
			return "", err
		}
		out, err := yaml.Marshal(node)
		if err != nil {
			return "", errors.Wrap(err, "encode YAML")
		}
		return string(out), nil
	}

	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode JSON")
	}
	return string(out) + "\n", nil
}

// yamlNode builds a node tree so YAML output keeps the key order
func yamlNode(v any) (*yaml.Node, error) {
	switch vv := v.(type) {
	case *textbox.OrderedMap:
		if vv.IsList() {
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, item := range vv.Values() {
				child, err := yamlNode(item)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, child)
			}
			return node, nil
		}
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range vv.Keys() {
			value, _ := vv.Get(key)
			child, err := yamlNode(value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				child)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, errors.Wrapf(err, "encode %T", v)
		}
		return node, nil
	}
}

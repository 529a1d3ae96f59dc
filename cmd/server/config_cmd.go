package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/site-server/internal/config"
	"github.com/preston-bernstein/site-server/internal/option"
)

type getOptions struct {
	valueType string
	def       string
	separator string
}

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration resolved from the environment",
	}
	cmd.AddCommand(newConfigGetCmd(root), newConfigKeysCmd(root))
	return cmd
}

func newConfigGetCmd(root *rootOptions) *cobra.Command {
	opts := &getOptions{}
	cmd := &cobra.Command{
		Use:   "get KEY [REPLACEMENT...]",
		Short: "Print a typed configuration value",
		Long: "Print a configuration value. String values are rendered as templates:\n" +
			"$N is replaced by the Nth replacement argument and $$ by a literal $.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := root.snapshot()
			if err != nil {
				return err
			}
			var def option.Option[string]
			if cmd.Flags().Changed("default") {
				def = option.Some(opts.def)
			}
			return printValue(cmd.OutOrStdout(), config.NewBuildConfig(snap), opts, def, args[0], args[1:])
		},
	}
	cmd.Flags().StringVarP(&opts.valueType, "type", "t", "string", "value type: string, bool, number, array or flag")
	cmd.Flags().StringVarP(&opts.def, "default", "d", "", "default used when the key is unset")
	cmd.Flags().StringVarP(&opts.separator, "separator", "s", ",", "separator for array values")
	return cmd
}

func printValue(out io.Writer, bc *config.BuildConfig, opts *getOptions, def option.Option[string], name string, replacements []string) error {
	if opts.valueType == "flag" {
		flag, ok := config.ParseFeatureFlag(name)
		if !ok {
			return fmt.Errorf("unknown feature flag %q", name)
		}
		_, err := fmt.Fprintln(out, bc.GetFeatureFlag(flag))
		return err
	}

	key, ok := config.ParseKey(name)
	if !ok {
		return fmt.Errorf("unknown config key %q", name)
	}

	switch opts.valueType {
	case "string":
		val, err := bc.GetValue(key, def, replacements...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, val)
		return err
	case "bool":
		boolDef, err := convertDefault(def, strconv.ParseBool)
		if err != nil {
			return err
		}
		val, err := bc.GetBoolean(key, boolDef)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, val)
		return err
	case "number":
		numDef, err := convertDefault(def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return err
		}
		val, err := bc.GetNumber(key, numDef)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, strconv.FormatFloat(val, 'f', -1, 64))
		return err
	case "array":
		// GetArray comma-joins defaults, so splitting on a comma keeps the
		// raw default equivalent to a stored value.
		arrDef := option.Map(def, func(s string) []string {
			if s == "" {
				return []string{}
			}
			return strings.Split(s, ",")
		})
		return json.NewEncoder(out).Encode(bc.GetArray(key, arrDef, opts.separator))
	default:
		return fmt.Errorf("unknown value type %q", opts.valueType)
	}
}

func convertDefault[T any](def option.Option[string], parse func(string) (T, error)) (option.Option[T], error) {
	raw, err := def.ValOf()
	if err != nil {
		return option.None[T](), nil
	}
	v, err := parse(raw)
	if err != nil {
		return option.None[T](), fmt.Errorf("invalid default %q: %w", raw, err)
	}
	return option.Some(v), nil
}

func newConfigKeysCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List recognized keys and whether each is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := root.snapshot()
			if err != nil {
				return err
			}
			bc := config.NewBuildConfig(snap)
			for _, key := range config.Keys() {
				state := "unset"
				if bc.Has(key) {
					state = "set"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, state); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/hnp/format"
	"github.com/dhamidi/hnp/name"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var noTrim bool

	cmd := &cobra.Command{
		Use:   "parse [name...]",
		Short: "Label the parts of one or more names",
		Long: `Label the parts of each name given as an argument.

If no names are given, reads one name per line from stdin.

Formats:
  line      input line, then "label<TAB>token" per token
  json      tokens, labels and segments as JSON
  segments  one pipe-separated corpus line per name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []name.Option
			if noTrim {
				opts = append(opts, name.WithTrim(false))
			}
			p, err := newParser(opts...)
			if err != nil {
				return err
			}

			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			encode := func(fullName string) error {
				parsed, err := p.Parse(fullName)
				if err != nil {
					return err
				}
				if err := enc.Encode(parsed); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				return nil
			}

			if len(args) > 0 {
				for _, arg := range args {
					if err := encode(arg); err != nil {
						return err
					}
				}
				return nil
			}
			return eachLine(cmd.InOrStdin(), encode)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&noTrim, "no-trim", false, "keep quotes, parentheses and separators on tokens")

	return cmd
}

func eachLine(r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/geocoord/internal/domain"
	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
	"github.com/marcos-nsantos/geocoord/internal/pkg/apperror"
)

const promptText = "Enter coordinate string:  "

// Options are the output defaults; flags override them per run.
type Options struct {
	Separator string
	Formats   []string
}

type CoordinateHandler struct {
	svc CoordinateService
}

func NewCoordinateHandler(svc CoordinateService) *CoordinateHandler {
	return &CoordinateHandler{svc: svc}
}

// Command builds the root command. Arguments are joined with spaces into a
// single coordinate string; with no arguments one line is read from stdin.
func (h *CoordinateHandler) Command(defaults Options) *cobra.Command {
	opts := defaults
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "geocoord [coordinate...]",
		Short: "Convert coordinate strings between DD, DM and DMS",
		Long: `geocoord reads a latitude/longitude pair in decimal degrees, degrees-minutes,
degrees-minutes-seconds or as a military grid reference and prints it in
every degree-based notation.

Input that cannot be normalized is echoed unchanged. Use -- before values
that start with a dash.`,
		Example: `  geocoord 34.5N 118.2W
  geocoord "34 30 0N/118 12 0W"
  geocoord --format dms -- 341230N1181200W
  geocoord 18SUJ2348706483`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseFormats(opts.Formats)
			if err != nil {
				return err
			}

			if fromStdin {
				return h.convertLines(cmd.InOrStdin(), cmd.OutOrStdout(), kinds, opts.Separator)
			}

			input := strings.Join(args, " ")
			if len(args) == 0 {
				input, err = prompt(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}
			return h.convert(cmd.OutOrStdout(), input, kinds, opts.Separator)
		},
	}

	cmd.Flags().StringVarP(&opts.Separator, "separator", "s", defaults.Separator, "text placed between latitude and longitude")
	cmd.Flags().StringSliceVarP(&opts.Formats, "format", "f", defaults.Formats, "formats to print: dd, dm, dms")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "convert every non-empty line of standard input")

	return cmd
}

func (h *CoordinateHandler) convert(w io.Writer, input string, kinds []valueobject.FormatKind, sep string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return apperror.InvalidArgument("coordinate string is required", domain.ErrEmptyInput)
	}

	c, err := h.svc.Parse(input)
	if err != nil {
		if errors.Is(err, domain.ErrGridConversion) {
			return apperror.GridConversion(err)
		}
		return apperror.Internal(err)
	}

	for _, kind := range kinds {
		if _, err := fmt.Fprintf(w, "%s format: %s\n", kind, c.Format(kind).Join(sep)); err != nil {
			return apperror.Internal(err)
		}
	}
	return nil
}

// convertLines stops at the first line that fails.
func (h *CoordinateHandler) convertLines(r io.Reader, w io.Writer, kinds []valueobject.FormatKind, sep string) error {
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return apperror.Internal(err)
			}
		}
		first = false
		if err := h.convert(w, line, kinds, sep); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return apperror.Wrap(err, "reading standard input")
	}
	return nil
}

func prompt(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, promptText)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", apperror.Wrap(err, "reading coordinate")
	}
	return strings.TrimSpace(line), nil
}

func parseFormats(names []string) ([]valueobject.FormatKind, error) {
	if len(names) == 0 {
		return nil, apperror.InvalidArgument("at least one format is required", nil)
	}
	kinds := make([]valueobject.FormatKind, 0, len(names))
	for _, name := range names {
		kind, err := valueobject.ParseFormatKind(name)
		if err != nil {
			return nil, apperror.InvalidArgument("invalid --format value", err)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

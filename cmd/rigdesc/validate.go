package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nerrad567/rigdesc/internal/codec"
	"github.com/nerrad567/rigdesc/internal/infrastructure/logging"
	"github.com/nerrad567/rigdesc/internal/instrument"
)

// errNotCanonical is returned by validate --canonical for a valid document
// that is not written in canonical form.
var errNotCanonical = errors.New("document is valid but not in canonical form")

// stdinName selects standard input as the document to validate.
const stdinName = "-"

type validateOptions struct {
	*rootOptions
	canonical bool
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate an instrument document and print its canonical form",
		Long: `Reads an instrument document (FILE, or - for standard input), checks it
against every instrument rule and prints its canonical form.

Exits non-zero when the document is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), opts, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&opts.canonical, "canonical", false, "also fail when FILE is not byte-identical to its canonical form")
	return cmd
}

func runValidate(_ context.Context, opts *validateOptions, name string, in io.Reader, out io.Writer) error {
	cfg, log, err := loadConfig(opts.configPath, true)
	if err != nil {
		return err
	}

	var data []byte
	if name == stdinName {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	influx, err := connectInflux(cfg, log)
	if err != nil {
		return err
	}
	defer closeInflux(influx, log)

	x, err := codec.Deserialize(data)
	if err != nil {
		if influx != nil {
			influx.WriteValidation("unknown", failedInvariant(err))
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	if influx != nil {
		influx.WriteValidation(x.InstrumentID(), "")
	}

	doc, err := codec.Serialize(x)
	if err != nil {
		return err
	}
	if opts.canonical && !bytes.Equal(doc, data) {
		return fmt.Errorf("%s: %w", name, errNotCanonical)
	}
	log.Instrument(x.InstrumentID()).Debug("document valid", logging.KeyDigest, codec.Digest(doc))

	_, err = out.Write(doc)
	return err
}

// failedInvariant names the rule a rejected document broke.
func failedInvariant(err error) string {
	var verr *instrument.ValidationError
	switch {
	case errors.As(err, &verr):
		return string(verr.Invariant)
	case errors.Is(err, codec.ErrMalformedInput):
		return "malformed_input"
	default:
		return "schema_validation"
	}
}
